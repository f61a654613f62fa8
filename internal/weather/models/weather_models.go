package models

import (
	"time"
)

// Coordinates is a lat/lon pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location describes where a report applies
type Location struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Temperature holds the temperature readings in metric units
type Temperature struct {
	Current   float64 `json:"current"`
	FeelsLike float64 `json:"feelsLike"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// Wind holds wind speed and direction
type Wind struct {
	Speed     float64 `json:"speed"`
	Direction int     `json:"direction"`
}

// Conditions is the human-readable weather condition
type Conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Report is the stable reshaped schema returned to clients, independent of
// the upstream provider's payload layout.
type Report struct {
	Location    Location    `json:"location"`
	Temperature Temperature `json:"temperature"`
	Humidity    int         `json:"humidity"`
	Wind        Wind        `json:"wind"`
	Weather     Conditions  `json:"weather"`
	Timestamp   time.Time   `json:"timestamp"`
}
