package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	actionModels "github.com/architect/eco-tracker/internal/actions/models"
	authModels "github.com/architect/eco-tracker/internal/auth/models"
	"github.com/architect/eco-tracker/internal/common/database"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	dbType   = flag.String("db-type", "sqlite", "Database type: sqlite or postgres")
	dsn      = flag.String("dsn", "./data/eco_tracker.db?mode=rwc&cache=shared&timeout=5000", "Database DSN")
	numUsers = flag.Int("users", 5, "Number of demo users to generate")
	numDays  = flag.Int("days", 90, "How many days of action history per user")
)

func main() {
	flag.Parse()

	if err := database.InitWithType(*dbType, *dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(&authModels.User{}, &actionModels.SustainableAction{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Starting data seeding...")

	users, err := seedUsers(*numUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Created %d users (password: demo-password)", len(users))

	total := 0
	for _, user := range users {
		n, err := seedActions(user, *numDays)
		if err != nil {
			log.Fatalf("Failed to seed actions for %s: %v", user.Username, err)
		}
		total += n
	}
	log.Printf("Created %d action records", total)
}

func seedUsers(count int) ([]*authModels.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usernames := []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi"}

	var users []*authModels.User
	for i := 0; i < count; i++ {
		username := usernames[i%len(usernames)]
		if i >= len(usernames) {
			username = uuid.NewString()[:8]
		}

		user := &authModels.User{
			ID:           uuid.NewString(),
			Username:     username,
			PasswordHash: string(hash),
		}

		if err := database.DB.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func seedActions(user *authModels.User, days int) (int, error) {
	now := time.Now()
	count := 0

	for day := 0; day < days; day++ {
		// Not every day has a log
		if rand.Float64() < 0.3 {
			continue
		}

		action := &actionModels.SustainableAction{
			ID:          uuid.NewString(),
			OwnerID:     user.ID,
			OccurredAt:  now.AddDate(0, 0, -day),
			EnergySaved: float64(rand.Intn(10)),
			WaterSaved:  float64(rand.Intn(50)),
			RecycledItems: actionModels.RecycledItems{
				Plastic: rand.Intn(5),
				Paper:   rand.Intn(5),
				Metal:   rand.Intn(3),
			},
			Transportation: actionModels.Transportation{
				Biking:          rand.Float64() < 0.4,
				PublicTransport: rand.Float64() < 0.3,
				Carpooling:      rand.Float64() < 0.2,
				WalkingDistance: float64(rand.Intn(8)),
			},
		}

		if err := database.DB.Create(action).Error; err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
