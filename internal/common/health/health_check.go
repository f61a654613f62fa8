package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"gorm.io/gorm"
)

// HealthStatus represents the overall health of the application
type HealthStatus struct {
	Status    string                 `json:"status"` // "healthy" or "degraded"
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Checks    map[string]interface{} `json:"checks"`
	Duration  int64                  `json:"duration_ms"`
}

// ComponentHealth represents health of a single component
type ComponentHealth struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// SystemMetrics captures current system metrics
type SystemMetrics struct {
	MemoryUsageMB  uint64 `json:"memory_usage_mb"`
	GoroutineCount int    `json:"goroutine_count"`
	CPUNumCores    int    `json:"cpu_num_cores"`
	Uptime         int64  `json:"uptime_seconds"`
}

// HealthChecker provides health check functionality
type HealthChecker struct {
	db              *gorm.DB
	version         string
	startTime       time.Time
	mu              sync.RWMutex
	lastCheckStatus string
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, version string) *HealthChecker {
	return &HealthChecker{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// Check performs a complete health check
func (hc *HealthChecker) Check() HealthStatus {
	start := time.Now()
	status := HealthStatus{
		Timestamp: start,
		Version:   hc.version,
		Checks:    make(map[string]interface{}),
	}

	dbCheck := hc.checkDatabase()
	status.Checks["database"] = dbCheck

	goroutineCount := runtime.NumGoroutine()
	status.Checks["goroutines"] = map[string]interface{}{
		"count":   goroutineCount,
		"healthy": goroutineCount < 10000,
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memoryMB := m.Alloc / 1024 / 1024
	status.Checks["memory"] = map[string]interface{}{
		"allocated_mb": memoryMB,
		"healthy":      memoryMB < 500,
	}

	status.Checks["uptime_seconds"] = int64(time.Since(hc.startTime).Seconds())

	if dbCheck.Healthy && goroutineCount < 10000 && memoryMB < 500 {
		status.Status = "healthy"
	} else {
		status.Status = "degraded"
	}

	status.Duration = time.Since(start).Milliseconds()

	hc.mu.Lock()
	hc.lastCheckStatus = status.Status
	hc.mu.Unlock()

	return status
}

// checkDatabase verifies database connectivity
func (hc *HealthChecker) checkDatabase() ComponentHealth {
	if hc.db == nil {
		return ComponentHealth{Healthy: false, Error: "database not initialized"}
	}

	sqlDB, err := hc.db.DB()
	if err != nil {
		return ComponentHealth{Healthy: false, Error: fmt.Sprintf("failed to get database connection: %v", err)}
	}

	if err := sqlDB.Ping(); err != nil {
		return ComponentHealth{Healthy: false, Error: fmt.Sprintf("database ping failed: %v", err)}
	}

	return ComponentHealth{Healthy: true}
}

// IsReady returns true if system is ready to serve traffic
func (hc *HealthChecker) IsReady() bool {
	if hc.db == nil {
		return false
	}

	sqlDB, err := hc.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.Ping() == nil
}

// IsAlive returns true if system is running
func (hc *HealthChecker) IsAlive() bool {
	return true
}

// GetMetrics returns current system metrics
func (hc *HealthChecker) GetMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return SystemMetrics{
		MemoryUsageMB:  m.Alloc / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		CPUNumCores:    runtime.NumCPU(),
		Uptime:         int64(time.Since(hc.startTime).Seconds()),
	}
}
