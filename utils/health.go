package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is implemented by store backends that can be reachability-checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the booking-state store.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Backend   string    `json:"backend"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(backend string, p Pinger) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		healthy := p.Ping(ctx) == nil

		healthMu.Lock()
		currentHealth = HealthStatus{
			Store:     healthy,
			Backend:   backend,
			CheckedAt: time.Now(),
		}
		healthMu.Unlock()
	}

	check()
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			check()
		}
	}()
}
