package monitoring

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const checkSchedule = "@every 30s"

// Status is the result of the most recent health probe.
type Status struct {
	Database  string    `json:"database"`
	CheckedAt time.Time `json:"checked_at"`
}

// HealthMonitor periodically probes the database and keeps the last result
// for the /status endpoint.
type HealthMonitor struct {
	db   *sql.DB
	cron *cron.Cron

	mu   sync.RWMutex
	last Status
}

// NewHealthMonitor creates a new HealthMonitor.
func NewHealthMonitor(db *sql.DB) *HealthMonitor {
	m := &HealthMonitor{db: db, cron: cron.New()}
	if _, err := m.cron.AddFunc(checkSchedule, m.check); err != nil {
		log.Error().Err(err).Msg("Failed to schedule health check")
	}
	return m
}

// Run probes once immediately, then on the cron schedule.
func (m *HealthMonitor) Run() {
	log.Info().Msg("Starting background health monitor...")
	m.check()
	m.cron.Start()
}

// Stop halts the monitor.
func (m *HealthMonitor) Stop() {
	log.Info().Msg("Stopping background health monitor.")
	m.cron.Stop()
}

// Status returns the last probe result.
func (m *HealthMonitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

func (m *HealthMonitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := Status{Database: "ok", CheckedAt: time.Now()}
	if err := m.db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("Database health check failed")
		status.Database = "unreachable"
	}

	m.mu.Lock()
	m.last = status
	m.mu.Unlock()
}
