package metrics

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dbConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connections by state",
		},
		[]string{"state"}, // state: in_use|idle|open
	)

	dbMaxOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_max_open_connections",
			Help: "Configured maximum open database connections (0 means unlimited)",
		},
	)

	dbWaitCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		},
	)

	dbWaitDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_wait_duration_seconds",
			Help: "Total time blocked waiting for a new connection",
		},
	)
)

// StatsSource is satisfied by *sql.DB.
type StatsSource interface {
	Stats() sql.DBStats
}

// UpdateDBStats copies a pool snapshot into the gauges.
func UpdateDBStats(stats sql.DBStats) {
	dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	dbMaxOpenConnections.Set(float64(stats.MaxOpenConnections))
	dbWaitCount.Set(float64(stats.WaitCount))
	dbWaitDuration.Set(stats.WaitDuration.Seconds())
}

// StartDBStatsReporter updates the gauges immediately and then every
// interval until ctx is done or the returned stop func is called. stop
// waits for the reporter goroutine to exit.
func StartDBStatsReporter(ctx context.Context, src StatsSource, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ctx, cancel := context.WithCancel(ctx)
	UpdateDBStats(src.Stats())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				UpdateDBStats(src.Stats())
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}
