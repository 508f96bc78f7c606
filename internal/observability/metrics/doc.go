// Package metrics exports database connection pool gauges.
//
//	stop := metrics.StartDBStatsReporter(ctx, db, 15*time.Second)
//	defer stop()
//
// HTTP, pagination, extractor and telemetry metrics live beside the code
// that records them.
package metrics
