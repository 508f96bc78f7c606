package entity

import "time"

// ExtractionUsage records one call to the AI extractor.
type ExtractionUsage struct {
	ID          int64
	Provider    string
	Success     bool
	Duration    time.Duration
	InputLength int
	RecordedAt  time.Time
}
