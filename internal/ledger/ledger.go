// Package ledger keeps the measurements committed during a session.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"dipgauge/internal/tank"
)

// DefaultLimit is the number of records a ledger keeps unless configured otherwise.
const DefaultLimit = 10

// MeasurementRecord is one committed reading. Records are values and are not
// modified after creation.
type MeasurementRecord struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Raw       string    `json:"raw"`
	DepthCM   float64   `json:"depthCm"`
	Liters    int       `json:"liters"`
	Tank      tank.Type `json:"tankType"`
}

// NewRecord stamps a new record with a random ID.
func NewRecord(raw string, depthCM float64, liters int, t tank.Type, createdAt time.Time) MeasurementRecord {
	return MeasurementRecord{
		ID:        uuid.New(),
		CreatedAt: createdAt,
		Raw:       raw,
		DepthCM:   depthCM,
		Liters:    liters,
		Tank:      t,
	}
}

// Ledger is a newest-first list of records bounded by a limit. It has a
// single writer and does no locking.
type Ledger struct {
	limit   int
	records []MeasurementRecord
}

// New creates an empty ledger. A non-positive limit falls back to DefaultLimit.
func New(limit int) *Ledger {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Ledger{limit: limit}
}

// Append puts rec at the front, dropping the oldest records beyond the limit.
// Records without a positive volume are ignored and false is returned.
func (l *Ledger) Append(rec MeasurementRecord) bool {
	if rec.Liters <= 0 {
		return false
	}

	keep := len(l.records)
	if keep > l.limit-1 {
		keep = l.limit - 1
	}
	next := make([]MeasurementRecord, 0, keep+1)
	next = append(next, rec)
	next = append(next, l.records[:keep]...)
	l.records = next
	return true
}

// Clear drops every record.
func (l *Ledger) Clear() {
	l.records = nil
}

// Records returns a copy of the records, newest first.
func (l *Ledger) Records() []MeasurementRecord {
	out := make([]MeasurementRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports the number of records held.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Limit reports the maximum number of records held.
func (l *Ledger) Limit() int {
	return l.limit
}

// Total sums the liters of all records.
func (l *Ledger) Total() int {
	total := 0
	for _, rec := range l.records {
		total += rec.Liters
	}
	return total
}
