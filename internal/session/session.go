// Package session holds the state of one interactive measuring session: the
// selected tank, the reading being typed and the committed history.
package session

import (
	"errors"
	"strings"
	"time"

	"dipgauge/internal/gauge"
	"dipgauge/internal/ledger"
	"dipgauge/internal/tank"
)

// ErrNothingToCommit is returned by Commit when the current reading has no volume.
var ErrNothingToCommit = errors.New("nothing to commit: enter a reading with a positive volume")

// Session is owned by the outermost loop and passed explicitly; volume and
// fill percentage are recomputed from the inputs on every call.
type Session struct {
	tank    tank.Spec
	input   string
	history *ledger.Ledger
	calc    gauge.Calculator
}

// New starts a session on the given tank with a ledger of historyLimit records.
func New(t tank.Type, historyLimit int) (*Session, error) {
	spec, err := tank.Get(t)
	if err != nil {
		return nil, err
	}
	return &Session{
		tank:    spec,
		history: ledger.New(historyLimit),
		calc:    gauge.Default,
	}, nil
}

// SelectTank switches the active tank. The current input is kept.
func (s *Session) SelectTank(t tank.Type) error {
	spec, err := tank.Get(t)
	if err != nil {
		return err
	}
	s.tank = spec
	return nil
}

// SetInput replaces the current raw reading.
func (s *Session) SetInput(raw string) {
	s.input = strings.TrimSpace(raw)
}

// Reset clears the current reading, leaving tank and history alone.
func (s *Session) Reset() {
	s.input = ""
}

// Input returns the current raw reading.
func (s *Session) Input() string { return s.input }

// Tank returns the active tank.
func (s *Session) Tank() tank.Spec { return s.tank }

// Reading converts the current input on the active tank.
func (s *Session) Reading() gauge.Reading {
	return s.calc.Measure(s.input, s.tank.Table)
}

// Liters is the current volume rounded to whole liters.
func (s *Session) Liters() int {
	return s.Reading().Liters()
}

// Percent is the current fill level of the active tank.
func (s *Session) Percent() int {
	return gauge.FillPercent(s.Liters(), s.tank.Capacity)
}

// ClipboardText renders the current volume for pasting.
func (s *Session) ClipboardText() string {
	return gauge.ClipboardText(s.Liters())
}

// Commit records the current reading in the history.
func (s *Session) Commit(now time.Time) (ledger.MeasurementRecord, error) {
	if s.input == "" {
		return ledger.MeasurementRecord{}, ErrNothingToCommit
	}
	liters := s.Liters()
	if liters <= 0 {
		return ledger.MeasurementRecord{}, ErrNothingToCommit
	}

	depth, _ := gauge.ParseDepth(s.input)
	rec := ledger.NewRecord(s.input, depth, liters, s.tank.Type, now)
	if !s.history.Append(rec) {
		return ledger.MeasurementRecord{}, ErrNothingToCommit
	}
	return rec, nil
}

// History returns the committed records, newest first.
func (s *Session) History() []ledger.MeasurementRecord {
	return s.history.Records()
}

// ClearHistory drops every committed record.
func (s *Session) ClearHistory() {
	s.history.Clear()
}
