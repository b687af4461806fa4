package app

import (
	"bufio"
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"dipgauge/internal/ledger"
	"dipgauge/internal/session"
	"dipgauge/internal/tank"
)

const sessionHelp = `Commands:
  <cm>          set the dipstick reading, e.g. 156 or 156.5
  tank <type>   switch tank (30000L, 15000L, 30k, 15k)
  save          add the current reading to the history
  history       show saved readings, newest first
  clear         drop the saved readings
  reset         clear the current reading
  copy          print the current volume as "<liters> L"
  help          show this text
  quit          leave the session`

// RunSession reads commands from In until EOF, "quit" or a termination signal.
func (a *App) RunSession(ctx context.Context, opts SessionOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	t, err := a.Config.ResolveTank(opts.Tank)
	if err != nil {
		return err
	}
	s, err := session.New(t, a.Config.History.Limit)
	if err != nil {
		return err
	}

	logger := a.Logger.With().Str("component", "session").Logger()
	logger.Info().Str("tank", string(t)).Int("history_limit", a.Config.History.Limit).Msg("session started")

	fmt.Fprintf(a.Out, "%s: %s\n", a.Config.App.Station, s.Tank().Label)
	fmt.Fprintln(a.Out, `Type a reading in cm, or "help".`)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

loop:
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("session interrupted")
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}
			if !a.handleCommand(s, line) {
				break loop
			}
		}
	}

	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}

	history := s.History()
	logger.Info().Int("saved", len(history)).Msg("session finished")

	if opts.ExportCSV != "" {
		if err := writeLedgerCSV(opts.ExportCSV, history); err != nil {
			return fmt.Errorf("export history: %w", err)
		}
		logger.Info().Str("path", opts.ExportCSV).Int("records", len(history)).Msg("history exported")
	}
	return nil
}

// handleCommand applies one input line to the session. It returns false when
// the session should end.
func (a *App) handleCommand(s *session.Session, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprintln(a.Out, sessionHelp)
	case "tank", "t":
		if len(fields) < 2 {
			fmt.Fprintf(a.Out, "current tank: %s\n", s.Tank().Type)
			return true
		}
		t, err := tank.ParseType(fields[1])
		if err == nil {
			err = s.SelectTank(t)
		}
		if err != nil {
			fmt.Fprintf(a.Out, "error: %v\n", err)
			return true
		}
		fmt.Fprintf(a.Out, "%s selected, capacity %s\n", s.Tank().Label, a.formatCapacity(s.Tank().Capacity))
		if s.Input() != "" {
			a.printSessionReading(s)
		}
	case "save", "s":
		rec, err := s.Commit(time.Now())
		if err != nil {
			fmt.Fprintln(a.Out, "nothing to save: volume is 0")
			return true
		}
		a.Logger.Debug().Str("id", rec.ID.String()).Int("liters", rec.Liters).Msg("reading saved")
		fmt.Fprintf(a.Out, "saved %s (%d/%d)\n", a.formatLiters(rec.Liters), len(s.History()), a.Config.History.Limit)
	case "history", "h":
		a.printHistory(s.History())
	case "clear":
		s.ClearHistory()
		fmt.Fprintln(a.Out, "history cleared")
	case "reset":
		s.Reset()
		fmt.Fprintln(a.Out, "reading cleared")
	case "copy", "c":
		fmt.Fprintln(a.Out, s.ClipboardText())
	default:
		s.SetInput(line)
		a.printSessionReading(s)
	}
	return true
}

func (a *App) printSessionReading(s *session.Session) {
	reading := s.Reading()
	fmt.Fprintf(a.Out, "%s cm -> %s  [%d%%]\n", s.Input(), a.highlight(a.formatLiters(reading.Liters())), s.Percent())
	if note := statusNote(reading.Status); note != "" {
		fmt.Fprintf(a.Out, "  %s\n", note)
	}
}

func (a *App) printHistory(records []ledger.MeasurementRecord) {
	if len(records) == 0 {
		fmt.Fprintln(a.Out, "no saved readings")
		return
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Time\tTank\tcm\tLiters")
	for _, rec := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			rec.CreatedAt.Local().Format("15:04"),
			rec.Tank,
			rec.Raw,
			a.formatLiters(rec.Liters),
		)
	}
	writer.Flush()
}
