package app

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dipgauge/internal/config"
	"dipgauge/internal/tank"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	In     io.Reader
	Out    io.Writer

	printer  *message.Printer
	emphasis *color.Color
}

// NewApp constructs a new application handle bound to stdin/stdout.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return NewAppWithIO(cfg, logger, os.Stdin, os.Stdout)
}

// NewAppWithIO constructs an application handle with explicit streams.
func NewAppWithIO(cfg *config.Config, logger zerolog.Logger, in io.Reader, out io.Writer) *App {
	tag, err := language.Parse(cfg.Display.Locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}

	emphasis := color.New(color.Bold, color.FgHiYellow)
	if !cfg.Display.Color {
		emphasis.DisableColor()
	}

	return &App{
		Config:   cfg,
		Logger:   logger.With().Str("component", "app").Logger(),
		In:       in,
		Out:      out,
		printer:  message.NewPrinter(tag),
		emphasis: emphasis,
	}
}

func (a *App) resolveTank(override string) (tank.Spec, error) {
	t, err := a.Config.ResolveTank(override)
	if err != nil {
		return tank.Spec{}, err
	}
	return tank.Get(t)
}

// formatLiters groups digits the way the configured locale does ("31.309 L" for pt-BR).
func (a *App) formatLiters(liters int) string {
	return a.printer.Sprintf("%d L", liters)
}

func (a *App) formatCapacity(capacity float64) string {
	return a.formatLiters(int(capacity))
}

func (a *App) highlight(s string) string {
	return a.emphasis.Sprint(s)
}

// ComputeOptions configure a one-shot conversion.
type ComputeOptions struct {
	Raw  string
	Tank string
	Copy bool
	JSON bool
}

// TableOptions configure the dip chart listing.
type TableOptions struct {
	Tank string
}

// SessionOptions configure the interactive session.
type SessionOptions struct {
	Tank      string
	ExportCSV string
}

// ExportOptions hold parameters for exporting volume curves.
type ExportOptions struct {
	Tanks   []string
	PNGPath string
	CSVPath string
	StepCM  float64
}
