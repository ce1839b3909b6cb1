package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/poker"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `short:"c" help:"Path to HCL config file" default:"${config_file}" type:"path"`
	Debug  bool   `help:"Enable debug logging"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// env is what a command runs with once config is loaded.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func (g *Globals) setup() (*env, error) {
	path := g.Config
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	stdout, stderr := g.stdout, g.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: cfg.Timestamps(),
		TimeFormat:      "15:04:05",
		Prefix:          "handrank",
		Level:           cfg.LogLevel(),
	})
	if g.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if !cfg.Color() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Loaded config", "path", path, "level", cfg.Log.Level, "workers", cfg.Census.Workers)
	return &env{cfg: cfg, logger: logger, out: stdout}, nil
}

// formatHand renders a hand using suit symbols when the config allows it.
func (e *env) formatHand(h poker.Hand) string {
	if e.cfg.Symbols() {
		return h.Symbol()
	}
	return h.String()
}

func formatRanks(ranks []poker.Rank) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

func formatSuit(r poker.HandRanking, symbols bool) string {
	s, ok := r.Suit()
	if !ok {
		return "."
	}
	if symbols {
		return s.Symbol()
	}
	return s.String()
}
