// cmd/hostmon/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/logrusorgru/aurora"
	"github.com/rusenback/hostmon/internal/collector"
	"github.com/rusenback/hostmon/internal/sysinfo"
	"github.com/rusenback/hostmon/internal/tui"
)

const debugEnv = "HOSTMON_DEBUG"

func main() {
	logger, closeLog := newLogger()
	defer closeLog()

	// Create metric source
	source, err := sysinfo.NewSource(sysinfo.DefaultConfig(), logger)
	if err != nil {
		fatal("Failed to initialize metric source", err)
	}

	// Create collector
	c, err := collector.New(source, collector.WithLogger(logger))
	if err != nil {
		source.Close()
		fatal("Failed to create collector", err)
	}
	defer c.Close()

	// SIGTERM/SIGINT end the program; bubbletea restores the terminal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create TUI model
	m := tui.NewModel(ctx, c)

	// Start TUI
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program exited", slog.String("error", err.Error()))
		c.Close()
		fatal("Error running program", err)
	}
}

// newLogger writes debug logs to a file when HOSTMON_DEBUG is set; the
// terminal itself belongs to the TUI.
func newLogger() (*slog.Logger, func()) {
	if os.Getenv(debugEnv) == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}

	f, err := tea.LogToFile("hostmon-debug.log", "hostmon")
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Yellow("warning:"), "debug log disabled:", err)
		return slog.New(slog.DiscardHandler), func() {}
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { f.Close() }
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", aurora.Red("❌ "+msg+":").Bold(), err)
	os.Exit(1)
}
