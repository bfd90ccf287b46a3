package main

import (
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/picbook/pkg/debug"
	"github.com/vanderheijden86/picbook/pkg/ui"
)

// tuiOptions controls how the lesson browser is started and torn down.
type tuiOptions struct {
	autoClose   time.Duration // Quit after this long; 0 waits for the user
	signalGrace time.Duration // Time between Quit and Kill after SIGINT/SIGTERM
	closeGrace  time.Duration // Time between Quit and Kill after autoClose
	program     []tea.ProgramOption
}

// tuiOptionsFromEnv reads PICBOOK_TUI_AUTOCLOSE_MS, used by smoke runs to
// start the browser and have it exit on its own.
func tuiOptionsFromEnv() tuiOptions {
	opts := tuiOptions{
		signalGrace: 5 * time.Second,
		closeGrace:  2 * time.Second,
	}
	if v := os.Getenv("PICBOOK_TUI_AUTOCLOSE_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			debug.Log("ignoring PICBOOK_TUI_AUTOCLOSE_MS=%q", v)
		} else {
			opts.autoClose = time.Duration(ms) * time.Millisecond
		}
	}
	return opts
}

func runTUIProgram(m ui.Model, opts tuiOptions) error {
	progOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	}, opts.program...)
	p := tea.NewProgram(m, progOpts...)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM; a second signal kills at once.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go stopProgramOn(p, runDone, sigCh, opts.signalGrace)

	if opts.autoClose > 0 {
		timer := time.NewTimer(opts.autoClose)
		defer timer.Stop()
		go stopProgramOn(p, runDone, timer.C, opts.closeGrace)
	}

	_, err := p.Run()
	if err == tea.ErrProgramKilled || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

// stopProgramOn asks p to quit when trigger fires, then kills it if it has
// not finished within grace or trigger fires again.
func stopProgramOn[T any](p *tea.Program, done <-chan struct{}, trigger <-chan T, grace time.Duration) {
	select {
	case <-done:
		return
	case <-trigger:
	}

	p.Quit()

	select {
	case <-done:
		return
	case <-trigger:
	case <-time.After(grace):
	}

	debug.Log("program did not quit within %v, killing", grace)
	p.Kill()
}
