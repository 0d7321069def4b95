// Package demo hosts the demonstration registry and its deterministic
// runner.
//
// Each demo is an independent, re-runnable unit: it receives a fresh
// recorder, runs to completion single-threaded, and its whole observable
// contract is the transcript it emits. Demos share no state - running one
// never affects another, and re-running any demo with identical inputs
// yields identical lines.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Demo is one registered demonstration.
type Demo struct {
	// Name uniquely identifies the demo in the registry.
	Name string

	// Description explains what the demo shows.
	Description string

	// Run executes the demo, emitting output through rec.
	Run func(ctx context.Context, rec *Recorder) error
}

// ClockSource produces the sequencing clock for one demo run. It is
// called once per run, before the demo executes.
type ClockSource func() Sequencer

// Runner executes registered demos and produces transcripts.
type Runner struct {
	tokens TokenGenerator
	logger *slog.Logger
	clocks ClockSource
}

// NewRunner creates a runner. A nil tokens generator defaults to
// UUIDv7Generator; a nil logger discards logs. Each run gets a fresh
// Clock, so line seqs restart at 1.
func NewRunner(tokens TokenGenerator, logger *slog.Logger) *Runner {
	return NewRunnerWithClocks(tokens, logger, nil)
}

// NewRunnerWithClocks creates a runner whose per-run clocks come from
// clocks. A nil clocks source falls back to a fresh Clock per run; the
// harness supplies a resettable clock here so repeated scenario runs
// stamp identical seq values.
func NewRunnerWithClocks(tokens TokenGenerator, logger *slog.Logger, clocks ClockSource) *Runner {
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clocks == nil {
		clocks = func() Sequencer { return NewClock() }
	}
	return &Runner{tokens: tokens, logger: logger, clocks: clocks}
}

// Run executes the named demo and returns its transcript.
//
// Each run draws its clock from the runner's clock source, so line seqs
// restart at 1 and identical inputs yield identical transcripts apart
// from the run token.
func (r *Runner) Run(ctx context.Context, name string) (*Transcript, error) {
	d, ok := ByName(name)
	if !ok {
		return nil, &RunError{Code: ErrCodeUnknownDemo, Demo: name}
	}

	token := r.tokens.Generate()
	r.logger.Debug("running demo", "demo", name, "run_token", token)

	rec := NewRecorder(r.clocks())
	if err := d.Run(ctx, rec); err != nil {
		return nil, &RunError{Code: ErrCodeDemoFailed, Demo: name, Err: err}
	}

	r.logger.Debug("demo finished", "demo", name, "lines", len(rec.Lines()))
	return &Transcript{
		RunToken: token,
		Demo:     name,
		Lines:    rec.Lines(),
	}, nil
}

// RunAll executes every registered demo in registry order.
// Stops at the first failure.
func (r *Runner) RunAll(ctx context.Context) ([]*Transcript, error) {
	demos := All()
	transcripts := make([]*Transcript, 0, len(demos))
	for _, d := range demos {
		t, err := r.Run(ctx, d.Name)
		if err != nil {
			return nil, fmt.Errorf("run all: %w", err)
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, nil
}

// All returns the registered demos in registration order.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// ByName returns the demo registered under name.
func ByName(name string) (Demo, bool) {
	for _, d := range registry {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
