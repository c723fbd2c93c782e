// Package timer runs a work-then-break countdown session that can be
// cancelled early.
package timer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDuration is returned for phase lengths outside 0..MaxMinutes
var ErrInvalidDuration = errors.New("duration out of range")

const (
	// DefaultWorkMinutes is the default length of the work phase
	DefaultWorkMinutes = 25
	// DefaultBreakMinutes is the default length of the break phase
	DefaultBreakMinutes = 5
	// MaxMinutes caps a single phase at one day
	MaxMinutes = 24 * 60
	// DefaultTick is the countdown resolution
	DefaultTick = time.Second
)

// Phase is a state of a countdown session
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseWorking   Phase = "working"
	PhaseBreak     Phase = "break"
	PhaseCancelled Phase = "cancelled"
)

// Outcome reports how a session ended
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
)

// Config holds the phase lengths of a session
type Config struct {
	Work  time.Duration
	Break time.Duration
	Tick  time.Duration
}

// FromMinutes builds a Config from whole minutes
func FromMinutes(workMinutes, breakMinutes int) (Config, error) {
	if workMinutes < 0 || breakMinutes < 0 || workMinutes > MaxMinutes || breakMinutes > MaxMinutes {
		return Config{}, fmt.Errorf("work=%d break=%d: %w", workMinutes, breakMinutes, ErrInvalidDuration)
	}
	return Config{
		Work:  time.Duration(workMinutes) * time.Minute,
		Break: time.Duration(breakMinutes) * time.Minute,
		Tick:  DefaultTick,
	}, nil
}

// Sleeper pauses between ticks. It returns early with ctx.Err() when ctx
// is cancelled.
type Sleeper func(ctx context.Context, d time.Duration) error

// TickFunc observes each tick with the time left in the current phase
type TickFunc func(phase Phase, remaining time.Duration)

// PhaseFunc observes phase transitions
type PhaseFunc func(phase Phase)

type options struct {
	sleep   Sleeper
	onTick  TickFunc
	onPhase PhaseFunc
}

// Option configures Run
type Option func(*options)

// WithSleeper replaces the real-time sleeper
func WithSleeper(s Sleeper) Option {
	return func(o *options) { o.sleep = s }
}

// WithTickFunc registers a tick observer
func WithTickFunc(f TickFunc) Option {
	return func(o *options) { o.onTick = f }
}

// WithPhaseFunc registers a phase transition observer
func WithPhaseFunc(f PhaseFunc) Option {
	return func(o *options) { o.onPhase = f }
}

// Sleep waits for d or until ctx is done
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run counts down the work phase and then the break phase. Cancelling ctx
// ends the session before the next tick and skips any remaining phase.
// Each call is an independent session; ctx is its only cancellation token.
func Run(ctx context.Context, cfg Config, opts ...Option) (Outcome, error) {
	if cfg.Work < 0 || cfg.Break < 0 {
		return "", ErrInvalidDuration
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}

	o := options{
		sleep:   Sleep,
		onTick:  func(Phase, time.Duration) {},
		onPhase: func(Phase) {},
	}
	for _, opt := range opts {
		opt(&o)
	}

	for _, phase := range []struct {
		name   Phase
		length time.Duration
	}{
		{PhaseWorking, cfg.Work},
		{PhaseBreak, cfg.Break},
	} {
		o.onPhase(phase.name)
		if !countdown(ctx, phase.name, phase.length, cfg.Tick, o) {
			o.onPhase(PhaseCancelled)
			o.onPhase(PhaseIdle)
			return OutcomeCancelled, nil
		}
	}

	o.onPhase(PhaseIdle)
	return OutcomeCompleted, nil
}

// countdown reports false when the session was cancelled
func countdown(ctx context.Context, phase Phase, length, tick time.Duration, o options) bool {
	for ticks := int(length / tick); ticks > 0; ticks-- {
		if ctx.Err() != nil {
			return false
		}
		o.onTick(phase, time.Duration(ticks)*tick)
		if err := o.sleep(ctx, tick); err != nil {
			return false
		}
	}
	return ctx.Err() == nil
}

// Listen waits for one confirmation line and then cancels the session.
// It returns as soon as the session ends so later lines stay unread.
func Listen(ctx context.Context, lines <-chan string, cancel context.CancelFunc) {
	select {
	case <-ctx.Done():
	case _, ok := <-lines:
		if ok {
			cancel()
		}
	}
}

// FormatRemaining renders d as minutes:seconds, e.g. "24:59"
func FormatRemaining(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
