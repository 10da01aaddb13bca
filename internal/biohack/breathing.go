package biohack

import (
	"context"
	"fmt"
	"time"
)

// Phase is one segment of a breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHoldIn
	PhaseExhale
	PhaseHoldOut
)

func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "Inhale"
	case PhaseHoldIn:
		return "Hold"
	case PhaseExhale:
		return "Exhale"
	case PhaseHoldOut:
		return "Hold"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// BreathingPattern describes one cycle. Zero-length holds are skipped.
type BreathingPattern struct {
	Inhale  time.Duration
	HoldIn  time.Duration
	Exhale  time.Duration
	HoldOut time.Duration
}

func (b BreathingPattern) Validate() error {
	if b.Inhale <= 0 || b.Exhale <= 0 {
		return fmt.Errorf("inhale and exhale must be positive")
	}
	if b.HoldIn < 0 || b.HoldOut < 0 {
		return fmt.Errorf("holds cannot be negative")
	}
	return nil
}

// Cycle is the length of one full breath.
func (b BreathingPattern) Cycle() time.Duration {
	return b.Inhale + b.HoldIn + b.Exhale + b.HoldOut
}

func (b BreathingPattern) segments() [4]struct {
	phase Phase
	d     time.Duration
} {
	return [4]struct {
		phase Phase
		d     time.Duration
	}{
		{PhaseInhale, b.Inhale},
		{PhaseHoldIn, b.HoldIn},
		{PhaseExhale, b.Exhale},
		{PhaseHoldOut, b.HoldOut},
	}
}

// PhaseAt reports where elapsed falls: the current phase, the time left in
// it, and the zero-based cycle number. Negative elapsed is treated as zero.
func (b BreathingPattern) PhaseAt(elapsed time.Duration) (Phase, time.Duration, int) {
	cycle := b.Cycle()
	if cycle <= 0 {
		return PhaseInhale, 0, 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	n := int(elapsed / cycle)
	offset := elapsed % cycle
	for _, seg := range b.segments() {
		if seg.d == 0 {
			continue
		}
		if offset < seg.d {
			return seg.phase, seg.d - offset, n
		}
		offset -= seg.d
	}
	// unreachable for a valid pattern
	return PhaseHoldOut, 0, n
}

// Cues lists the spoken prompts for one cycle, e.g. "Inhale 4".
func (b BreathingPattern) Cues() []string {
	var cues []string
	for _, seg := range b.segments() {
		if seg.d == 0 {
			continue
		}
		cues = append(cues, fmt.Sprintf("%s %d", seg.phase, int(seg.d.Seconds())))
	}
	return cues
}

// Cycles returns how many full cycles fit in total, at least one.
func (b BreathingPattern) Cycles(total time.Duration) int {
	cycle := b.Cycle()
	if cycle <= 0 || total < cycle {
		return 1
	}
	return int(total / cycle)
}

// Guide speaks each phase and waits out its length until Cycles(total) full
// breaths are done. It returns the cycles completed, with ctx's error if it
// was cancelled first.
func (b BreathingPattern) Guide(ctx context.Context, total time.Duration, speak func(context.Context, string) error, wait func(context.Context, time.Duration) error) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	n := b.Cycles(total)
	for c := 0; c < n; c++ {
		for _, seg := range b.segments() {
			if seg.d == 0 {
				continue
			}
			if err := speak(ctx, seg.phase.String()); err != nil {
				return c, err
			}
			if err := wait(ctx, seg.d); err != nil {
				return c, err
			}
		}
	}
	return n, nil
}

// Sleep waits for d or until ctx is done.
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
