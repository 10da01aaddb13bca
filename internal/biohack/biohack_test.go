package biohack

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
)

func TestCatalog(t *testing.T) {
	want := []string{"box-breathing", "478-breathing", "coherent-breathing", "cold-exposure", "binaural-focus", "nsdr"}
	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("catalog has %d entries, want %d", len(got), len(want))
	}
	valid := make(map[string]bool)
	for _, c := range constants.Categories {
		valid[c] = true
	}
	for i, slug := range want {
		tech := got[i]
		if tech.Slug != slug {
			t.Errorf("catalog[%d] = %q, want %q", i, tech.Slug, slug)
		}
		if !valid[tech.Category] {
			t.Errorf("%s: unknown category %q", slug, tech.Category)
		}
		if len(tech.Instructions) == 0 || tech.Duration <= 0 {
			t.Errorf("%s: missing instructions or duration", slug)
		}
		if tech.Pattern != nil {
			if err := tech.Pattern.Validate(); err != nil {
				t.Errorf("%s: %v", slug, err)
			}
		}
	}

	// Catalog returns a copy
	got[0].Name = "changed"
	if Catalog()[0].Name == "changed" {
		t.Error("Catalog exposed internal slice")
	}
}

func TestFind(t *testing.T) {
	tech, err := Find("BOX-breathing")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !tech.IsBreathing() || tech.IsBinaural() {
		t.Errorf("box-breathing flags wrong: %+v", tech)
	}
	if tech.Describe() != "Box Breathing (5 min, easy)" {
		t.Errorf("Describe = %q", tech.Describe())
	}

	_, err = Find("levitation")
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestByCategory(t *testing.T) {
	got := ByCategory(constants.CategoryMindfulness)
	if len(got) != 2 {
		t.Errorf("mindfulness techniques = %d, want 2", len(got))
	}
}

func TestPhaseAt(t *testing.T) {
	box := BreathingPattern{Inhale: 4 * time.Second, HoldIn: 4 * time.Second, Exhale: 4 * time.Second, HoldOut: 4 * time.Second}
	relax := BreathingPattern{Inhale: 4 * time.Second, HoldIn: 7 * time.Second, Exhale: 8 * time.Second}

	tests := []struct {
		name      string
		pattern   BreathingPattern
		elapsed   time.Duration
		phase     Phase
		remaining time.Duration
		cycle     int
	}{
		{"start", box, 0, PhaseInhale, 4 * time.Second, 0},
		{"negative", box, -time.Second, PhaseInhale, 4 * time.Second, 0},
		{"mid inhale", box, 1500 * time.Millisecond, PhaseInhale, 2500 * time.Millisecond, 0},
		{"hold in", box, 5 * time.Second, PhaseHoldIn, 3 * time.Second, 0},
		{"exhale", box, 8 * time.Second, PhaseExhale, 4 * time.Second, 0},
		{"hold out", box, 15 * time.Second, PhaseHoldOut, time.Second, 0},
		{"second cycle", box, 17 * time.Second, PhaseInhale, 3 * time.Second, 1},
		{"no hold out", relax, 19 * time.Second, PhaseInhale, 4 * time.Second, 1},
		{"long exhale", relax, 18 * time.Second, PhaseExhale, time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, remaining, cycle := tt.pattern.PhaseAt(tt.elapsed)
			if phase != tt.phase || remaining != tt.remaining || cycle != tt.cycle {
				t.Errorf("PhaseAt(%v) = (%v, %v, %d), want (%v, %v, %d)",
					tt.elapsed, phase, remaining, cycle, tt.phase, tt.remaining, tt.cycle)
			}
		})
	}
}

func TestPatternHelpers(t *testing.T) {
	p := BreathingPattern{Inhale: 4 * time.Second, HoldIn: 7 * time.Second, Exhale: 8 * time.Second}
	if p.Cycle() != 19*time.Second {
		t.Errorf("Cycle = %v", p.Cycle())
	}
	cues := p.Cues()
	if len(cues) != 3 || cues[0] != "Inhale 4" || cues[1] != "Hold 7" || cues[2] != "Exhale 8" {
		t.Errorf("Cues = %v", cues)
	}
	if p.Cycles(time.Minute) != 3 {
		t.Errorf("Cycles(1m) = %d", p.Cycles(time.Minute))
	}
	if p.Cycles(time.Second) != 1 {
		t.Errorf("Cycles(1s) = %d", p.Cycles(time.Second))
	}
	if err := (BreathingPattern{Inhale: time.Second}).Validate(); err == nil {
		t.Error("expected error for zero exhale")
	}
}

func TestBinauralBeat(t *testing.T) {
	left, right := BinauralBeat(200, 14)
	if left != 193 || right != 207 {
		t.Errorf("BinauralBeat(200, 14) = %v, %v", left, right)
	}
	if right-left != 14 {
		t.Errorf("difference = %v", right-left)
	}
}

func TestBand(t *testing.T) {
	tests := map[float64]string{2: "delta", 6: "theta", 10: "alpha", 14: "beta", 40: "gamma"}
	for hz, want := range tests {
		if got := Band(hz); got != want {
			t.Errorf("Band(%v) = %q, want %q", hz, got, want)
		}
	}
}

func TestValidateBeat(t *testing.T) {
	if err := ValidateBeat(200, 10); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateBeat(10, 10); err == nil {
		t.Error("expected error for low carrier")
	}
	if err := ValidateBeat(200, 0); err == nil {
		t.Error("expected error for zero beat")
	}
	if err := ValidateBeat(200, 50); err == nil {
		t.Error("expected error for high beat")
	}
}

func TestWriteWAV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, 200, 10, 100*time.Millisecond, 8000); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	// 44 byte header + 800 frames * 4 bytes
	if buf.Len() != 44+800*4 {
		t.Fatalf("wav size = %d", buf.Len())
	}
	b := buf.Bytes()
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Errorf("bad header: %q", b[:44])
	}
	if ch := binary.LittleEndian.Uint16(b[22:24]); ch != 2 {
		t.Errorf("channels = %d", ch)
	}
	for i := 44; i < len(b); i += 2 {
		s := int16(binary.LittleEndian.Uint16(b[i : i+2]))
		if math.Abs(float64(s)) > 0.31*math.MaxInt16 {
			t.Fatalf("sample %d out of amplitude: %d", i, s)
		}
	}

	if err := WriteWAV(&buf, 200, 10, time.Second, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestGuide(t *testing.T) {
	p := BreathingPattern{Inhale: 4 * time.Second, Exhale: 6 * time.Second}

	var spoken []string
	var waited time.Duration
	speak := func(_ context.Context, s string) error { spoken = append(spoken, s); return nil }
	wait := func(_ context.Context, d time.Duration) error { waited += d; return nil }

	n, err := p.Guide(context.Background(), 25*time.Second, speak, wait)
	if err != nil {
		t.Fatalf("Guide() error = %v", err)
	}
	if n != 2 {
		t.Errorf("cycles = %d, want 2", n)
	}
	want := []string{"Inhale", "Exhale", "Inhale", "Exhale"}
	if len(spoken) != len(want) {
		t.Fatalf("spoken = %v, want %v", spoken, want)
	}
	for i := range want {
		if spoken[i] != want[i] {
			t.Errorf("spoken[%d] = %q, want %q", i, spoken[i], want[i])
		}
	}
	if waited != 20*time.Second {
		t.Errorf("waited %v, want 20s", waited)
	}
}

func TestGuideCancelled(t *testing.T) {
	p := BreathingPattern{Inhale: time.Second, Exhale: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	speak := func(context.Context, string) error { return nil }
	n, err := p.Guide(ctx, 10*time.Second, speak, Sleep)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Errorf("cycles = %d, want 0", n)
	}
}
