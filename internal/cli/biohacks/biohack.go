package biohacks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/biohack"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/voice"
)

type BiohackCmd struct {
	List    BiohackListCmd    `cmd:"" help:"List biohacking techniques."`
	Show    BiohackShowCmd    `cmd:"" help:"Show a technique's instructions."`
	Breathe BiohackBreatheCmd `cmd:"" help:"Run a guided breathing session."`
	Beat    BiohackBeatCmd    `cmd:"" help:"Write a binaural beat to a WAV file."`
}

type BiohackListCmd struct {
	Category string `short:"c" help:"Only show this category."`
}

func (c *BiohackListCmd) Run(ctx *cli.Context) error {
	techniques := biohack.Catalog()
	if c.Category != "" {
		techniques = biohack.ByCategory(c.Category)
	}
	if len(techniques) == 0 {
		fmt.Println("No techniques found.")
		return nil
	}
	for _, t := range techniques {
		fmt.Printf("%-20s %s\n", t.Slug, t.Describe())
		fmt.Printf("%-20s %s\n", "", cli.PendingStyle.Render(t.Summary))
	}
	return nil
}

type BiohackShowCmd struct {
	Slug string `arg:"" help:"Technique slug, e.g. box-breathing."`
}

func (c *BiohackShowCmd) Run(ctx *cli.Context) error {
	t, err := biohack.Find(c.Slug)
	if err != nil {
		return err
	}

	fmt.Println(cli.HeaderStyle.Render(t.Describe()))
	fmt.Printf("Category: %s\n\n%s\n", t.Category, t.Summary)
	if len(t.Benefits) > 0 {
		fmt.Println("\nBenefits:")
		for _, b := range t.Benefits {
			fmt.Printf("  - %s\n", b)
		}
	}
	fmt.Println("\nInstructions:")
	for i, step := range t.Instructions {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	if t.IsBreathing() {
		fmt.Printf("\nPattern: %v\n", t.Pattern.Cues())
		fmt.Printf("Run it: evolv biohack breathe %s\n", t.Slug)
	}
	if t.IsBinaural() {
		left, right := biohack.BinauralBeat(t.CarrierHz, t.BeatHz)
		fmt.Printf("\nTone: %.1f Hz left / %.1f Hz right (%s band)\n", left, right, biohack.Band(t.BeatHz))
		fmt.Printf("Generate it: evolv biohack beat --carrier %.0f --beat %.0f\n", t.CarrierHz, t.BeatHz)
	}
	return nil
}

type BiohackBreatheCmd struct {
	Slug    string        `arg:"" optional:"" default:"box-breathing" help:"Breathing technique slug."`
	Duration time.Duration `help:"Session length (default: the technique's)." placeholder:"5m"`
	Voice   bool          `help:"Speak cues through the system speech program." negatable:"" default:"true"`
}

// newSession picks a spoken session when a speech program and a voice are
// available, and plain text otherwise.
var newSession = func(ctx context.Context, tags string, enabled bool) voice.Session {
	if !enabled {
		return voice.NewWriterSession(os.Stdout)
	}
	program, ok := voice.DetectProgram()
	if !ok {
		return voice.NewWriterSession(os.Stdout)
	}
	voices, err := voice.ListVoices(ctx, program)
	if err != nil {
		logger.Debug("voice listing failed", "program", program, "error", err)
		return voice.NewWriterSession(os.Stdout)
	}
	best, err := voice.NewTagRanker(tags, language(os.Getenv("LANG"))).Best(voices)
	if err != nil {
		return voice.NewWriterSession(os.Stdout)
	}
	logger.Debug("speaking with", "program", program, "voice", best.Name)
	return voice.NewCommandSession(program, best.Name)
}

// language reduces a locale such as "en_US.UTF-8" to "en".
func language(locale string) string {
	if i := strings.IndexAny(locale, "_.@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return locale
}

var wait = biohack.Sleep

func (c *BiohackBreatheCmd) Run(ctx *cli.Context) error {
	t, err := biohack.Find(c.Slug)
	if err != nil {
		return err
	}
	if !t.IsBreathing() {
		return fmt.Errorf("%s is not a breathing technique; see 'evolv biohack show %s'", t.Name, t.Slug)
	}
	total := t.Duration
	if c.Duration > 0 {
		total = c.Duration
	}

	tags := ""
	if ctx.Store != nil {
		if s, err := ctx.Store.GetSettings(); err == nil {
			tags = s.PreferredVoiceTags
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := newSession(runCtx, tags, c.Voice)
	defer session.Close()

	fmt.Printf("%s: %d cycles of %v. Ctrl+C to stop.\n", t.Name, t.Pattern.Cycles(total), t.Pattern.Cues())
	done, err := t.Pattern.Guide(runCtx, total, session.Speak, wait)
	if errors.Is(err, context.Canceled) {
		fmt.Printf("\nStopped after %d cycles.\n", done)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("✓ Completed %d cycles.\n", done)
	return nil
}

type BiohackBeatCmd struct {
	Carrier    float64       `help:"Carrier frequency in Hz." default:"200"`
	Beat       float64       `help:"Beat frequency in Hz." default:"10"`
	Duration   time.Duration `help:"Length of the audio." default:"10m"`
	SampleRate int           `name:"sample-rate" help:"Samples per second." default:"44100"`
	Out        string        `short:"o" help:"Output WAV path." default:"binaural.wav"`
}

func (c *BiohackBeatCmd) Run(ctx *cli.Context) error {
	if err := biohack.ValidateBeat(c.Carrier, c.Beat); err != nil {
		return err
	}
	if c.Duration <= 0 || c.Duration > 2*time.Hour {
		return fmt.Errorf("duration must be between 0 and 2h")
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Out, err)
	}
	defer f.Close()

	if err := biohack.WriteWAV(f, c.Carrier, c.Beat, c.Duration, c.SampleRate); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	left, right := biohack.BinauralBeat(c.Carrier, c.Beat)
	fmt.Printf("✓ Wrote %s (%s band, %.1f/%.1f Hz, %s). Use headphones.\n", c.Out, biohack.Band(c.Beat), left, right, c.Duration)
	return nil
}
