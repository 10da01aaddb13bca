package voice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// Session is the single speech channel a guided timer talks through. It is
// passed in explicitly; callers own its lifetime.
type Session interface {
	Speak(ctx context.Context, text string) error
	Close() error
}

// WriterSession prints cues instead of speaking them.
type WriterSession struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSession(w io.Writer) *WriterSession {
	return &WriterSession{w: w}
}

func (s *WriterSession) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, text)
	return err
}

func (s *WriterSession) Close() error { return nil }

// CommandSession speaks through a local TTS program (say on macOS, espeak
// elsewhere). Only one utterance runs at a time.
type CommandSession struct {
	mu      sync.Mutex
	program string
	voice   string
	closed  bool
}

// NewCommandSession returns a session for program using voice (may be empty).
func NewCommandSession(program, voice string) *CommandSession {
	return &CommandSession{program: program, voice: voice}
}

func (s *CommandSession) args(text string) []string {
	if s.voice == "" {
		return []string{text}
	}
	return []string{"-v", s.voice, text}
}

func (s *CommandSession) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("speech session closed")
	}
	cmd := exec.CommandContext(ctx, s.program, s.args(text)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", s.program, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *CommandSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// DetectProgram returns the first available TTS program for this platform.
func DetectProgram() (string, bool) {
	candidates := []string{"espeak-ng", "espeak"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"say"}
	}
	for _, c := range candidates {
		if _, err := lookPath(c); err == nil {
			return c, true
		}
	}
	return "", false
}

// ListVoices asks program for its voices.
func ListVoices(ctx context.Context, program string) ([]Voice, error) {
	var args []string
	switch program {
	case "say":
		args = []string{"-v", "?"}
	default:
		args = []string{"--voices"}
	}
	out, err := exec.CommandContext(ctx, program, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	if program == "say" {
		return ParseSayVoices(string(out)), nil
	}
	return ParseEspeakVoices(string(out)), nil
}

// ParseSayVoices reads `say -v ?` output, one voice per line:
//
//	Samantha (Enhanced)  en_US    # Hello, my name is Samantha.
func ParseSayVoices(out string) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		lang := fields[len(fields)-1]
		name := strings.Join(fields[:len(fields)-1], " ")
		voices = append(voices, Voice{
			Name:  name,
			Lang:  strings.ReplaceAll(lang, "_", "-"),
			Tags:  InferTags(name),
			Local: true,
		})
	}
	return voices
}

// ParseEspeakVoices reads `espeak --voices` output:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-us           --/M      English_(America)  gmw/en-US            (en 2)
func ParseEspeakVoices(out string) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}
		name := fields[3]
		voices = append(voices, Voice{
			Name:  name,
			Lang:  fields[1],
			Tags:  InferTags(name),
			Local: true,
		})
	}
	return voices
}
