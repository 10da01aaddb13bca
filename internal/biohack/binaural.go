package biohack

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// Carrier and beat limits for generated tones.
const (
	MinCarrierHz = 40.0
	MaxCarrierHz = 1500.0
	MaxBeatHz    = 40.0
)

// BinauralBeat splits a carrier around beatHz: the listener perceives the
// difference between the two ears as the beat.
func BinauralBeat(carrierHz, beatHz float64) (left, right float64) {
	half := beatHz / 2
	return carrierHz - half, carrierHz + half
}

// ValidateBeat checks that a carrier/beat pair is audible and sensible.
func ValidateBeat(carrierHz, beatHz float64) error {
	if carrierHz < MinCarrierHz || carrierHz > MaxCarrierHz {
		return fmt.Errorf("carrier must be between %.0f and %.0f Hz, got %.1f", MinCarrierHz, MaxCarrierHz, carrierHz)
	}
	if beatHz <= 0 || beatHz > MaxBeatHz {
		return fmt.Errorf("beat must be between 0 and %.0f Hz, got %.1f", MaxBeatHz, beatHz)
	}
	return nil
}

// Band names the brainwave band a beat frequency targets.
func Band(beatHz float64) string {
	switch {
	case beatHz < 4:
		return "delta"
	case beatHz < 8:
		return "theta"
	case beatHz < 13:
		return "alpha"
	case beatHz < 30:
		return "beta"
	default:
		return "gamma"
	}
}

// WriteWAV writes a 16-bit stereo PCM tone for the beat.
func WriteWAV(w io.Writer, carrierHz, beatHz float64, d time.Duration, sampleRate int) error {
	if err := ValidateBeat(carrierHz, beatHz); err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive")
	}
	left, right := BinauralBeat(carrierHz, beatHz)
	frames := int(d.Seconds() * float64(sampleRate))
	dataSize := uint32(frames * 4)

	header := struct {
		ChunkID       [4]byte
		ChunkSize     uint32
		Format        [4]byte
		Subchunk1ID   [4]byte
		Subchunk1Size uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Subchunk2ID   [4]byte
		Subchunk2Size uint32
	}{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   2,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 4),
		BlockAlign:    4,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write wav header: %w", err)
	}

	const amplitude = 0.3 * math.MaxInt16
	buf := make([]int16, 2)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		buf[0] = int16(amplitude * math.Sin(2*math.Pi*left*t))
		buf[1] = int16(amplitude * math.Sin(2*math.Pi*right*t))
		if err := binary.Write(bw, binary.LittleEndian, buf); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
	}
	return bw.Flush()
}
