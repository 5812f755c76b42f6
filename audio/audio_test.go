package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// encodeWAV builds a minimal mono 16-bit PCM WAV with n zero samples.
func encodeWAV(t *testing.T, sampleRate uint32, n int) []byte {
	t.Helper()
	var buf bytes.Buffer
	dataLen := uint32(n * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, sampleRate)
	binary.Write(&buf, binary.LittleEndian, sampleRate*2) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))    // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))   // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(make([]byte, dataLen))

	return buf.Bytes()
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"wav", []byte("RIFFxxxxWAVE"), "wav"},
		{"ogg", []byte("OggS\x00"), "ogg"},
		{"mp3 id3", []byte("ID3\x04"), "mp3"},
		{"short", []byte("ab"), "mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sniffFormat(tt.data); got != tt.want {
				t.Errorf("sniffFormat = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtFormat(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"jump.wav", "wav"},
		{"assets/theme.OGG", "ogg"},
		{"a.b.mp3", "mp3"},
		{"noext", ""},
	}
	for _, tt := range tests {
		if got := extFormat(tt.path); got != tt.want {
			t.Errorf("extFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewSound(t *testing.T) {
	data := encodeWAV(t, 44100, 4410)

	s, err := NewSound(data)
	if err != nil {
		t.Fatal(err)
	}

	// 4410 samples at 44.1kHz is 100ms.
	if ms := s.Duration().Milliseconds(); ms != 100 {
		t.Errorf("Duration = %dms, want 100ms", ms)
	}
}

func TestNewSoundBadData(t *testing.T) {
	if _, err := NewSound([]byte("RIFFgarbage")); err == nil {
		t.Error("expected decode error")
	}
}

func TestNewMusic(t *testing.T) {
	m, err := NewMusic(encodeWAV(t, 44100, 100))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	st, format := m.audioStream()
	if st == nil {
		t.Fatal("nil streamer")
	}
	if format.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", format.SampleRate)
	}
	if err := m.Rewind(); err != nil {
		t.Errorf("Rewind: %v", err)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, _, err := decode(io.NopCloser(bytes.NewReader(nil)), "flac")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}
