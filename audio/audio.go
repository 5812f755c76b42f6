// Package audio loads and plays game audio.
//
// Audio comes in two flavors. A [Sound] is decoded fully into memory
// and is meant for short effects that play often. [Music] streams from
// its source while playing, which keeps large tracks out of memory but
// means a Music should only play once at a time.
//
// Create one [Player] per game, load sounds in init, and play them
// from onloop:
//
//	player, err := audio.NewPlayer()
//	jump, err := audio.SoundFromFile("assets/jump.wav")
//	...
//	player.Play(jump)
//
// WAV, MP3, and Ogg Vorbis data are supported.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"github.com/genji-engine/genji/internal/logging"
	"github.com/genji-engine/genji/store"
)

// SampleRate is the playback sample rate. Sources with other rates are
// resampled when played.
const SampleRate = beep.SampleRate(44100)

// ErrUnknownFormat means the audio data is not WAV, MP3, or Ogg
// Vorbis.
var ErrUnknownFormat = errors.New("audio: unknown format")

// SoundStore is a named registry of sounds.
type SoundStore = store.Store[*Sound]

// MusicStore is a named registry of music.
type MusicStore = store.Store[*Music]

// Source is anything the [Player] can play. Implemented by [Sound] and
// [Music].
type Source interface {
	audioStream() (beep.Streamer, beep.Format)
}

// Player owns the audio device. Create exactly one per process; the
// underlying speaker is global.
type Player struct{}

// NewPlayer opens the audio device at [SampleRate] with a 100ms
// buffer.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Player{}, nil
}

// Play starts a source playing and returns immediately. Sources at
// other sample rates are resampled. A nil source, or a nil player from
// a failed NewPlayer, is logged and ignored so games keep running
// without audio.
func (p *Player) Play(src Source) {
	if p == nil {
		logging.Logger().Warn("audio: playback unavailable, play dropped")
		return
	}
	if src == nil {
		logging.Logger().Warn("audio: play of nil source dropped")
		return
	}
	st, format := src.audioStream()
	if format.SampleRate != SampleRate {
		st = beep.Resample(4, format.SampleRate, SampleRate, st)
	}
	speaker.Play(st)
}

// Sound is a short audio clip, fully decoded in memory. A Sound may
// play any number of times, concurrently with itself.
type Sound struct {
	buf *beep.Buffer
}

// NewSound decodes audio data into a sound. The format is detected
// from the data itself.
func NewSound(data []byte) (*Sound, error) {
	st, format, err := decode(io.NopCloser(bytes.NewReader(data)), sniffFormat(data))
	if err != nil {
		return nil, err
	}
	return bufferSound(st, format)
}

// SoundFromFile reads and decodes an audio file into a sound. The
// format is detected from the file extension.
func SoundFromFile(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open sound: %w", err)
	}
	return soundFromReader(f, extFormat(path))
}

func soundFromReader(rc io.ReadCloser, format string) (*Sound, error) {
	st, f, err := decode(rc, format)
	if err != nil {
		return nil, err
	}
	return bufferSound(st, f)
}

func bufferSound(st beep.StreamSeekCloser, format beep.Format) (*Sound, error) {
	buf := beep.NewBuffer(format)
	buf.Append(st)
	st.Close()
	return &Sound{buf: buf}, nil
}

// Duration returns the clip's length.
func (s *Sound) Duration() time.Duration {
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

func (s *Sound) audioStream() (beep.Streamer, beep.Format) {
	return s.buf.Streamer(0, s.buf.Len()), s.buf.Format()
}

// Music is a streamed audio track. It decodes as it plays, so play a
// given Music only once at a time, and Close it when done.
type Music struct {
	st     beep.StreamSeekCloser
	format beep.Format
}

// NewMusic prepares audio data for streamed playback. The format is
// detected from the data itself.
func NewMusic(data []byte) (*Music, error) {
	st, format, err := decode(io.NopCloser(bytes.NewReader(data)), sniffFormat(data))
	if err != nil {
		return nil, err
	}
	return &Music{st: st, format: format}, nil
}

// MusicFromFile opens an audio file for streamed playback. The file
// stays open until the Music is closed.
func MusicFromFile(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open music: %w", err)
	}
	st, format, err := decode(f, extFormat(path))
	if err != nil {
		return nil, err
	}
	return &Music{st: st, format: format}, nil
}

// Rewind seeks back to the start of the track.
func (m *Music) Rewind() error {
	if err := m.st.Seek(0); err != nil {
		return fmt.Errorf("audio: rewind: %w", err)
	}
	return nil
}

// Close releases the decoder and any underlying file.
func (m *Music) Close() error {
	return m.st.Close()
}

func (m *Music) audioStream() (beep.Streamer, beep.Format) {
	return m.st, m.format
}

// sniffFormat guesses the container from magic bytes.
func sniffFormat(data []byte) string {
	switch {
	case len(data) >= 4 && string(data[:4]) == "RIFF":
		return "wav"
	case len(data) >= 4 && string(data[:4]) == "OggS":
		return "ogg"
	default:
		return "mp3"
	}
}

func extFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func decode(rc io.ReadCloser, format string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		st  beep.StreamSeekCloser
		f   beep.Format
		err error
	)
	switch format {
	case "wav":
		st, f, err = wav.Decode(rc)
	case "ogg", "oga":
		st, f, err = vorbis.Decode(rc)
	case "mp3":
		st, f, err = mp3.Decode(rc)
	default:
		rc.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		rc.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: decode %s: %w", format, err)
	}
	return st, f, nil
}
