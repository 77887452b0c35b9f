// Package audio is a thin ebiten/v2 adapter that drains the core's APU
// sample buffer into a real audio sink. It is never imported by the core
// itself (internal/apu, internal/console); only cmd/nescore's
// non-headless path wires it in.
package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sampleRate must match the rate the ebiten audio context is created with;
// internal/config's AudioConfig.SampleRate is expected to agree.
const sampleRate = 44100

// Source is the APU's sample-drain surface: Samples returns and clears
// whatever has accumulated since the last call, exactly internal/apu.APU's
// own signature.
type Source interface {
	Samples() []float32
}

// Stream adapts a Source into the io.Reader ebiten/v2/audio's float player
// wants: interleaved stereo float32 PCM, little-endian. The core's mixer
// produces a mono sample stream; Stream duplicates each sample across both
// channels rather than attempting any real stereo separation, since the
// core has none to offer.
type Stream struct {
	mu     sync.Mutex
	source Source
	buf    []byte
}

// NewStream wraps source in an io.Reader suitable for
// audio.Context.NewPlayerF32.
func NewStream(source Source) *Stream {
	return &Stream{source: source}
}

// Read drains the source's pending samples into p, buffering any leftover
// bytes for the next call when p is smaller than a full batch.
func (s *Stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.buf) == 0 {
		for _, sample := range s.source.Samples() {
			var frame [8]byte
			bits := math.Float32bits(sample)
			binary.LittleEndian.PutUint32(frame[0:4], bits)
			binary.LittleEndian.PutUint32(frame[4:8], bits)
			s.buf = append(s.buf, frame[:]...)
		}
	}
	if len(s.buf) == 0 {
		return 0, nil
	}

	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

// Player owns the ebiten audio context and the streaming player reading
// from a Source.
type Player struct {
	context *audio.Context
	player  *audio.Player
}

// NewPlayer creates an ebiten audio context at sampleRate and starts a
// streaming player draining source.
func NewPlayer(source Source) (*Player, error) {
	ctx := audio.NewContext(sampleRate)
	p, err := ctx.NewPlayerF32(NewStream(source))
	if err != nil {
		return nil, err
	}
	p.Play()
	return &Player{context: ctx, player: p}, nil
}

// Close stops playback and releases the underlying player.
func (p *Player) Close() error {
	return p.player.Close()
}
