package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	samples []float32
}

func (f *fakeSource) Samples() []float32 {
	s := f.samples
	f.samples = nil
	return s
}

func TestStreamReadEncodesInterleavedFloatStereo(t *testing.T) {
	src := &fakeSource{samples: []float32{0.5, -0.25}}
	stream := NewStream(src)

	buf := make([]byte, 16)
	n, err := stream.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	left := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	right := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	require.InDelta(t, 0.5, left, 1e-6)
	require.InDelta(t, 0.5, right, 1e-6)
}

func TestStreamReadReturnsZeroWhenNoSamplesPending(t *testing.T) {
	src := &fakeSource{}
	stream := NewStream(src)

	n, err := stream.Read(make([]byte, 16))
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestStreamReadSpansMultipleReadsWhenBufferIsSmall(t *testing.T) {
	src := &fakeSource{samples: []float32{1, 2, 3}}
	stream := NewStream(src)

	small := make([]byte, 8) // one sample's worth of stereo frame
	total := 0
	for i := 0; i < 3; i++ {
		n, err := stream.Read(small)
		require.NoError(t, err)
		total += n
	}
	require.Equal(t, 24, total)
}
