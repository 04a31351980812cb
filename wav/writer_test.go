package wav

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteEmptySamplesIsCanonical44ByteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(8000)
	require.NoError(t, w.Write(&buf, nil))

	require.Len(t, buf.Bytes(), headerSize)

	out := buf.Bytes()
	require.Equal(t, "RIFF", string(out[0:4]))
	require.Equal(t, uint32(36), binary.LittleEndian.Uint32(out[4:8]))
	require.Equal(t, "WAVE", string(out[8:12]))
	require.Equal(t, "fmt ", string(out[12:16]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(out[16:20]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[22:24]))
	require.Equal(t, uint32(8000), binary.LittleEndian.Uint32(out[24:28]))
	require.Equal(t, uint32(16000), binary.LittleEndian.Uint32(out[28:32])) // byteRate
	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[32:34]))    // blockAlign
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]))
	require.Equal(t, "data", string(out[36:40]))
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(out[40:44]))
}

func TestWriteEncodesSamplesWithReferenceScaleAndClamp(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(8000)
	samples := []float64{1, -1, 2000, -2000}
	require.NoError(t, w.Write(&buf, samples))

	require.Len(t, buf.Bytes(), headerSize+len(samples)*2)

	data := buf.Bytes()[headerSize:]
	got := make([]int16, len(samples))
	for i := range got {
		got[i] = int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
	}
	require.Equal(t, []int16{32, -32, 32767, -32767}, got)
}

func TestWriteDataSizeMatchesHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(16000)
	samples := make([]float64, 192)
	require.NoError(t, w.Write(&buf, samples))

	out := buf.Bytes()
	dataSize := binary.LittleEndian.Uint32(out[40:44])
	require.Equal(t, uint32(192*2), dataSize)
	require.Equal(t, uint32(36+dataSize), binary.LittleEndian.Uint32(out[4:8]))
}
