// Package wav writes canonical PCM16 mono WAV files. It hand-encodes the
// RIFF/WAVE header field-by-field with encoding/binary, the way the UO
// container package hand-decodes its own block headers, rather than
// pulling in a WAV-authoring library (none exists anywhere upstream).
package wav

import (
	"bytes"
	"encoding/binary"
	"io"
)

const (
	numChannels   = 1
	bitsPerSample = 16

	headerSize = 44

	// referenceScale matches the decoder core's documented PCM16 scaling:
	// sample * 32, clamped to the int16 range.
	referenceScale = 32
	sampleMax      = 32767
	sampleMin      = -32767
)

// Writer renders a slice of float64 decoder samples as a canonical
// 44-byte-header PCM16 mono WAV file. It holds only the sample rate.
type Writer struct {
	sampleRate uint32
}

// NewWriter returns a Writer that will tag its output with sampleRate.
func NewWriter(sampleRate uint32) *Writer {
	return &Writer{sampleRate: sampleRate}
}

// Write renders samples (in the decoder's native float64 scale) as a
// complete WAV file to w, applying the reference PCM16 scaling and clamp
// to each sample before encoding it little-endian.
func (wr *Writer) Write(w io.Writer, samples []float64) error {
	dataSize := uint32(len(samples)) * 2 // bytesPerSample = bitsPerSample/8

	byteRate := wr.sampleRate * numChannels * (bitsPerSample / 8)
	blockAlign := uint16(numChannels * (bitsPerSample / 8))

	var buf bytes.Buffer
	buf.Grow(headerSize + int(dataSize))

	buf.WriteString("RIFF")
	writeUint32(&buf, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeUint32(&buf, 16) // PCM fmt chunk size
	writeUint16(&buf, 1)  // PCM format tag
	writeUint16(&buf, numChannels)
	writeUint32(&buf, wr.sampleRate)
	writeUint32(&buf, byteRate)
	writeUint16(&buf, blockAlign)
	writeUint16(&buf, bitsPerSample)

	buf.WriteString("data")
	writeUint32(&buf, dataSize)

	for _, s := range samples {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(int16(clampSample(s))))
		buf.Write(b[:])
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func clampSample(s float64) float64 {
	v := s * referenceScale
	if v > sampleMax {
		return sampleMax
	}
	if v < sampleMin {
		return sampleMin
	}
	return v
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
