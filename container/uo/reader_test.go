package uo

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HornedViper/uodecode"
)

func blockHeader(blockType uint16, extra bool) []byte {
	h := []byte{markerByte0, markerByte1, 0, 0}
	binary.LittleEndian.PutUint16(h[2:4], blockType)
	if extra {
		h = append(h, 0, 0)
	}
	return h
}

func TestDecodeAllEmptyStream(t *testing.T) {
	r := NewReader(nil)
	out, err := r.DecodeAll(uodecode.NewDecoder())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecodeAllSingleResetBlockOneFrame(t *testing.T) {
	buf := blockHeader(0x0140, true)
	buf = append(buf, make([]byte, uodecode.FrameBytes)...)
	require.Len(t, buf, 54)

	r := NewReader(buf)
	out, err := r.DecodeAll(uodecode.NewDecoder())
	require.NoError(t, err)
	require.Len(t, out, 192)
	for _, v := range out {
		require.False(t, v != v, "sample is NaN") // not NaN
	}
}

func TestDecodeAllResetBlockActuallyResetsDecoder(t *testing.T) {
	// Decode a handful of non-trivial frames first to perturb state, then
	// feed a reset block with the same zero frame a fresh decoder would
	// see; the output must match a brand-new decoder's zero-frame output.
	dirty := uodecode.NewDecoder()
	nonzero := make([]byte, uodecode.FrameBytes)
	for i := range nonzero {
		nonzero[i] = byte(i*7 + 3)
	}
	for i := 0; i < 5; i++ {
		dirty.DecodeFrame(nonzero, 0)
	}

	buf := blockHeader(0x0140, true)
	buf = append(buf, make([]byte, uodecode.FrameBytes)...)

	r := NewReader(buf)
	out, err := r.DecodeAll(dirty)
	require.NoError(t, err)

	fresh := uodecode.NewDecoder()
	want := fresh.DecodeFrame(make([]byte, uodecode.FrameBytes), 0)

	require.Equal(t, want[:], out)
}

func TestDecodeAllFourFramesThenAnotherBlockNoReset(t *testing.T) {
	buf := blockHeader(0x0040, false)
	for i := 0; i < 4; i++ {
		buf = append(buf, make([]byte, uodecode.FrameBytes)...)
	}
	buf = append(buf, blockHeader(0x0040, false)...)
	buf = append(buf, make([]byte, uodecode.FrameBytes)...)

	r := NewReader(buf)
	out, err := r.DecodeAll(uodecode.NewDecoder())
	require.NoError(t, err)
	require.Len(t, out, 5*192)
}

func TestDecodeAllMissingMarker(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x40, 0x00}
	r := NewReader(buf)
	_, err := r.DecodeAll(uodecode.NewDecoder())
	require.ErrorIs(t, err, ErrMissingMarker)
}

func TestDecodeAllUnknownBlockType(t *testing.T) {
	buf := blockHeader(0x0050, false)
	r := NewReader(buf)
	_, err := r.DecodeAll(uodecode.NewDecoder())
	require.ErrorIs(t, err, ErrUnknownBlockType)
}

func TestDecodeAllTruncatedHeader(t *testing.T) {
	buf := []byte{markerByte0, markerByte1, 0x40}
	r := NewReader(buf)
	_, err := r.DecodeAll(uodecode.NewDecoder())
	require.ErrorIs(t, err, ErrTruncatedHeader)
}
