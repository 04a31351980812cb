// Package uo parses the UO container format: a sequence of little-endian
// blocks, each beginning with the 0xFFAA marker, that wrap one or more
// 48-byte UO frames. It is an external collaborator of the frame decoder
// core (github.com/HornedViper/uodecode): it never interprets frame
// bytes itself, only scans for block/frame boundaries and dispatches to a
// Decoder.
package uo

import "errors"

// Package-level errors for UO container parsing.
var (
	// ErrMissingMarker indicates a block did not start with 0xFFAA.
	ErrMissingMarker = errors.New("uo: missing 0xFFAA block marker")

	// ErrTruncatedHeader indicates the stream ended before a full block
	// header (marker + type, plus the reset block's 2 extra bytes) could
	// be read.
	ErrTruncatedHeader = errors.New("uo: truncated block header")

	// ErrUnknownBlockType indicates a block type other than 0x0040 or
	// 0x0140.
	ErrUnknownBlockType = errors.New("uo: unknown block type")
)
