// Package uodecode implements the frame decoder core for the UO
// narrowband speech codec: a CELP synthesis pipeline that turns 48-byte,
// 24ms frames of an 8kHz mono bitstream into 192 floating-point audio
// samples per frame.
//
// The decoder combines bit-level unpacking, a codebook-driven excitation,
// a long-term (pitch) predictor over a lag history buffer, a short-term
// (LPC) synthesis filter derived from Line Spectral Frequencies, and an
// adaptive gain model driven by energy-ratio gain shaping. All state lives
// in a single Decoder value; instances never share state and decoding a
// frame never fails.
package uodecode
