// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"encoding/hex"
	"io"
)

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeBitGen must decode a BitGen formatted string or else panics.
func MustDecodeBitGen(s string) []byte {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BuggyReader returns Err after N bytes have been read from R.
type BuggyReader struct {
	R   io.Reader
	N   int64 // Number of valid bytes to read
	Err error // Return this error after N bytes
}

func (br *BuggyReader) Read(buf []byte) (int, error) {
	if int64(len(buf)) > br.N {
		buf = buf[:br.N]
	}
	n, err := br.R.Read(buf)
	br.N -= int64(n)
	if err == nil && br.N <= 0 {
		return n, br.Err
	}
	return n, err
}

// BuggyWriter returns Err after N bytes have been written to W.
type BuggyWriter struct {
	W   io.Writer
	N   int64 // Number of valid bytes to write
	Err error // Return this error after N bytes
}

func (bw *BuggyWriter) Write(buf []byte) (int, error) {
	if int64(len(buf)) > bw.N {
		buf = buf[:bw.N]
	}
	n, err := bw.W.Write(buf)
	bw.N -= int64(n)
	if err == nil && bw.N <= 0 {
		return n, bw.Err
	}
	return n, err
}

// BitRecorder is an in-memory bit sink and source.  Bits written with
// WriteBool and WriteByte are appended, and ReadBool and ReadByte consume
// them in the same order, returning io.EOF once all have been consumed.
type BitRecorder struct {
	bits []bool
	pos  int
}

// WriteBool appends one bit.
func (r *BitRecorder) WriteBool(bit bool) error {
	r.bits = append(r.bits, bit)
	return nil
}

// WriteByte appends the 8 bits of c, most significant first.
func (r *BitRecorder) WriteByte(c byte) error {
	for i := 7; i >= 0; i-- {
		r.bits = append(r.bits, c&(1<<uint(i)) != 0)
	}
	return nil
}

// ReadBool consumes one bit.
func (r *BitRecorder) ReadBool() (bool, error) {
	if r.pos >= len(r.bits) {
		return false, io.EOF
	}
	bit := r.bits[r.pos]
	r.pos++
	return bit, nil
}

// ReadByte consumes 8 bits, most significant first.  If fewer than 8 bits
// remain, none are consumed and io.ErrUnexpectedEOF is returned.
func (r *BitRecorder) ReadByte() (byte, error) {
	switch rem := len(r.bits) - r.pos; {
	case rem == 0:
		return 0, io.EOF
	case rem < 8:
		return 0, io.ErrUnexpectedEOF
	}
	var c byte
	for i := 0; i < 8; i++ {
		c <<= 1
		if r.bits[r.pos] {
			c |= 1
		}
		r.pos++
	}
	return c, nil
}

// Len returns the number of bits not yet consumed.
func (r *BitRecorder) Len() int {
	return len(r.bits) - r.pos
}

// String returns the unconsumed bits as a string of '0' and '1'.
func (r *BitRecorder) String() string {
	buf := make([]byte, 0, r.Len())
	for _, bit := range r.bits[r.pos:] {
		if bit {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return string(buf)
}
