// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() int {
	r.Encrypt(r.blk[:], r.blk[:])
	return int(binary.LittleEndian.Uint64(r.blk[:]) >> 2)
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Skewed returns n bytes drawn from an alphabet of the given size, where
// symbol i is roughly twice as likely as symbol i+1.  The first symbol is
// base.  Skewed inputs produce deep, lopsided code trees.
func (r *Rand) Skewed(n int, base byte, alphabet int) []byte {
	b := make([]byte, n)
	for i := range b {
		sym := 0
		for sym < alphabet-1 && r.Intn(2) == 1 {
			sym++
		}
		b[i] = base + byte(sym)
	}
	return b
}
