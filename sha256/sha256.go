// Package sha256 implements the SHA-256 cryptographic hash function in both
// buffered and unbuffered flavors, without any heap allocation in the hashing
// path.
//
// Use Sum if the data being hashed is already contiguous in memory, Raw if it
// is convenient to provide data in 64-byte blocks, or Buffered otherwise.
//
// A state is consumed by Finish: once a digest has been produced, any further
// use of that state panics. A state must not be shared between goroutines
// without external synchronization.
package sha256

import (
	"encoding/binary"
	"math/bits"
)

const (
	Size      = 32 // The size of a SHA-256 digest in bytes.
	BlockSize = 64 // The size of a SHA-256 input block in bytes.

	// maxMessageBytes is the most a single state will hash. The bit-length
	// field in the padding block is eight bytes, but the design ceiling is
	// 2^61-1 bytes.
	maxMessageBytes = 1<<61 - 1
)

var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1,
	0x923f82a4, 0xab1c5ed5, 0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174, 0xe49b69c1, 0xefbe4786,
	0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147,
	0x06ca6351, 0x14292967, 0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85, 0xa2bfe8a1, 0xa81a664b,
	0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a,
	0x5b9cca4f, 0x682e6ff3, 0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Raw is a SHA-256 state without an input buffer. Update must be given data
// in exact multiples of BlockSize; Finish accepts a trailing remainder of any
// length.
type Raw struct {
	h    [8]uint32
	n    uint64
	done bool
}

// NewRaw returns a new, empty state.
func NewRaw() *Raw {
	return &Raw{h: initState}
}

// Update hashes one or more full blocks of data. It panics if the state has
// been finished, if len(data) is not a multiple of BlockSize, or if the total
// hashed length would pass the 2^61-byte ceiling. Updating with zero bytes
// leaves the state unchanged.
func (d *Raw) Update(data []byte) {
	if d.done {
		panic("sha256: update of finished state")
	}

	if len(data)%BlockSize != 0 {
		panic("sha256: input not a multiple of the block size")
	}

	if uint64(len(data)) > maxMessageBytes-d.n {
		panic("sha256: message exceeds 2^61 bytes")
	}

	d.n += uint64(len(data))

	for len(data) > 0 {
		d.compress(data[:BlockSize])
		data = data[BlockSize:]
	}
}

// Finish hashes any remaining data, which need not be block-aligned, and
// produces the digest. The state is consumed: all further use panics.
func (d *Raw) Finish(data []byte) [Size]byte {
	if d.done {
		panic("sha256: finish of finished state")
	}

	// Run all complete leading blocks through Update, leaving a remainder
	// shorter than one block.
	if len(data) >= BlockSize {
		whole := len(data) - len(data)%BlockSize
		d.Update(data[:whole])
		data = data[whole:]
	}

	if uint64(len(data)) > maxMessageBytes-d.n {
		panic("sha256: message exceeds 2^61 bytes")
	}

	n := d.n + uint64(len(data))

	// Append the 0x80 marker after the remainder, then the bit length in the
	// final eight bytes. If the remainder leaves no room for both, the
	// padding spills into a second block.
	var pad [2 * BlockSize]byte

	copy(pad[:], data)
	pad[len(data)] = 0x80

	if len(data) > BlockSize-9 {
		binary.BigEndian.PutUint64(pad[2*BlockSize-8:], n<<3)
		d.compress(pad[:BlockSize])
		d.compress(pad[BlockSize:])
	} else {
		binary.BigEndian.PutUint64(pad[BlockSize-8:], n<<3)
		d.compress(pad[:BlockSize])
	}

	d.done = true

	var digest [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(digest[4*i:], v)
	}

	return digest
}

// compress folds a single 64-byte block into the state.
func (d *Raw) compress(block []byte) {
	var w [64]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}

	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, dd := d.h[0], d.h[1], d.h[2], d.h[3]
	e, f, g, h := d.h[4], d.h[5], d.h[6], d.h[7]

	for i := 0; i < 64; i++ {
		sum1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + sum1 + ch + roundConstants[i] + w[i]

		sum0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := sum0 + maj

		h, g, f, e = g, f, e, dd+t1
		dd, c, b, a = c, b, a, t1+t2
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
}

// Buffered is a SHA-256 state with an input buffer, allowing data to be
// provided in any increments.
type Buffered struct {
	raw Raw
	buf [BlockSize]byte
	n   int
}

// NewBuffered returns a new, empty state.
func NewBuffered() *Buffered {
	return &Buffered{raw: Raw{h: initState}}
}

// Update hashes data of any length. It panics if the state has been finished
// or if the total hashed length would pass the 2^61-byte ceiling.
func (d *Buffered) Update(data []byte) {
	if d.raw.done {
		panic("sha256: update of finished state")
	}

	// Top up a partial buffer first, flushing it if it reaches a full block.
	if d.n > 0 {
		r := copy(d.buf[d.n:], data)
		d.n += r
		data = data[r:]

		if d.n < BlockSize {
			return
		}

		d.raw.Update(d.buf[:])
		d.n = 0
	}

	// Hash all complete blocks directly, without copying.
	if whole := len(data) &^ (BlockSize - 1); whole > 0 {
		d.raw.Update(data[:whole])
		data = data[whole:]
	}

	// Retain the incomplete tail.
	d.n = copy(d.buf[:], data)
}

// Finish hashes any remaining data and produces the digest. The state is
// consumed: all further use panics.
func (d *Buffered) Finish(data []byte) [Size]byte {
	if len(data) > 0 {
		d.Update(data)
	}

	return d.raw.Finish(d.buf[:d.n])
}

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) [Size]byte {
	return NewRaw().Finish(data)
}
