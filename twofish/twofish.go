// Package twofish implements the Twofish block cipher with 128-, 192- and
// 256-bit keys.
//
// Only the single-block primitive is provided. If you find yourself tempted
// to encrypt each block of a message with this directly, please read up on
// block cipher modes of operation first; raw ECB is the least secure way to
// use a block cipher.
//
// A Cipher is immutable once built and may be shared freely between
// goroutines.
package twofish

import (
	"crypto/cipher"
	"encoding/binary"
	"math/bits"
	"strconv"
)

// BlockSize is the size of a Twofish block in bytes.
const BlockSize = 16

// KeySizeError is returned when a key is not 16, 24 or 32 bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "twofish: invalid key size " + strconv.Itoa(int(k))
}

// Cipher contains the data derived from a single key: the four combined
// S-box/MDS lookup tables, the eight whitening subkeys and the 32 round
// subkeys. The raw key bytes are not retained.
type Cipher struct {
	s [4][256]uint32
	w [8]uint32
	k [32]uint32
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher derives a Cipher from a 16-, 24- or 32-byte key. Identical keys
// always yield identical ciphers.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}

	k64 := len(key) / 8

	// Split the key dwords into the even and odd schedule halves.
	me := make([][4]byte, k64)
	mo := make([][4]byte, k64)

	for i := 0; i < k64; i++ {
		copy(me[i][:], key[8*i:])
		copy(mo[i][:], key[8*i+4:])
	}

	// Multiply each 8-byte key chunk by the Reed-Solomon matrix to produce
	// the S-vector, in reverse chunk order.
	sv := make([][4]byte, k64)

	for i := 0; i < k64; i++ {
		chunk := key[8*i : 8*i+8]
		dst := &sv[k64-1-i]

		for row := 0; row < 4; row++ {
			for col := 0; col < 8; col++ {
				dst[row] ^= rsMul(rsMatrix[row][col], chunk[col])
			}
		}
	}

	c := &Cipher{}

	// Fold the h cascade and the MDS multiply into one 32-bit table per
	// input byte lane, keyed by the S-vector.
	for x := 0; x < 256; x++ {
		lanes := hLanes(byte(x), sv)
		c.s[0][x] = lanes[0]
		c.s[1][x] = lanes[1]
		c.s[2][x] = lanes[2]
		c.s[3][x] = lanes[3]
	}

	// Whitening subkeys occupy indices 0-7, round subkeys 8-39. Each pair
	// combines h of the even half and a rotated h of the odd half with a
	// pseudo-Hadamard transform.
	for i := 0; i < 20; i++ {
		a := hWord(byte(2*i), me)
		b := bits.RotateLeft32(hWord(byte(2*i+1), mo), 8)

		even := a + b
		odd := bits.RotateLeft32(a+2*b, 9)

		if i < 4 {
			c.w[2*i] = even
			c.w[2*i+1] = odd
		} else {
			c.k[2*(i-4)] = even
			c.k[2*(i-4)+1] = odd
		}
	}

	return c, nil
}

// New128 derives a Cipher from a 16-byte key.
func New128(key []byte) (*Cipher, error) {
	if len(key) != 16 {
		return nil, KeySizeError(len(key))
	}

	return NewCipher(key)
}

// New192 derives a Cipher from a 24-byte key.
func New192(key []byte) (*Cipher, error) {
	if len(key) != 24 {
		return nil, KeySizeError(len(key))
	}

	return NewCipher(key)
}

// New256 derives a Cipher from a 32-byte key.
func New256(key []byte) (*Cipher, error) {
	if len(key) != 32 {
		return nil, KeySizeError(len(key))
	}

	return NewCipher(key)
}

// BlockSize returns the Twofish block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the 16-byte block in src and writes it to dst. It is safe
// for src and dst to overlap.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("twofish: input not full block")
	}

	if len(dst) < BlockSize {
		panic("twofish: output not full block")
	}

	r0 := binary.LittleEndian.Uint32(src[0:4]) ^ c.w[0]
	r1 := binary.LittleEndian.Uint32(src[4:8]) ^ c.w[1]
	r2 := binary.LittleEndian.Uint32(src[8:12]) ^ c.w[2]
	r3 := binary.LittleEndian.Uint32(src[12:16]) ^ c.w[3]

	for round := 0; round < 32; round += 4 {
		f0, f1 := c.f(r0, r1, round)
		r2 = bits.RotateLeft32(r2^f0, -1)
		r3 = bits.RotateLeft32(r3, 1) ^ f1

		f0, f1 = c.f(r2, r3, round+2)
		r0 = bits.RotateLeft32(r0^f0, -1)
		r1 = bits.RotateLeft32(r1, 1) ^ f1
	}

	binary.LittleEndian.PutUint32(dst[0:4], r2^c.w[4])
	binary.LittleEndian.PutUint32(dst[4:8], r3^c.w[5])
	binary.LittleEndian.PutUint32(dst[8:12], r0^c.w[6])
	binary.LittleEndian.PutUint32(dst[12:16], r1^c.w[7])
}

// Decrypt decrypts the 16-byte block in src and writes it to dst. It is safe
// for src and dst to overlap.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("twofish: input not full block")
	}

	if len(dst) < BlockSize {
		panic("twofish: output not full block")
	}

	// The same round function, traversed in reverse with the rotations
	// inverted.
	r0 := binary.LittleEndian.Uint32(src[8:12]) ^ c.w[6]
	r1 := binary.LittleEndian.Uint32(src[12:16]) ^ c.w[7]
	r2 := binary.LittleEndian.Uint32(src[0:4]) ^ c.w[4]
	r3 := binary.LittleEndian.Uint32(src[4:8]) ^ c.w[5]

	for round := 28; round >= 0; round -= 4 {
		f0, f1 := c.f(r2, r3, round+2)
		r0 = bits.RotateLeft32(r0, 1) ^ f0
		r1 = bits.RotateLeft32(r1^f1, -1)

		f0, f1 = c.f(r0, r1, round)
		r2 = bits.RotateLeft32(r2, 1) ^ f0
		r3 = bits.RotateLeft32(r3^f1, -1)
	}

	binary.LittleEndian.PutUint32(dst[0:4], r0^c.w[0])
	binary.LittleEndian.PutUint32(dst[4:8], r1^c.w[1])
	binary.LittleEndian.PutUint32(dst[8:12], r2^c.w[2])
	binary.LittleEndian.PutUint32(dst[12:16], r3^c.w[3])
}

// f is the Feistel round function: g of both words, the second rotated left
// eight bits first, mixed with two round subkeys by a pseudo-Hadamard
// transform.
func (c *Cipher) f(x, y uint32, round int) (uint32, uint32) {
	t0 := c.g(x)
	t1 := c.g(bits.RotateLeft32(y, 8))

	return t0 + t1 + c.k[round], t0 + 2*t1 + c.k[round+1]
}

// g substitutes and diffuses one word with a single table lookup per byte.
func (c *Cipher) g(x uint32) uint32 {
	return c.s[0][byte(x)] ^ c.s[1][byte(x>>8)] ^ c.s[2][byte(x>>16)] ^ c.s[3][byte(x>>24)]
}

// hLanes runs the key-size-staged permutation cascade over one byte, splatted
// across all four lanes, and returns the four MDS output lanes separately.
// The key material l holds two, three or four dwords; l[0] is applied last.
func hLanes(x byte, l [][4]byte) [4]uint32 {
	y0, y1, y2, y3 := x, x, x, x

	switch len(l) {
	case 4:
		y0 = qTable1[y0] ^ l[3][0]
		y1 = qTable0[y1] ^ l[3][1]
		y2 = qTable0[y2] ^ l[3][2]
		y3 = qTable1[y3] ^ l[3][3]

		fallthrough
	case 3:
		y0 = qTable1[y0] ^ l[2][0]
		y1 = qTable1[y1] ^ l[2][1]
		y2 = qTable0[y2] ^ l[2][2]
		y3 = qTable0[y3] ^ l[2][3]
	}

	return [4]uint32{
		mdsColumn[0][qTable1[qTable0[qTable0[y0]^l[1][0]]^l[0][0]]],
		mdsColumn[1][qTable0[qTable0[qTable1[y1]^l[1][1]]^l[0][1]]],
		mdsColumn[2][qTable1[qTable1[qTable0[y2]^l[1][2]]^l[0][2]]],
		mdsColumn[3][qTable0[qTable1[qTable1[y3]^l[1][3]]^l[0][3]]],
	}
}

// hWord is hLanes with the four lanes XORed into a single word, as used for
// subkey generation.
func hWord(x byte, l [][4]byte) uint32 {
	lanes := hLanes(x, l)

	return lanes[0] ^ lanes[1] ^ lanes[2] ^ lanes[3]
}
