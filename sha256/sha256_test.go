package sha256

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestKnownAnswers(t *testing.T) {
	t.Parallel()

	vectors := []struct {
		name, message, digest string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"two blocks", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
		{"fox", "The quick brown fox jumps over the lazy dog",
			"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	}

	for _, v := range vectors {
		digest := Sum([]byte(v.message))

		assert.Equal(t, v.name, v.digest, hex.EncodeToString(digest[:]))
	}
}

func TestBoundaryPadding(t *testing.T) {
	t.Parallel()

	// Lengths chosen so the final block leaves 0-8 bytes of room, forcing the
	// padding into a second block, plus the exact one-block cases around it.
	vectors := map[int]string{
		55:  "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318",
		56:  "b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a",
		57:  "f13b2d724659eb3bf47f2dd6af1accc87b81f09f59f2b75e5c0bed6589dfe8c6",
		63:  "7d3e74a05d7db15bce4ad9ec0658ea98e3f06eeecf16b4c6fff2da457ddc2f34",
		64:  "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb",
		119: "31eba51c313a5c08226adf18d4a359cfdfd8d2e816b13f4af952f7ea6584dcfb",
		120: "2f3d335432c70b580af0e8e1b3674a7c020d683aa5f73aaaedfdc55af904c21c",
		127: "c57e9278af78fa3cab38667bef4ce29d783787a2f731d4e12200270f0c32320a",
		128: "6836cf13bac400e9105071cd6af47084dfacad4e5e302c94bfed24e013afb73e",
	}

	for n, want := range vectors {
		message := []byte(strings.Repeat("a", n))
		digest := Sum(message)

		assert.Equal(t, "one-shot", want, hex.EncodeToString(digest[:]))

		// The same message through the buffered wrapper, one byte at a time.
		h := NewBuffered()
		for _, b := range message {
			h.Update([]byte{b})
		}

		digest = h.Finish(nil)

		assert.Equal(t, "buffered", want, hex.EncodeToString(digest[:]))
	}
}

func TestIncrementalEquivalence(t *testing.T) {
	t.Parallel()

	message := testMessage(997)
	want := Sum(message)

	for _, chunk := range []int{1, 3, 7, 13, 63, 64, 65, 128, 997} {
		h := NewBuffered()

		for rest := message; len(rest) > 0; {
			n := chunk
			if n > len(rest) {
				n = len(rest)
			}

			h.Update(rest[:n])
			rest = rest[n:]
		}

		assert.Equal(t, "chunked digest", want, h.Finish(nil))
	}
}

func TestFinishWithTrailingData(t *testing.T) {
	t.Parallel()

	message := testMessage(300)

	h := NewBuffered()
	h.Update(message[:123])

	assert.Equal(t, "digest", Sum(message), h.Finish(message[123:]))
}

func TestRawMultiBlockFinish(t *testing.T) {
	t.Parallel()

	// Finish handles inputs of any length, including several whole blocks
	// plus a remainder.
	message := testMessage(3*BlockSize + 17)

	h := NewRaw()
	h.Update(message[:BlockSize])

	assert.Equal(t, "digest", Sum(message), h.Finish(message[BlockSize:]))
}

func TestStdlibEquivalence(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 257; n++ {
		message := testMessage(n)

		assert.Equal(t, "digest", stdsha256.Sum256(message), Sum(message))
	}
}

func TestEmptyUpdate(t *testing.T) {
	t.Parallel()

	h := NewBuffered()
	h.Update([]byte("partial"))

	before := *h

	h.Update(nil)
	h.Update([]byte{})

	assert.Equal(t, "buffered bytes", before.n, h.n)
	assert.Equal(t, "state", before.raw.h, h.raw.h)
	assert.Equal(t, "counter", before.raw.n, h.raw.n)
}

func TestRawRejectsUnalignedInput(t *testing.T) {
	t.Parallel()

	h := NewRaw()

	expectPanic(t, "unaligned update", func() {
		h.Update(make([]byte, BlockSize+1))
	})
}

func TestFinishConsumesState(t *testing.T) {
	t.Parallel()

	h := NewBuffered()
	h.Update([]byte("one"))
	_ = h.Finish(nil)

	expectPanic(t, "update after finish", func() {
		h.Update([]byte("two"))
	})

	expectPanic(t, "finish after finish", func() {
		_ = h.Finish(nil)
	})
}

func TestMessageLimit(t *testing.T) {
	t.Parallel()

	h := NewRaw()
	h.n = maxMessageBytes - BlockSize + 1

	expectPanic(t, "update past the limit", func() {
		h.Update(make([]byte, BlockSize))
	})

	h = NewRaw()
	h.n = maxMessageBytes - 3

	expectPanic(t, "finish past the limit", func() {
		_ = h.Finish([]byte("nope"))
	})
}

func testMessage(n int) []byte {
	message := make([]byte, n)
	for i := range message {
		message[i] = byte(i * 131)
	}

	return message
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("no panic from %s", name)
		}
	}()

	f()
}

func BenchmarkSum(b *testing.B) {
	message := bytes.Repeat([]byte("ayellowsubmarine"), 64*1024)

	b.SetBytes(int64(len(message)))

	for i := 0; i < b.N; i++ {
		_ = Sum(message)
	}
}

func BenchmarkBuffered(b *testing.B) {
	message := bytes.Repeat([]byte("ayellowsubmarine"), 64)

	b.SetBytes(int64(len(message)))

	for i := 0; i < b.N; i++ {
		h := NewBuffered()
		h.Update(message)
		_ = h.Finish(nil)
	}
}
