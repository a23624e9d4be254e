package hctree

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/icza/bitio"

	"github.com/chronos-tachyon/hctree/internal/testutil"
)

var errBoom = errors.New("boom")

// failingBits fails every operation with errBoom after N bits.
type failingBits struct {
	N int
}

func (f *failingBits) WriteBool(bool) error {
	if f.N <= 0 {
		return errBoom
	}
	f.N--
	return nil
}

func (f *failingBits) WriteByte(byte) error {
	if f.N < 8 {
		return errBoom
	}
	f.N -= 8
	return nil
}

func (f *failingBits) ReadBool() (bool, error) {
	if f.N <= 0 {
		return false, errBoom
	}
	f.N--
	return false, nil
}

func (f *failingBits) ReadByte() (byte, error) {
	if f.N < 8 {
		return 0, errBoom
	}
	f.N -= 8
	return 0, nil
}

func scenarioTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTreeFromBytes([]byte{10, 97, 97, 98})
	if err != nil {
		t.Fatalf("NewTreeFromBytes failed: %v", err)
	}
	return tree
}

func TestEncodeBytes(t *testing.T) {
	tree := scenarioTree(t)

	var rec testutil.BitRecorder
	if err := tree.EncodeBytes(&rec, []byte{10, 97, 97, 98}); err != nil {
		t.Fatalf("EncodeBytes failed: %v", err)
	}
	if expect, actual := "001101", rec.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	out, err := tree.DecodeBytes(&rec, 4)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if diff := cmp.Diff([]byte{10, 97, 97, 98}, out); diff != "" {
		t.Errorf("wrong output (-expect +actual):\n%s", diff)
	}
	if rec.Len() != 0 {
		t.Errorf("%d bits left unread", rec.Len())
	}
}

func TestEncode_MissingSymbol(t *testing.T) {
	tree := scenarioTree(t)

	var rec testutil.BitRecorder
	err := tree.Encode(&rec, 'z')
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
	if rec.Len() != 0 {
		t.Errorf("expected nothing written, got %s", rec.String())
	}

	err = tree.EncodeBytes(&rec, []byte("aaz"))
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestEncode_WriterError(t *testing.T) {
	tree := scenarioTree(t)
	err := tree.EncodeBytes(&failingBits{N: 3}, []byte{10, 97, 97, 98})
	if err != errBoom {
		t.Errorf("expected %v as is, got %v", errBoom, err)
	}
}

func TestDecode_Singleton(t *testing.T) {
	tree, err := NewTreeFromBytes([]byte("aaaaa"))
	if err != nil {
		t.Fatalf("NewTreeFromBytes failed: %v", err)
	}

	var rec testutil.BitRecorder
	for _, bit := range []bool{false, true, false} {
		_ = rec.WriteBool(bit)
	}
	out, err := tree.DecodeBytes(&rec, 3)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if expect, actual := "aaa", string(out); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	_, err = tree.Decode(&rec)
	if !errors.Is(err, ErrCorrupt) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrCorrupt wrapping io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestDecode_Exhausted(t *testing.T) {
	tree := scenarioTree(t)

	for _, bits := range []string{"", "0", "0010"} {
		var rec testutil.BitRecorder
		for _, ch := range bits {
			_ = rec.WriteBool(ch == '1')
		}
		_, err := tree.DecodeBytes(&rec, 3)
		if !errors.Is(err, ErrCorrupt) || !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%q: expected ErrCorrupt wrapping io.ErrUnexpectedEOF, got %v", bits, err)
		}
	}
}

func TestDecode_ReaderError(t *testing.T) {
	tree := scenarioTree(t)
	_, err := tree.DecodeBytes(&failingBits{N: 5}, 4)
	if err != errBoom {
		t.Errorf("expected %v as is, got %v", errBoom, err)
	}
}

func TestDecodeBytes_NegativeCount(t *testing.T) {
	tree := scenarioTree(t)
	defer func() {
		if recover() == nil {
			t.Errorf("expected DecodeBytes to panic")
		}
	}()
	_, _ = tree.DecodeBytes(&testutil.BitRecorder{}, -1)
}

func TestCoder_RoundTrip(t *testing.T) {
	rnd := testutil.NewRand(2)
	inputs := map[string][]byte{
		"Single":   {'x'},
		"Pair":     []byte("ab"),
		"Text":     []byte("abracadabra"),
		"AllBytes": allBytes(),
		"Random":   rnd.Bytes(10000),
		"Skewed":   rnd.Skewed(20000, 0, 20),
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			tree, err := NewTreeFromBytes(input)
			if err != nil {
				t.Fatalf("NewTreeFromBytes failed: %v", err)
			}

			var buf bytes.Buffer
			bw := bitio.NewWriter(&buf)
			if err := tree.WriteHeader(bw); err != nil {
				t.Fatalf("WriteHeader failed: %v", err)
			}
			if err := tree.EncodeBytes(bw, input); err != nil {
				t.Fatalf("EncodeBytes failed: %v", err)
			}
			if err := bw.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			var f Frequencies
			f.Count(input)
			bits, err := tree.EncodedBits(&f)
			if err != nil {
				t.Fatalf("EncodedBits failed: %v", err)
			}
			if expect, actual := (bits+uint64(tree.HeaderBits())+7)/8, uint64(buf.Len()); expect != actual {
				t.Errorf("wrong size: expect %d bytes, actual %d", expect, actual)
			}

			br := bitio.NewReader(&buf)
			decoded, err := ReadTree(br)
			if err != nil {
				t.Fatalf("ReadTree failed: %v", err)
			}
			out, err := decoded.DecodeBytes(br, len(input))
			if err != nil {
				t.Fatalf("DecodeBytes failed: %v", err)
			}
			if !bytes.Equal(input, out) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(input), len(out))
			}
		})
	}
}
