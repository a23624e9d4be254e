package hctree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chronos-tachyon/hctree/internal/testutil"
)

func TestCode(t *testing.T) {
	type testRow struct {
		name     string
		code     Code
		expect   string
		reversed string
	}

	testData := [...]testRow{
		{"Empty", Code{}, `""`, `""`},
		{"Zero", MakeCode(1, 0), `"0"`, `"0"`},
		{"One", MakeCode(1, 1), `"1"`, `"1"`},
		{"Three", MakeCode(3, 0x6), `"011"`, `"110"`},
		{"Masked", MakeCode(2, 0xff), `"11"`, `"11"`},
		{"ReversedInput", MakeReversedCode(4, 0x1), `"0001"`, `"1000"`},
		{"Full", MakeCode(64, 1), `"1` + strings.Repeat("0", 63) + `"`, `"` + strings.Repeat("0", 63) + `1"`},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := row.code.String(); row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			if actual := row.code.Reversed().String(); row.reversed != actual {
				t.Errorf("wrong reversed output:\n\texpect: %s\n\tactual: %s", row.reversed, actual)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	long := strings.Repeat("0110", 50)
	hc, err := ParseCode(long)
	if err != nil {
		t.Fatalf("ParseCode failed: %v", err)
	}
	if hc.Size != 200 {
		t.Errorf("expected 200 bits, got %d", hc.Size)
	}
	if expect, actual := `"`+long+`"`, hc.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if diff := cmp.Diff(hc, hc.Reversed().Reversed()); diff != "" {
		t.Errorf("double reversal changed the code (-expect +actual):\n%s", diff)
	}

	max := strings.Repeat("1", MaxCodeSize)
	if hc, err := ParseCode(max); err != nil || int(hc.Size) != MaxCodeSize {
		t.Errorf("ParseCode(%d bits) = %v, %v", MaxCodeSize, hc, err)
	}

	for _, bad := range []string{"012", "1 0", max + "1"} {
		if _, err := ParseCode(bad); err == nil {
			t.Errorf("ParseCode(%q) succeeded, expected an error", bad)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	mustParse := func(s string) Code {
		hc, err := ParseCode(s)
		if err != nil {
			t.Fatalf("ParseCode(%q) failed: %v", s, err)
		}
		return hc
	}

	type testRow struct {
		code, prefix string
		expect       bool
	}

	testData := [...]testRow{
		{"0110", "", true},
		{"0110", "0", true},
		{"0110", "011", true},
		{"0110", "0110", true},
		{"0110", "01101", false},
		{"0110", "1", false},
		{"0110", "010", false},
		{strings.Repeat("1", 100) + "0", strings.Repeat("1", 100), true},
		{strings.Repeat("1", 100) + "0", strings.Repeat("1", 99) + "0", false},
	}

	for _, row := range testData {
		if actual := mustParse(row.code).HasPrefix(mustParse(row.prefix)); row.expect != actual {
			t.Errorf("%q.HasPrefix(%q): expect %v, actual %v", row.code, row.prefix, row.expect, actual)
		}
	}
}

func TestCode_Write(t *testing.T) {
	hc, err := ParseCode("1101000111")
	if err != nil {
		t.Fatalf("ParseCode failed: %v", err)
	}
	var rec testutil.BitRecorder
	if err := hc.Write(&rec); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if expect, actual := "1101000111", rec.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
