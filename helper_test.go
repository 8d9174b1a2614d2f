package marina

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"pgregory.net/rapid"
)

// quietOptions returns the default options with a logger that discards everything.
func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

// mustDecode is a helper for test to create a boat from a record.
func mustDecode(t *testing.T, line string) Boat {
	t.Helper()
	b, err := DecodeBoat(line)
	if err != nil {
		t.Fatalf("DecodeBoat(%q) returned an unexpected error: %v", line, err)
	}
	return b
}

// mustMoney is a helper for test to create money from a decimal string.
func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseMoney(s)
	if err != nil {
		t.Fatalf("ParseMoney(%q) returned an unexpected error: %v", s, err)
	}
	return m
}

// wellFormedRecord draws a record that decodes and encodes back to itself.
func wellFormedRecord() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9]{0,15}`).Draw(t, "name")
		length := rapid.IntRange(1, 100).Draw(t, "length")
		kind := rapid.SampledFrom([]string{"slip", "land", "trailor", "storage"}).Draw(t, "kind")
		var value string
		switch kind {
		case "slip":
			value = fmt.Sprint(rapid.IntRange(1, 85).Draw(t, "slip"))
		case "land":
			value = rapid.StringMatching(`[A-Z]`).Draw(t, "bay")
		case "trailor":
			value = rapid.StringMatching(`[A-Z0-9]{1,6}`).Draw(t, "tag")
		case "storage":
			value = fmt.Sprint(rapid.IntRange(1, 50).Draw(t, "storage"))
		}
		owed := rapid.Int64Range(0, 10_000_000).Draw(t, "owed")
		return fmt.Sprintf("%s,%d,%s,%s,%d.%02d", name, length, kind, value, owed/100, owed%100)
	})
}
