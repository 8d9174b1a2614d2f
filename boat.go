package marina

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Boat is one entry of the registry.
type Boat struct {
	Name     string
	Length   int // in feet
	Location Location
	Owed     Money
}

// Kind returns the kind of the boat's location.
func (b Boat) Kind() LocationKind { return b.Location.Kind() }

// Validate checks that the boat can be written as a record and read back
// unchanged.
func (b Boat) Validate() error {
	if err := checkField("name", b.Name); err != nil {
		return err
	}
	if b.Length <= 0 {
		return fmt.Errorf("%w: length %d of %q", ErrInvalidNumber, b.Length, b.Name)
	}
	if b.Owed.IsNegative() {
		return fmt.Errorf("%w: negative amount owed %s by %q", ErrInvalidNumber, b.Owed, b.Name)
	}
	switch l := b.Location.(type) {
	case nil:
		return fmt.Errorf("%w: %q has no location", ErrMalformedRecord, b.Name)
	case Land:
		if unicode.IsSpace(l.Bay) || l.Bay == ',' || l.Bay == 0 {
			return fmt.Errorf("%w: land bay %q", ErrMalformedRecord, l.Bay)
		}
	case Trailer:
		if err := checkField("trailer tag", l.Tag); err != nil {
			return err
		}
		if utf8.RuneCountInString(l.Tag) > MaxTrailerTag {
			return fmt.Errorf("%w: trailer tag %q longer than %d", ErrMalformedRecord, l.Tag, MaxTrailerTag)
		}
	}
	return nil
}

// checkField reports an empty field, a field with surrounding spaces, or one
// containing a record or field separator.
func checkField(what, s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty %s", ErrMalformedRecord, what)
	case strings.TrimSpace(s) != s:
		return fmt.Errorf("%w: %s %q has surrounding spaces", ErrMalformedRecord, what, s)
	case strings.ContainsAny(s, ",\r\n"):
		return fmt.Errorf("%w: %s %q contains a separator", ErrMalformedRecord, what, s)
	}
	return nil
}
