package marina

import (
	"fmt"
	"strconv"
	"strings"
)

// LocationKind is the closed set of places a boat can be kept in.
type LocationKind int

const (
	KindSlip LocationKind = iota
	KindLand
	KindTrailer
	KindStorage
)

// String returns the word used for the kind in the registry file.
//
// Trailer is spelled "trailor": existing files use that token.
func (k LocationKind) String() string {
	switch k {
	case KindSlip:
		return "slip"
	case KindLand:
		return "land"
	case KindTrailer:
		return "trailor"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// ParseLocationKind parses a kind word as found in the registry file.
// It reports false when the word is not one of the known kinds.
func ParseLocationKind(s string) (LocationKind, bool) {
	switch s {
	case "slip":
		return KindSlip, true
	case "land":
		return KindLand, true
	case "trailor":
		return KindTrailer, true
	case "storage":
		return KindStorage, true
	default:
		return KindStorage, false
	}
}

// MaxTrailerTag is the maximum number of characters kept in a trailer tag.
const MaxTrailerTag = 6

// Location identifies where a boat is kept. Its concrete type is one of
// Slip, Land, Trailer or Storage.
type Location interface {
	Kind() LocationKind
	// Value returns the location value as written in the registry file.
	Value() string

	location() // seals the interface
}

// Slip is a numbered slip in the water, nominally 1 to 85.
type Slip struct{ Number int }

// Land is a bay on land identified by a letter, nominally A to Z.
type Land struct{ Bay rune }

// Trailer is a boat on a trailer identified by its tag.
type Trailer struct{ Tag string }

// Storage is a numbered storage space, nominally 1 to 50.
type Storage struct{ Number int }

func (Slip) Kind() LocationKind    { return KindSlip }
func (Land) Kind() LocationKind    { return KindLand }
func (Trailer) Kind() LocationKind { return KindTrailer }
func (Storage) Kind() LocationKind { return KindStorage }

func (l Slip) Value() string    { return strconv.Itoa(l.Number) }
func (l Land) Value() string    { return string(l.Bay) }
func (l Trailer) Value() string { return l.Tag }
func (l Storage) Value() string { return strconv.Itoa(l.Number) }

func (Slip) location()    {}
func (Land) location()    {}
func (Trailer) location() {}
func (Storage) location() {}

// NewTrailer returns a Trailer location, truncating the tag to MaxTrailerTag characters.
func NewTrailer(tag string) Trailer {
	r := []rune(tag)
	if len(r) > MaxTrailerTag {
		r = r[:MaxTrailerTag]
	}
	return Trailer{Tag: strings.TrimSpace(string(r))}
}

// parseLocation parses the location value for the given kind.
func parseLocation(kind LocationKind, value string) (Location, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty %s location", ErrMalformedRecord, kind)
	}
	switch kind {
	case KindSlip:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: slip number %q", ErrInvalidNumber, value)
		}
		return Slip{Number: n}, nil
	case KindLand:
		return Land{Bay: []rune(value)[0]}, nil
	case KindTrailer:
		return NewTrailer(value), nil
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: storage number %q", ErrInvalidNumber, value)
		}
		return Storage{Number: n}, nil
	}
}
