package marina

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldCount is the number of comma-separated fields of a record:
// name, length, kind, location value and amount owed.
const fieldCount = 5

// DecodeBoat decodes a record like "Frigate,40,slip,18,500.00" into a Boat.
//
// An unknown kind word is read as a storage location. Use DecodeBoatStrict to
// reject it instead.
func DecodeBoat(line string) (Boat, error) {
	return decodeBoat(line, false)
}

// DecodeBoatStrict is like DecodeBoat but fails with ErrMalformedRecord on an unknown kind word.
func DecodeBoatStrict(line string) (Boat, error) {
	return decodeBoat(line, true)
}

func decodeBoat(line string, strict bool) (Boat, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(fields) != fieldCount {
		return Boat{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), fieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	name := fields[0]
	if name == "" {
		return Boat{}, fmt.Errorf("%w: empty name", ErrMalformedRecord)
	}

	length, err := strconv.Atoi(fields[1])
	if err != nil || length <= 0 {
		return Boat{}, fmt.Errorf("%w: length %q", ErrInvalidNumber, fields[1])
	}

	kind, ok := ParseLocationKind(fields[2])
	if !ok && strict {
		return Boat{}, fmt.Errorf("%w: unknown location kind %q", ErrMalformedRecord, fields[2])
	}

	location, err := parseLocation(kind, fields[3])
	if err != nil {
		return Boat{}, err
	}

	owed, err := ParseMoney(fields[4])
	if err != nil {
		return Boat{}, err
	}
	if owed.IsNegative() {
		return Boat{}, fmt.Errorf("%w: negative amount owed %q", ErrInvalidNumber, fields[4])
	}

	b := Boat{
		Name:     name,
		Length:   length,
		Location: location,
		Owed:     owed,
	}
	if err := b.Validate(); err != nil {
		return Boat{}, err
	}
	return b, nil
}

// EncodeBoat encodes a Boat into a record, the inverse of DecodeBoat.
func EncodeBoat(b Boat) string {
	return fmt.Sprintf("%s,%d,%s,%s,%s", b.Name, b.Length, b.Kind(), b.Location.Value(), b.Owed)
}

// DecodeLines reads all the lines from r. Blank lines are kept so that line
// numbers in load diagnostics match the file.
//
// Lines have no length limit: names are unbounded.
func DecodeLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error reading from input: %w", err)
		}
	}
}

// EncodeRegistry writes one record per boat to w, in registry order.
func EncodeRegistry(w io.Writer, r *Registry) error {
	bw := bufio.NewWriter(w)
	for _, b := range r.All() {
		if _, err := fmt.Fprintln(bw, EncodeBoat(b)); err != nil {
			return fmt.Errorf("failed to write boat %q: %w", b.Name, err)
		}
	}
	return bw.Flush()
}
