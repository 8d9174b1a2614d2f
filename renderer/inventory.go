package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/marina"
)

// Line renders a boat as one fixed-width inventory line, e.g.
//
//	Frigate              40'    slip # 18   Owes    $600.00
func Line(b marina.Boat, currency string) string {
	var loc string
	switch v := b.Location.(type) {
	case marina.Slip:
		loc = fmt.Sprintf("# %2d", v.Number)
	case marina.Land:
		loc = fmt.Sprintf("   %c", v.Bay)
	case marina.Trailer:
		loc = fmt.Sprintf("%6s", v.Tag)
	case marina.Storage:
		loc = fmt.Sprintf("# %2d", v.Number)
	}
	return fmt.Sprintf("%-20s %2d' %7s %s   Owes %10s", b.Name, b.Length, b.Kind(), loc, b.Owed.Display(currency))
}

// Lines renders every boat with Line, one per line.
func Lines(boats []marina.Boat, currency string) string {
	var sb strings.Builder
	for _, b := range boats {
		sb.WriteString(Line(b, currency))
		sb.WriteByte('\n')
	}
	return sb.String()
}
