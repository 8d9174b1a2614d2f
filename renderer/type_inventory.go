package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/marina"
)

// Inventory is the data of the inventory report.
type Inventory struct {
	Rows  []InventoryRow
	Count int
	Total string
}

// InventoryRow is one boat of the inventory report, with every value already formatted.
type InventoryRow struct {
	Name     string
	Length   int
	Location string
	Owed     string
	Monthly  string
}

// NewInventory prepares the inventory report of the boats, amounts displayed in currency.
func NewInventory(boats []marina.Boat, currency string) *Inventory {
	inv := &Inventory{Count: len(boats)}
	var total marina.Money
	for _, b := range boats {
		inv.Rows = append(inv.Rows, InventoryRow{
			Name:     escapeCell(b.Name),
			Length:   b.Length,
			Location: escapeCell(Location(b.Location)),
			Owed:     b.Owed.Display(currency),
			Monthly:  b.MonthlyCharge().Display(currency),
		})
		total = total.Add(b.Owed)
	}
	inv.Total = total.Display(currency)
	return inv
}

// Location renders a location like "slip #18" or "land B".
func Location(l marina.Location) string {
	switch v := l.(type) {
	case marina.Slip:
		return fmt.Sprintf("%s #%d", v.Kind(), v.Number)
	case marina.Storage:
		return fmt.Sprintf("%s #%d", v.Kind(), v.Number)
	default:
		return fmt.Sprintf("%s %s", l.Kind(), l.Value())
	}
}

// escapeCell keeps a value from breaking a markdown table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
