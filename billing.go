package marina

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// monthly rates, per foot of length.
var (
	slipRate    = decimal.RequireFromString("12.50")
	landRate    = decimal.RequireFromString("14.00")
	trailerRate = decimal.RequireFromString("25.00")
	storageRate = decimal.RequireFromString("11.20")
)

// Rate returns the monthly charge per foot of length for a location kind.
func Rate(k LocationKind) Money {
	switch k {
	case KindSlip:
		return M(slipRate)
	case KindLand:
		return M(landRate)
	case KindTrailer:
		return M(trailerRate)
	default:
		return M(storageRate)
	}
}

// MonthlyCharge returns what the boat is charged for one month.
func (b Boat) MonthlyCharge() Money {
	return Rate(b.Kind()).Mul(b.Length)
}

// ChargeMonth adds one month of charge to the amount owed.
func (b *Boat) ChargeMonth() {
	b.Owed = b.Owed.Add(b.MonthlyCharge())
}

// Pay deducts amount from the amount owed.
//
// A payment greater than the amount owed is rejected as a whole and the
// balance is left unchanged.
func (b *Boat) Pay(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: negative payment %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(b.Owed) {
		return fmt.Errorf("%w: %s owes %s", ErrOverPayment, b.Name, b.Owed)
	}
	b.Owed = b.Owed.Sub(amount)
	return nil
}

// ChargeMonth applies the monthly charge to every boat of the registry.
func (r *Registry) ChargeMonth() {
	for i := range r.boats {
		r.boats[i].ChargeMonth()
	}
	r.opts.Logger.Debug("monthly charge applied", "boats", len(r.boats))
}

// Pay records a payment for the first boat with this name and returns the updated boat.
func (r *Registry) Pay(name string, amount Money) (Boat, error) {
	i, err := r.Find(name)
	if err != nil {
		return Boat{}, err
	}
	if err := r.boats[i].Pay(amount); err != nil {
		return r.boats[i], err
	}
	return r.boats[i], nil
}

// TotalOwed returns the sum of the amounts owed by all boats.
func (r *Registry) TotalOwed() Money {
	var total Money
	for _, b := range r.boats {
		total = total.Add(b.Owed)
	}
	return total
}
