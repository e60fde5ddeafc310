package resources

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeAmount is returned when crediting a negative quantity
var ErrNegativeAmount = errors.New("amount must not be negative")

// Ledger tracks a player's resource stock and per-kind production rate.
// Quantities never go negative: every debit is checked across the whole
// bundle before anything is subtracted.
type Ledger struct {
	quantities map[Kind]int
	rates      map[Kind]int
}

// NewLedger creates a ledger with every kind set to start and producing rate
// per tick.
func NewLedger(start, rate int) *Ledger {
	l := &Ledger{
		quantities: make(map[Kind]int, len(AllKinds)),
		rates:      make(map[Kind]int, len(AllKinds)),
	}
	for _, k := range AllKinds {
		l.quantities[k] = start
		l.rates[k] = rate
	}
	return l
}

// NewEmptyLedger creates a ledger with no initialized kinds
func NewEmptyLedger() *Ledger {
	return &Ledger{quantities: map[Kind]int{}, rates: map[Kind]int{}}
}

// Quantity returns the stock of k, 0 if never initialized
func (l *Ledger) Quantity(k Kind) int {
	return l.quantities[k]
}

// Credit adds amount of k
func (l *Ledger) Credit(k Kind, amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit %d %s: %w", amount, k, ErrNegativeAmount)
	}
	l.quantities[k] += amount
	return nil
}

// CanAfford reports whether every entry of the bundle is covered. A bundle
// with a negative entry is never affordable.
func (l *Ledger) CanAfford(cost Cost) bool {
	for k, amount := range cost {
		if amount < 0 || l.quantities[k] < amount {
			return false
		}
	}
	return true
}

// Spend debits the whole bundle or nothing at all
func (l *Ledger) Spend(cost Cost) bool {
	if !l.CanAfford(cost) {
		return false
	}
	for k, amount := range cost {
		l.quantities[k] -= amount
	}
	return true
}

// SetRate sets the per-tick production of k
func (l *Ledger) SetRate(k Kind, rate int) {
	if rate < 0 {
		rate = 0
	}
	l.rates[k] = rate
}

// Rate returns the per-tick production of k
func (l *Ledger) Rate(k Kind) int {
	return l.rates[k]
}

// ApplyProductionTick credits every kind with its configured rate
func (l *Ledger) ApplyProductionTick() {
	for k, rate := range l.rates {
		l.quantities[k] += rate
	}
}

// Snapshot returns a copy of the current stock
func (l *Ledger) Snapshot() map[Kind]int {
	out := make(map[Kind]int, len(l.quantities))
	for k, v := range l.quantities {
		out[k] = v
	}
	return out
}

func (l *Ledger) String() string {
	parts := make([]string, 0, len(AllKinds))
	for _, k := range AllKinds {
		parts = append(parts, fmt.Sprintf("%s: %d", k, l.quantities[k]))
	}
	return strings.Join(parts, ", ")
}
