package store

import (
	"errors"
	"strings"
)

// ErrInvalidPromoCode is returned when a submitted code is not in the
// promo table. The previously active discount is left as it was.
var ErrInvalidPromoCode = errors.New("invalid promo code")

// Promo validates promo codes against a fixed table and tracks the single
// active discount for a session. Codes are case-insensitive; only one
// discount can be active at a time and a newly applied code replaces it.
type Promo struct {
	codes      map[string]int
	activeCode string
	activePct  int
}

// NewPromo builds a promo engine from a code -> percent table. Keys are
// normalized to uppercase so lookups ignore case.
func NewPromo(codes map[string]int) *Promo {
	normalized := make(map[string]int, len(codes))
	for code, pct := range codes {
		normalized[strings.ToUpper(code)] = pct
	}
	return &Promo{codes: normalized}
}

// Apply validates code and, on success, makes its percentage the active
// discount. On ErrInvalidPromoCode the active discount is unchanged.
func (p *Promo) Apply(code string) (int, error) {
	normalized := strings.ToUpper(code)
	pct, ok := p.codes[normalized]
	if !ok {
		return 0, ErrInvalidPromoCode
	}
	p.activeCode = normalized
	p.activePct = pct
	return pct, nil
}

// Active returns the currently applied discount percent, 0 when none.
func (p *Promo) Active() int {
	return p.activePct
}

// ActiveCode returns the normalized code behind the active discount.
func (p *Promo) ActiveCode() string {
	return p.activeCode
}

// Reset drops the active discount.
func (p *Promo) Reset() {
	p.activeCode = ""
	p.activePct = 0
}
