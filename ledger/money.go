/*
money.go - Currency values for contract and payment amounts

PURPOSE:
  Money wraps decimal.Decimal so every amount in the system shares one
  precise representation. Floating point is never used for arithmetic;
  float64 appears only at API boundaries.

DISPLAY FORMAT:
  A single fixed currency format: "$ 1,234.56" (thousands separators,
  two decimals). Unparseable input displays as "$ 0.00" instead of
  raising - a bad cell in a stream must never take down a whole view.

WIRE FORMAT:
  Plain decimal string ("1234.56"). Store implementations persist this
  form; DisplayMoney is presentation-only.

SEE ALSO:
  - date.go: the companion Date value type
  - codec.go: parses Money out of loosely-typed rows
*/
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a single-currency amount. The zero value is $0.00.
type Money struct {
	Value decimal.Decimal
}

func NewMoney(v float64) Money        { return Money{Value: decimal.NewFromFloat(v)} }
func MoneyFromInt(v int64) Money      { return Money{Value: decimal.NewFromInt(v)} }
func ZeroMoney() Money                { return Money{Value: decimal.Zero} }

// ParseMoney parses a wire-format amount. Invalid input is an error;
// callers that must degrade gracefully use MoneyOrZero.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d}, nil
}

// MoneyOrZero parses a wire-format amount, degrading to zero on bad input.
func MoneyOrZero(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		return ZeroMoney()
	}
	return m
}

func (m Money) Add(o Money) Money          { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money          { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(d decimal.Decimal) Money { return Money{Value: m.Value.Mul(d)} }
func (m Money) Neg() Money                 { return Money{Value: m.Value.Neg()} }
func (m Money) IsZero() bool               { return m.Value.IsZero() }
func (m Money) IsNegative() bool           { return m.Value.IsNegative() }
func (m Money) IsPositive() bool           { return m.Value.IsPositive() }
func (m Money) GreaterThan(o Money) bool   { return m.Value.GreaterThan(o.Value) }
func (m Money) GreaterThanOrEqual(o Money) bool { return m.Value.GreaterThanOrEqual(o.Value) }
func (m Money) LessThan(o Money) bool      { return m.Value.LessThan(o.Value) }
func (m Money) Equal(o Money) bool         { return m.Value.Equal(o.Value) }
func (m Money) Min(o Money) Money          { if m.LessThan(o) { return m }; return o }
func (m Money) Max(o Money) Money          { if m.GreaterThan(o) { return m }; return o }

// Round2 rounds to cents. Derived amounts (installments) are fixed at
// two decimals so schedules and arrears agree with what was quoted.
func (m Money) Round2() Money { return Money{Value: m.Value.Round(2)} }

// DivInt divides by an integer count, rounded to cents. Division by
// zero yields zero: a zero-term contract has no installment.
func (m Money) DivInt(n int) Money {
	if n == 0 {
		return ZeroMoney()
	}
	return Money{Value: m.Value.Div(decimal.NewFromInt(int64(n))).Round(2)}
}

// FloorDiv returns how many whole units of 'unit' fit in m. Zero unit
// yields zero (no divide-by-zero on zero-installment contracts).
func (m Money) FloorDiv(unit Money) int {
	if unit.Value.IsZero() {
		return 0
	}
	return int(m.Value.Div(unit.Value).IntPart())
}

// String returns the wire form: a plain decimal with two places.
func (m Money) String() string { return m.Value.Round(2).StringFixed(2) }

// Display renders "$ 1,234.56".
func (m Money) Display() string {
	fixed := m.Value.Round(2).StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$ " + b.String() + "." + frac
	if neg {
		out = "$ -" + b.String() + "." + frac
	}
	return out
}

// DisplayMoney formats a raw wire string for display. Bad input renders
// as "$ 0.00" rather than erroring.
func DisplayMoney(s string) string { return MoneyOrZero(s).Display() }
