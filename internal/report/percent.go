package report

import "math"

// Percent is a percentage that may be undefined: the savings rate of a month
// with no income, or the usage of a category with no budget limit. The
// undefined state is a tagged value so it can never be confused with 0%.
type Percent struct {
	value   float64
	defined bool
}

// PercentOf returns num/den as a percentage rounded half-up to one decimal.
// It is undefined when den is zero; there is no division to fail.
func PercentOf(num, den int64) Percent {
	if den == 0 {
		return Percent{}
	}
	v := float64(num) / float64(den) * 100
	return Percent{value: math.Round(v*10) / 10, defined: true}
}

func (p Percent) Defined() bool {
	return p.defined
}

// Value returns the rounded percentage. Only meaningful when Defined.
func (p Percent) Value() float64 {
	return p.value
}
