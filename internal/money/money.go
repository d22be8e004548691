package money

// Money is an amount in minor units (cents). Cart totals are sums of
// these, so the arithmetic never leaves integers and never loses cents.
type Money int64

// Units splits the absolute amount into major and minor parts for display.
func (m Money) Units() (major, minor int64) {
	v := int64(m)
	if v < 0 {
		v = -v
	}
	return v / 100, v % 100
}

// FromUnits builds an amount from major and minor parts, e.g. 9 and 99
// for 9.99.
func FromUnits(major, minor int64) Money {
	return Money(major*100 + minor)
}
