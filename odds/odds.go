//Package odds fixes the nominal tier probabilities as exact decimals and
//provides the tooling to check that derived outcomes actually follow them.
package odds

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/apd"

	"github.com/advanderveer/bbx"
)

//DecimalContext is used for all probability arithmetic
var DecimalContext = apd.BaseContext.WithPrecision(50)

//Prob returns the nominal probability of drawing tier 't' as an exact
//decimal, mirroring the cumulative bounds of the tier mapping
func Prob(t bbx.Tier) *apd.Decimal {
	switch t {
	case bbx.Tier5:
		return apd.New(1, -4) //0.01%
	case bbx.Tier4:
		return apd.New(9, -4) //0.09%
	case bbx.Tier3:
		return apd.New(9, -3) //0.9%
	case bbx.Tier2:
		return apd.New(9, -2) //9%
	case bbx.Tier1:
		return apd.New(9, -1) //90%
	}

	return apd.New(0, 0)
}

//Expected returns the expected count of tier 't' over 'n' independent draws
func Expected(n uint64, t bbx.Tier) float64 {
	res := new(apd.Decimal)
	_, err := DecimalContext.Mul(res, Prob(t), apd.New(int64(n), 0))
	if err != nil {
		panic("odds: failed to multiply: " + err.Error())
	}

	f, err := res.Float64()
	if err != nil {
		panic("odds: failed to convert: " + err.Error())
	}

	return f
}

// Uint64n returns, as a uint64, a pseudo-random number in [0,n).
// It is guaranteed more uniform than taking a Source value mod n
// for any n that is not a power of 2. Taken from the golang/exp repository:
// https://github.com/golang/exp/blob/14dda7b62fcdb381624aaca63b04df07203856d4/rand/rand.go
func Uint64n(n uint64, rnd *rand.Rand) uint64 {
	if n&(n-1) == 0 { // n is power of two, can mask
		if n == 0 {
			panic("invalid argument to Uint64n")
		}
		return rnd.Uint64() & (n - 1)
	}

	// If n does not divide v, to avoid bias we must not use
	// a v that is within maxUint64%n of the top of the range.
	v := rnd.Uint64()
	if v > math.MaxUint64-n { // Fast check.
		ceiling := math.MaxUint64 - math.MaxUint64%n
		for v >= ceiling {
			v = rnd.Uint64()
		}
	}

	return v % n
}
