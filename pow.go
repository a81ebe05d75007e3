package calc

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/zephyrtronium/bigfloat"
)

// pow sets z to x**y and reports whether the result is a real number with a
// binary exponent no greater than about maxExp. z may alias x or y.
func pow(z, x, y *big.Float, maxExp int) bool {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return true
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return false
		}
		z.SetInt64(0)
		return true
	}
	neg := x.Signbit()
	yint := y.IsInt()
	if neg && !yint {
		return false
	}
	odd := false
	if yint {
		i, _ := y.Int(nil)
		odd = i.Bit(0) == 1
	}
	var one big.Float
	one.SetInt64(1)
	a := new(big.Float).SetPrec(x.Prec()).Abs(x)
	if a.Cmp(&one) == 0 {
		z.SetInt64(1)
		if neg && odd {
			z.Neg(z)
		}
		return true
	}
	// Estimate log2|x**y| so that huge powers fail before any work.
	var mant big.Float
	e := x.MantExp(&mant)
	mf, _ := mant.Float64()
	lg := float64(e) + math.Log2(math.Abs(mf))
	if lg == 0 {
		// |x| is within float64 rounding of 1.
		d, _ := new(big.Float).SetPrec(a.Prec()).Sub(a, &one).Float64()
		lg = math.Log1p(d) / math.Ln2
	}
	yf, _ := y.Float64()
	est := yf * lg
	switch {
	case est > float64(maxExp)+1:
		return false
	case est < big.MinExp:
		z.SetInt64(0)
	default:
		if n, acc := y.Int64(); yint && acc == big.Exact {
			ipow(z, x, n)
			return true
		}
		bigfloat.Pow(z, a.SetPrec(z.Prec()), y)
	}
	if neg && odd {
		z.Neg(z)
	}
	return true
}

// ipow sets z to x**n by repeated squaring, carrying a guard bit per bit of n.
func ipow(z, x *big.Float, n int64) {
	u := uint64(n)
	if n < 0 {
		u = uint64(-(n + 1)) + 1
	}
	prec := z.Prec() + uint(bits.Len64(u)) + 8
	b := new(big.Float).SetPrec(prec).Set(x)
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	for u > 0 {
		if u&1 == 1 {
			r.Mul(r, b)
		}
		u >>= 1
		if u > 0 {
			b.Mul(b, b)
		}
	}
	if n < 0 {
		if r.Sign() == 0 {
			r.SetInf(false)
		} else {
			r.Quo(new(big.Float).SetInt64(1), r)
		}
	}
	z.Set(r)
}
