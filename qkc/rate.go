package qkc

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// maxRateDenominator bounds the rational approximation of a float rate.
	maxRateDenominator = 1000000
	// MaxTaxRateDenominator is the largest denominator a reduced reward tax
	// rate may have.
	MaxTaxRateDenominator = 100
)

// ErrTaxRateDenominator is returned when the reward tax rate is not a
// reasonable percentage.
var ErrTaxRateDenominator = errors.New("reward tax rate denominator too large")

// ReducedRewardTaxRate returns RewardTaxRate as the closest fraction in lowest
// terms whose denominator is at most 10^6. It fails if that fraction needs a
// denominator above MaxTaxRateDenominator.
func (c *QuarkChainConfig) ReducedRewardTaxRate() (*big.Rat, error) {
	exact := new(big.Rat)
	if exact.SetFloat64(c.RewardTaxRate) == nil {
		return nil, errors.Errorf("reward tax rate %v is not finite", c.RewardTaxRate)
	}
	r := limitDenominator(exact, big.NewInt(maxRateDenominator))
	if r.Denom().Cmp(big.NewInt(MaxTaxRateDenominator)) > 0 {
		return nil, errors.Wrapf(ErrTaxRateDenominator, "%v reduces to %s", c.RewardTaxRate, r.RatString())
	}
	return r, nil
}

// limitDenominator finds the fraction closest to x with denominator at most
// max, walking the continued fraction expansion of x.
func limitDenominator(x *big.Rat, max *big.Int) *big.Rat {
	if x.Denom().Cmp(max) <= 0 {
		return new(big.Rat).Set(x)
	}
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())
	for {
		a := new(big.Int).Div(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(max) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}
	k := new(big.Int).Div(new(big.Int).Sub(max, q0), q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)))
	bound2 := new(big.Rat).SetFrac(p1, q1)

	dist1 := new(big.Rat).Abs(new(big.Rat).Sub(bound1, x))
	dist2 := new(big.Rat).Abs(new(big.Rat).Sub(bound2, x))
	if dist2.Cmp(dist1) <= 0 {
		return bound2
	}
	return bound1
}
