package svf

import "math"

// tanFunc is the prewarp function. Tests swap it to count evaluations.
var tanFunc = math.Tan

// Coefficients holds the state-update coefficients (c0, c1, c2).
type Coefficients [3]float64

// CoefficientCache derives [Coefficients] from (g', k) and memoizes them.
//
// tan(g') is only evaluated when g' changed since the previous call; the
// rational part is only recomputed when g' or k changed. The zero value is
// ready to use.
type CoefficientCache struct {
	coef   Coefficients
	gPrime float64
	g      float64
	k      float64
}

// Apply returns the coefficients for (gPrime, k):
//
//	g  = tan(gPrime)
//	c0 = 1 / (1 + g*(g + k))
//	c1 = g * c0
//	c2 = g * c1
func (c *CoefficientCache) Apply(gPrime, k float64) Coefficients {
	switch {
	case c.gPrime != gPrime:
		c.gPrime = gPrime
		c.g = tanFunc(gPrime)
		c.k = k
		c.compute()
	case c.k != k:
		c.k = k
		c.compute()
	}

	return c.coef
}

func (c *CoefficientCache) compute() {
	c.coef[0] = 1 / (1 + c.g*(c.g+c.k))
	c.coef[1] = c.g * c.coef[0]
	c.coef[2] = c.g * c.coef[1]
}
