package elo

import "math"

const (
	DefaultK = 32
	DefaultC = 400
	DefaultL = 16
)

// Params are the tuning constants of a Calculator.
// K - update magnitude.
// C - logistic scale divisor.
// L - bonus magnitude, used only by Bonus method.
type Params struct {
	K float64 `json:"kFactor"`
	C float64 `json:"cValue"`
	L float64 `json:"lFactor"`
}

// Calculator is immutable and safe for concurrent use.
type Calculator struct {
	k float64
	c float64
	l float64
}

func New(k, c, l float64) Calculator {
	return Calculator{k: k, c: c, l: l}
}

func Default() Calculator {
	return New(DefaultK, DefaultC, DefaultL)
}

func (c Calculator) Params() Params {
	return Params{K: c.k, C: c.c, L: c.l}
}

// ExpectedScore returns expected scores of A and B.
func (c Calculator) ExpectedScore(ratingA, ratingB float64) (float64, float64) {
	ea := 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/c.c))
	return ea, 1 - ea
}

// UpdateFromOutcome calculates new ratings from the match outcome only.
func (c Calculator) UpdateFromOutcome(ratingA, ratingB float64, outcome Outcome) (float64, float64, error) {
	sa, sb, err := outcome.scores()
	if err != nil {
		return 0, 0, err
	}
	ea, eb := c.ExpectedScore(ratingA, ratingB)
	return ratingA + c.k*(sa-ea), ratingB + c.k*(sb-eb), nil
}

type pointsOptions struct {
	method  Method
	outcome *Outcome
}

type PointsOption func(*pointsOptions)

// WithMethod selects the update formula. Bonus is used by default.
func WithMethod(m Method) PointsOption {
	return func(o *pointsOptions) {
		o.method = m
	}
}

// WithOutcome overrides the outcome derived from points.
func WithOutcome(outcome Outcome) PointsOption {
	return func(o *pointsOptions) {
		o.outcome = &outcome
	}
}

// UpdateFromPoints calculates new ratings using points scored by each side.
// Without WithOutcome the outcome is derived from comparing points.
func (c Calculator) UpdateFromPoints(ratingA, ratingB, pointsA, pointsB float64, opts ...PointsOption) (float64, float64, error) {
	o := pointsOptions{method: Bonus}
	for _, opt := range opts {
		opt(&o)
	}

	outcome := outcomeFromPoints(pointsA, pointsB)
	if o.outcome != nil {
		outcome = *o.outcome
	}
	sa, sb, err := outcome.scores()
	if err != nil {
		return 0, 0, err
	}
	ea, eb := c.ExpectedScore(ratingA, ratingB)
	fa, fb := fractions(pointsA, pointsB)

	switch o.method {
	case Classic:
		return ratingA + c.k*(sa-ea), ratingB + c.k*(sb-eb), nil
	case Fraction:
		return ratingA + c.k*(fa-ea), ratingB + c.k*(fb-eb), nil
	case Bonus:
		// sides are not zero-sum here
		return c.bonus(ratingA, sa-ea, fa), c.bonus(ratingB, sb-eb, fb), nil
	}
	return 0, 0, errInvalidMethod(int(o.method))
}

func (c Calculator) bonus(rating, diff, frac float64) float64 {
	return rating + c.k*diff + sign(diff)*c.l*frac
}

func outcomeFromPoints(pointsA, pointsB float64) Outcome {
	switch {
	case pointsA > pointsB:
		return AWins
	case pointsB > pointsA:
		return BWins
	}
	return Draw
}

// fractions splits evenly when nobody scored.
func fractions(pointsA, pointsB float64) (float64, float64) {
	total := pointsA + pointsB
	if total > 0 {
		return pointsA / total, pointsB / total
	}
	return 0.5, 0.5
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
