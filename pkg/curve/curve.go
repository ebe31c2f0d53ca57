package curve

import "math"

// Curve pairs a family with its parameters. Evaluation and sampling dispatch
// on the family tag.
type Curve struct {
	Family Family
	Params Params
}

// New creates a curve
func New(f Family, p Params) Curve {
	return Curve{Family: f, Params: p}
}

// Eval evaluates the curve at world x. Poles and undefined domains yield
// ±Inf or NaN; conic families are not functions of x and always yield NaN.
func (c Curve) Eval(x float64) float64 {
	a, b, k := c.Params.A, c.Params.B, c.Params.C

	switch c.Family {
	case Sin:
		return a + b*math.Sin(k*x)
	case Cos:
		return a + b*math.Cos(k*x)
	case Tan:
		return a + b*math.Tan(k*x)
	case Ctan:
		return a + b/math.Tan(k*x)
	case Parabola:
		return a*x*x + b*x + k
	case Hyperbola:
		return b / (k * x)
	case Exp:
		return a * math.Exp(b*x)
	case Log:
		return a * math.Log(b*x)
	}
	return math.NaN()
}
