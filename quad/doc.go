// Package quad approximates definite integrals ∫_a^b f(x) dx with composite
// Newton–Cotes rules on n equal panels of width h = (b − a)/n.
//
//	Midpoint     h·Σ f(a + (i+½)h)                      error O(h²)
//	Trapezoidal  h·(f(a)/2 + Σ f(x_i) + f(b)/2)         error O(h²)
//	Simpson      h/3·(f0 + 4·Σ odd + 2·Σ even + fn)     error O(h⁴), n even
//
// RungeEstimate evaluates one rule on two grids and reports |I(n2) − I(n1)|
// as a practical error estimate.
//
// Sample points are computed as a + i·h rather than by repeated addition.
// The integrand must be finite at every sample; otherwise ErrNaNInf.
package quad
