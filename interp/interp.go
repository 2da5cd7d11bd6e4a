// package interp provides interpolation kernels for single-precision samples.
package interp

// L does 2-point linear interpolation:
//
//	L(a, b, f) = (1-f)*a + f*b
//
// The two-multiply form keeps L(a, b, 0) == a and L(a, b, 1) == b exact,
// which the table samplers rely on at slot boundaries.
func L(a, b, f float32) float32 {
	return (1-f)*a + f*b
}

// Hermite does 4-point, 3rd-order Hermite interpolation between x0 and x1,
// with xm1 and x2 supplying the derivative estimates. The reconstructed curve
// has a continuous first derivative across slots, so slowly modulated reads
// don't zipper the way L does.
func Hermite(xm1, x0, x1, x2, f float32) float32 {
	c := (x1 - xm1) * 0.5
	v := x0 - x1
	w := c + v
	a := w + v + (x2-x0)*0.5
	b := w + a
	return ((a*f-b)*f+c)*f + x0
}
