package mandel

// escapePoint is the scalar escape-time kernel. It iterates z ← z² + c
// from z = 0 with the divergence test |z|² > 4 run before every update,
// so the return value counts completed applications of the recurrence.
// Points that stay bounded return maxIter.
//
// The state is kept as separate real and imaginary parts with their
// squares carried across iterations, so the divergence test reuses the
// products needed by the next update.
func escapePoint(cr, ci float64, maxIter int) int32 {
	var zr, zi, zr2, zi2 float64
	for n := 0; n < maxIter; n++ {
		if zr2+zi2 > 4 {
			return int32(n)
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2 = zr * zr
		zi2 = zi * zi
	}
	return int32(maxIter)
}

// EscapeTime returns the escape-time iteration count for a single point c.
//
// The count is the number of completed z ← z² + c applications before
// |z| first exceeds 2, or maxIter if the orbit never escapes within the
// cap. For any maxIter >= 1 the result lies in [1, maxIter]: the orbit
// starts at z = 0, which never fails the divergence test, so at least
// one application always completes.
func EscapeTime(c complex128, maxIter int) int32 {
	return escapePoint(real(c), imag(c), maxIter)
}
