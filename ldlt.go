package boxlcp

// solveLDLT factors a (padded, n*n) in place as L*D*L^T, with unit lower
// L and diagonal D, then solves A*x = b by forward/back substitution. It
// is the fast path taken when nub >= n: every variable is unbounded and
// the boxed problem degenerates to a plain linear system.
//
// A is mutated in place — its lower triangle becomes L's strict lower
// part and its diagonal becomes D. Numerical breakdown (a near-zero pivot)
// is not expected given the caller's positive-diagonal precondition and
// is not guarded against here; see [CheckLDLTBreakdown] for an
// audit that can be run separately.
func solveLDLT(n int, a *Padded, x, b []float64) {
	// Factor: for each column j, eliminate below the diagonal using the
	// already-factored rows above it.
	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			a.Set(j, j, a.At(j, j)-a.At(j, k)*a.At(j, k)*a.At(k, k))
		}
		dj := a.Diag(j)
		for i := j + 1; i < n; i++ {
			sum := a.At(i, j)
			for k := 0; k < j; k++ {
				sum -= a.At(i, k) * a.At(j, k) * a.At(k, k)
			}
			a.Set(i, j, sum/dj)
		}
	}

	// Forward substitution: solve L*z = b.
	z := x[:n]
	copy(z, b[:n])
	for i := 0; i < n; i++ {
		sum := z[i]
		for k := 0; k < i; k++ {
			sum -= a.At(i, k) * z[k]
		}
		z[i] = sum
	}

	// Diagonal solve: y = D^-1*z.
	for i := 0; i < n; i++ {
		z[i] /= a.Diag(i)
	}

	// Back substitution: solve L^T*x = y.
	for i := n - 1; i >= 0; i-- {
		sum := z[i]
		for k := i + 1; k < n; k++ {
			sum -= a.At(k, i) * z[k]
		}
		z[i] = sum
	}
}

// CheckLDLTBreakdown reports the smallest diagonal magnitude the LDLT
// factorization of a would produce, without mutating a. Callers auditing
// a problem before calling Solve can compare the result against
// Option.EpsilonForDivision; Solve itself never calls this.
func CheckLDLTBreakdown(n int, a *Padded) float64 {
	work := NewPadded(n)
	copy(work.Data, a.Data)

	minAbs := 0.0
	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			work.Set(j, j, work.At(j, j)-work.At(j, k)*work.At(j, k)*work.At(k, k))
		}
		d := work.Diag(j)
		ad := d
		if ad < 0 {
			ad = -ad
		}
		if j == 0 || ad < minAbs {
			minAbs = ad
		}
		for i := j + 1; i < n; i++ {
			sum := work.At(i, j)
			for k := 0; k < j; k++ {
				sum -= work.At(i, k) * work.At(j, k) * work.At(k, k)
			}
			work.Set(i, j, sum/d)
		}
	}
	return minAbs
}
