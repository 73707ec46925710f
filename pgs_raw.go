package boxlcp

import "math"

// effectiveBounds returns the box [lo, hi] variable i must be projected
// into, expanding the Coulomb friction pyramid when findex[i] >= 0.
// findex may be nil, meaning no row is friction-coupled.
//
// This preserves a quirk of the source algorithm on purpose (open
// question 2): the friction lower bound is computed as -hi[i]*x[findex[i]]
// without taking its absolute value, so when x[findex[i]] is negative the
// pair inverts (lo > hi). clampBox below reduces that regime to pinning
// at hiTmp; changing this would change the solver's observable output on
// every input with a negative normal impulse, which spec.md asks this
// implementation not to do.
func effectiveBounds(i int, lo, hi []float64, x []float64, findex []int) (effLo, effHi float64) {
	fi := -1
	if findex != nil {
		fi = findex[i]
	}
	if fi < 0 {
		return lo[i], hi[i]
	}
	hiTmp := hi[i] * x[fi]
	return -hiTmp, hiTmp
}

// clampBox projects v into [lo, hi]. When lo > hi (the friction-sign
// quirk above) this collapses to hi, matching math.Min(math.Max(v, lo), hi)'s
// natural behavior on an inverted interval.
func clampBox(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// pgsRaw is the raw, pointer/array PGS iterator of spec §4.3. A and b are
// mutated in place during the one-shot normalization; x is both initial
// guess and output. active is scratch reused across calls by the caller
// (its contents are overwritten).
func pgsRaw(n int, a *Padded, x, b, lo, hi []float64, findex []int, opt Option, rnd *RandomSource, active []int) Result {
	epsDiv := opt.EpsilonForDivision
	if epsDiv <= 0 {
		epsDiv = PGSEpsilon
	}

	active = active[:0]
	mayTerminate := true

	// Initial filtering sweep.
	for i := 0; i < n; i++ {
		aii := a.Diag(i)
		if aii < epsDiv {
			x[i] = 0
			continue
		}
		active = append(active, i)

		row := a.Row(i)
		sum := b[i]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			sum -= row[j] * x[j]
		}
		newX := sum / aii

		effLo, effHi := effectiveBounds(i, lo, hi, x, findex)
		oldX := x[i]
		newX = clampBox(newX, effLo, effHi)
		x[i] = newX

		if math.Abs(newX-oldX) > opt.DeltaXThreshold {
			mayTerminate = false
		}
	}

	if mayTerminate {
		return Result{Iterations: 1, Converged: true}
	}

	// One-shot normalization: divide each active row (and b) by its
	// diagonal so later sweeps need no division.
	for _, k := range active {
		akk := a.Diag(k)
		row := a.Row(k)
		for j := 0; j < n; j++ {
			row[j] /= akk
		}
		b[k] /= akk
	}

	relTol := opt.RelativeDeltaXTolerance

	iterations := 1
	converged := false

	for iter := 1; iter < opt.MaxIteration; iter++ {
		iterations = iter + 1

		if opt.RandomizeConstraintOrder && iter%8 == 0 {
			shuffleActive(active, rnd)
		}

		mayTerminate = true
		for _, index := range active {
			row := a.Row(index)
			sum := b[index]
			for j := 0; j < n; j++ {
				if j == index {
					continue
				}
				sum -= row[j] * x[j]
			}
			newX := sum

			effLo, effHi := effectiveBounds(index, lo, hi, x, findex)
			oldX := x[index]
			newX = clampBox(newX, effLo, effHi)
			x[index] = newX

			if math.Abs(newX) > epsDiv {
				rel := math.Abs((newX - oldX) / newX)
				if rel > relTol {
					mayTerminate = false
				}
			}
		}

		if mayTerminate {
			converged = true
			break
		}
	}

	return Result{Iterations: iterations, Converged: converged}
}
