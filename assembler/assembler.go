// Package assembler turns a handful of circular rigid bodies and contact
// points into the boxed-LCP layout of the boxlcp package's data model (as
// an unpadded boxlcp.Dense matrix) and calls its dense solver, playing the role the teacher's Space.Step
// plays for its own sequential-impulse solver. It is intentionally much
// smaller than a full physics engine: no broad-phase, no polygons, no
// joints, no rendering — just enough to give boxlcp a realistic caller.
package assembler

import (
	"math"

	"github.com/setanarut/boxlcp"
	"github.com/setanarut/vec"
)

// Body is a minimal 2D rigid body carrying the state contact assembly
// needs, adapted from the teacher's Body type (mass/moment-of-inertia
// inverses, position, velocity, angular velocity) without its shape list,
// sleeping state, or integration callbacks.
type Body struct {
	Position        vec.Vec2
	Velocity        vec.Vec2
	AngularVelocity float64
	InvMass         float64
	InvMoment       float64
}

// Contact is one contact point between two bodies, adapted from the
// teacher's Arbiter/ContactPointSet: a world-space unit normal pointing
// from A to B, the contact point's offset from each body's center, and
// the Coulomb friction coefficient for the pair.
type Contact struct {
	BodyA, BodyB *Body
	Normal       vec.Vec2
	RA, RB       vec.Vec2
	Friction     float64
}

// jacobianEntry is one body's (linear, angular) contribution to a
// constraint row, the per-body half of that row's Jacobian.
type jacobianEntry struct {
	body    *Body
	linear  vec.Vec2
	angular float64
}

func perpScale(r vec.Vec2, w float64) vec.Vec2 {
	return r.Perp().Scale(w)
}

func normalJacobian(c *Contact) [2]jacobianEntry {
	n := c.Normal
	return [2]jacobianEntry{
		{body: c.BodyA, linear: n.Scale(-1), angular: -c.RA.Cross(n)},
		{body: c.BodyB, linear: n, angular: c.RB.Cross(n)},
	}
}

func tangentJacobian(c *Contact) [2]jacobianEntry {
	t := c.Normal.Perp()
	return [2]jacobianEntry{
		{body: c.BodyA, linear: t.Scale(-1), angular: -c.RA.Cross(t)},
		{body: c.BodyB, linear: t, angular: c.RB.Cross(t)},
	}
}

// coupling computes J_i * M^-1 * J_j^T, summed over any body the two rows
// share (zero when ei and ej's bodies are disjoint).
func coupling(ei, ej [2]jacobianEntry) float64 {
	var sum float64
	for _, a := range ei {
		if a.body == nil {
			continue
		}
		for _, b := range ej {
			if a.body != b.body {
				continue
			}
			sum += a.linear.Dot(b.linear)*a.body.InvMass + a.angular*b.angular*a.body.InvMoment
		}
	}
	return sum
}

func pointVelocity(body *Body, r vec.Vec2) vec.Vec2 {
	return body.Velocity.Add(perpScale(r, body.AngularVelocity))
}

func relativeVelocity(c *Contact) vec.Vec2 {
	return pointVelocity(c.BodyB, c.RB).Sub(pointVelocity(c.BodyA, c.RA))
}

// Assemble builds the boxed-LCP problem of spec §3 for contacts, with A as
// an unpadded [boxlcp.Dense] matrix:
// two rows per contact (a normal row, index 2i, and a friction row, index
// 2i+1, coupled to it via findex), nub always 0 since every row carries a
// box constraint. b holds the negated pre-solve relative contact
// velocity, the right-hand side a velocity-level contact LCP solves
// against.
func Assemble(contacts []Contact) (a *boxlcp.Dense, b, lo, hi []float64, findex []int, nub int) {
	n := len(contacts) * 2
	a = boxlcp.NewDense(n, n)
	b = make([]float64, n)
	lo = make([]float64, n)
	hi = make([]float64, n)
	findex = make([]int, n)

	jac := make([][2]jacobianEntry, n)
	for i := range contacts {
		c := &contacts[i]
		ni, ti := 2*i, 2*i+1
		jac[ni] = normalJacobian(c)
		jac[ti] = tangentJacobian(c)

		lo[ni], hi[ni] = 0, math.Inf(1)
		findex[ni] = -1

		lo[ti], hi[ti] = -c.Friction, c.Friction
		findex[ti] = ni

		rv := relativeVelocity(c)
		b[ni] = -rv.Dot(c.Normal)
		b[ti] = -rv.Dot(c.Normal.Perp())
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, coupling(jac[i], jac[j]))
		}
	}

	return a, b, lo, hi, findex, 0
}

// Solve assembles contacts and solves the resulting LCP with s. The
// returned x has length 2*len(contacts): x[2i] is contact i's normal
// impulse magnitude, x[2i+1] its tangential (friction) impulse.
func Solve(s *boxlcp.Solver, contacts []Contact) ([]float64, boxlcp.Result) {
	a, b, lo, hi, findex, nub := Assemble(contacts)
	x := make([]float64, len(b))
	res := s.SolveDense(a, x, b, lo, hi, nub, findex)
	return x, res
}

// ApplyImpulses integrates the solved impulses x back into each contact's
// bodies' velocities, mirroring the teacher's applyImpulse.
func ApplyImpulses(contacts []Contact, x []float64) {
	for i := range contacts {
		c := &contacts[i]
		n := c.Normal
		t := n.Perp()
		j := n.Scale(x[2*i]).Add(t.Scale(x[2*i+1]))
		applyImpulse(c.BodyA, j.Scale(-1), c.RA)
		applyImpulse(c.BodyB, j, c.RB)
	}
}

func applyImpulse(body *Body, j, r vec.Vec2) {
	body.Velocity = body.Velocity.Add(j.Scale(body.InvMass))
	body.AngularVelocity += body.InvMoment * r.Cross(j)
}
