package geometry

// Quad is a quadrilateral panel with vertices A, B, C, D.
//
// For a lifting-surface panel the roles are fixed: A and D lie on the root
// edge (nearer the symmetry plane along the span axis), B and C on the tip
// edge, with A/B on the leading side and D/C on the trailing side. The path
// A -> B -> C -> D determines the panel normal, so the role assignment is
// load-bearing for anything downstream that computes forces.
type Quad struct {
	A, B, C, D Vector3
}

// Canonical reorders the vertices into the fixed role convention.
//
// Geometry kernels return the four corner points of a segment patch in an
// authoring-tool-dependent order. Any of the 8 relabelings/reflections of a
// well-formed convex quadrilateral maps to the same canonical result:
//
//  1. per span-wise edge, the point with the larger Y (tie-break: larger Z)
//     becomes the tip-side point,
//  2. the two edges are then ordered along X so that (A, D) is the root edge
//     and (B, C) the tip edge.
//
// The four guarded swaps are order-sensitive and must not be collapsed into
// a sort: the equal-Y-compare-Z tie-break changes the result on degenerate
// quadrilaterals. Canonical is idempotent.
func (q Quad) Canonical() Quad {
	a, b, c, d := q.A, q.B, q.C, q.D

	if b.Y < a.Y || (b.Y == a.Y && b.Z < a.Z) {
		a, b = b, a
	}
	if c.Y < d.Y || (c.Y == d.Y && c.Z < d.Z) {
		c, d = d, c
	}
	if d.X < a.X {
		a, d = d, a
	}
	if c.X < b.X {
		b, c = c, b
	}

	return Quad{A: a, B: b, C: c, D: d}
}

// Normal returns the unit panel normal, computed as the cross product of
// the two diagonals. For a canonical wing panel lying in the XY plane the
// normal points in +Z.
func (q Quad) Normal() Vector3 {
	return q.C.Sub(q.A).Cross(q.B.Sub(q.D)).Normalize()
}

// Area returns the surface area of the quadrilateral, split into the two
// triangles (A, B, C) and (A, C, D).
func (q Quad) Area() float64 {
	ac := q.C.Sub(q.A)
	t1 := q.B.Sub(q.A).Cross(ac).Length() / 2.0
	t2 := ac.Cross(q.D.Sub(q.A)).Length() / 2.0
	return t1 + t2
}

// Center returns the centroid of the four vertices
func (q Quad) Center() Vector3 {
	return q.A.Add(q.B).Add(q.C).Add(q.D).Mul(0.25)
}
