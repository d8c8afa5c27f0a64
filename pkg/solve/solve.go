package solve

import (
	"github.com/philipparndt/gosketch/pkg/constraint"
	"github.com/philipparndt/gosketch/pkg/gamut"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Step is one committed entry in a solve's diagnostic log.
type Step struct {
	Variable     string
	Initial      geometry.Position
	Loci         []gamut.Gamut
	Intersection gamut.Gamut
	Freedom      int64
	Chosen       geometry.Position
}

// Result is the outcome of Solve: the solved position for every input point, the step-by-step
// diagnostic log, and the ids that could not be determined and were committed to their initial
// guess instead.
type Result struct {
	Solution  map[string]geometry.Position
	Log       []Step
	Arbitrary []string
}

// Local folds every certain constraint's locus for v through Intersect, starting from Plane.
// It returns the final intersected gamut, the per-constraint loci (for diagnostics), and the
// gamut's freedom.
func Local(v string, constraints []constraint.Constraint, known *Points) (gamut.Gamut, []gamut.Gamut, int64) {
	g := gamut.Gamut(gamut.Plane{})
	loci := make([]gamut.Gamut, 0, len(constraints))

	for _, c := range constraints {
		locus := LocusOf(v, c, known)
		loci = append(loci, locus)
		g = gamut.Intersect(g, locus)
	}

	return g, loci, gamut.Freedom(g)
}

// certainConstraints returns the constraints mentioning v whose other dependencies are all
// already present in solved.
func certainConstraints(v string, constraints []constraint.Constraint, solved *Points) []constraint.Constraint {
	var out []constraint.Constraint
	for _, c := range constraints {
		if !constraint.Mentions(c, v) {
			continue
		}
		certain := true
		for _, dep := range c.DependsOn() {
			if dep == v {
				continue
			}
			if !solved.Has(dep) {
				certain = false
				break
			}
		}
		if certain {
			out = append(out, c)
		}
	}
	return out
}

// Solve runs the greedy most-constrained-first propagation loop: each round it commits the
// unsolved point with the smallest non-void locus to the nearest position on that locus to its
// initial guess. It is a pure function of its inputs: initial and constraints are read-only,
// and every call with equal inputs produces an equal Result.
func Solve(initial *Points, constraints []constraint.Constraint) Result {
	solved := NewPoints()
	var log []Step

	if len(constraints) == 0 {
		// With no constraints, every point's locus is Plane on every round: there is no
		// information to narrow it with, so this is the degenerate case of the "no progress
		// possible" fallback, not a sequence of Plane-freedom commits. Handled up front so a
		// fully unconstrained sketch yields an empty log and every id arbitrary.
		arbitrary := make([]string, 0, initial.Len())
		for _, id := range initial.IDs() {
			pos, _ := initial.Get(id)
			solved.Set(id, pos)
			arbitrary = append(arbitrary, id)
		}
		return Result{Solution: solvedMap(solved), Log: nil, Arbitrary: arbitrary}
	}

	unsolved := make(map[string]bool, initial.Len())
	for _, id := range initial.IDs() {
		unsolved[id] = true
	}

	for len(unsolved) > 0 {
		type candidate struct {
			id      string
			gamut   gamut.Gamut
			loci    []gamut.Gamut
			freedom int64
		}

		var best *candidate
		for _, id := range initial.IDs() {
			if !unsolved[id] {
				continue
			}
			certain := certainConstraints(id, constraints, solved)
			g, loci, freedom := Local(id, certain, solved)

			if freedom == 0 {
				// Void sorts last: treat as "infinitely large" so it never wins a round where
				// any other candidate has a determinate locus.
				continue
			}
			if best == nil || freedom < best.freedom {
				best = &candidate{id: id, gamut: g, loci: loci, freedom: freedom}
			}
		}

		if best == nil {
			// No candidate has a non-void locus: commit every remaining id to its initial
			// position and mark it arbitrary.
			arbitrary := make([]string, 0, len(unsolved))
			for _, id := range initial.IDs() {
				if !unsolved[id] {
					continue
				}
				pos, _ := initial.Get(id)
				solved.Set(id, pos)
				arbitrary = append(arbitrary, id)
			}
			return Result{Solution: solvedMap(solved), Log: log, Arbitrary: arbitrary}
		}

		initialPos, _ := initial.Get(best.id)
		chosen, ok := gamut.Nearest(best.gamut, initialPos)
		if !ok {
			chosen = initialPos
		}

		solved.Set(best.id, chosen)
		delete(unsolved, best.id)

		log = append(log, Step{
			Variable:     best.id,
			Initial:      initialPos,
			Loci:         best.loci,
			Intersection: best.gamut,
			Freedom:      best.freedom,
			Chosen:       chosen,
		})
	}

	return Result{Solution: solvedMap(solved), Log: log, Arbitrary: nil}
}

func solvedMap(p *Points) map[string]geometry.Position {
	out := make(map[string]geometry.Position, p.Len())
	for _, id := range p.IDs() {
		pos, _ := p.Get(id)
		out[id] = pos
	}
	return out
}
