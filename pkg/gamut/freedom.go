package gamut

// F is the freedom sentinel for a 1-D locus (Line or Circle). Chosen large enough that no
// plausible union of Point members (freedom 1 each) reaches it, so "more dimensions" always
// outranks "more branches" when pkg/solve picks the next variable to commit. Only relative
// ordering of Freedom's return value is meaningful; F's magnitude is otherwise arbitrary.
const F int64 = 100000

// Freedom is a dimensionality proxy used only to rank candidate variables during propagation:
// Void (0) < Point (1) < Line/Circle (F) < Plane (F*F), and a Union sums its members' freedoms.
func Freedom(g Gamut) int64 {
	switch v := Simplify(g).(type) {
	case Plane:
		return F * F
	case Line:
		return F
	case Circle:
		return F
	case Point:
		return 1
	case Void:
		return 0
	case Union:
		var total int64
		for _, m := range v.Members {
			total += Freedom(m)
		}
		return total
	default:
		panic("gamut: unreachable variant in Freedom")
	}
}

// IsEmpty reports whether g represents the empty set: Void itself, or a Union all of whose
// members are empty (accepted even before simplification would have collapsed it to Void).
func IsEmpty(g Gamut) bool {
	switch v := g.(type) {
	case Void:
		return true
	case Union:
		for _, m := range v.Members {
			if !IsEmpty(m) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
