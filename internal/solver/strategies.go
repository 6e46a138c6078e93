package solver

import (
	"strings"

	"svw.info/diagsudoku/internal/domain"
)

// eliminate removes every fixed cell's digit from the candidates of its
// peers. It iterates a snapshot taken at the start of the pass, so cells
// that become fixed mid-pass are picked up by the next reducer round rather
// than within this one.
func (s *ConstraintSolver) eliminate(st *state) {
	snap := st.values.Copy()
	for _, c := range s.topo.Cells {
		v := snap[c]
		if len(v) != 1 {
			continue
		}
		for _, p := range s.topo.Peers[c] {
			st.assign(p, strings.Replace(st.values[p], v, "", 1))
		}
	}
}

// onlyChoice forces a digit into the one cell of a unit that still carries
// it. A digit carried by zero or several cells of the unit is left alone.
func (s *ConstraintSolver) onlyChoice(st *state) {
	for _, u := range s.topo.Units {
		for i := 0; i < 9; i++ {
			d := domain.Digits[i]
			var carrier domain.Cell
			n := 0
			for _, c := range u {
				if strings.IndexByte(st.values[c], d) >= 0 {
					carrier = c
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 1 {
				st.assign(carrier, string(d))
			}
		}
	}
}

// nakedTwins finds, per unit, every 2-digit candidate set held by two or
// more cells and strips those digits from the rest of the unit. If two
// cells can only hold {x,y} between them, no other cell of the unit may
// hold x or y. Assignments that would leave a set unchanged or empty are
// skipped; the reducer is the one to notice dead ends.
func (s *ConstraintSolver) nakedTwins(st *state) {
	for _, u := range s.topo.Units {
		naked := nakedSet(st.values, u)
		if naked == "" {
			continue
		}
		for _, c := range u {
			v := st.values[c]
			nv := strip(v, naked)
			if nv != "" && nv != v {
				st.assign(c, nv)
			}
		}
	}
}

// nakedSet returns the union of all candidate pairs that appear in more
// than one cell of the unit. Three cells sharing the same pair still
// contribute just that pair's two digits.
func nakedSet(v domain.Values, u domain.Unit) string {
	seen := make(map[string]bool, 9)
	var naked string
	for _, c := range u {
		cands := v[c]
		if len(cands) != 2 {
			continue
		}
		if seen[cands] {
			for i := 0; i < len(cands); i++ {
				if strings.IndexByte(naked, cands[i]) < 0 {
					naked += string(cands[i])
				}
			}
		} else {
			seen[cands] = true
		}
	}
	return naked
}

// strip removes every digit of cut from cands, preserving ascending order.
func strip(cands, cut string) string {
	var b strings.Builder
	for i := 0; i < len(cands); i++ {
		if strings.IndexByte(cut, cands[i]) < 0 {
			b.WriteByte(cands[i])
		}
	}
	return b.String()
}
