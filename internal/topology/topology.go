package topology

import (
	"sort"

	"svw.info/diagsudoku/internal/domain"
)

// Topology is the static structure of the board for one variant: the unit
// list and, for every cell, the units containing it and its peer set.
// Built once, read-only afterwards.
type Topology struct {
	Variant domain.Variant
	Cells   []domain.Cell // row-major scan order
	Units   []domain.Unit // 27 for classic, 29 for diagonal
	UnitsOf map[domain.Cell][]domain.Unit
	Peers   map[domain.Cell][]domain.Cell // sorted, excludes the cell itself
}

// New builds the topology for the given variant.
func New(v domain.Variant) *Topology {
	t := &Topology{
		Variant: v,
		Cells:   domain.Cells(),
		UnitsOf: make(map[domain.Cell][]domain.Unit, 81),
		Peers:   make(map[domain.Cell][]domain.Cell, 81),
	}

	for _, r := range domain.Rows {
		t.Units = append(t.Units, cross(string(r), domain.Cols))
	}
	for _, c := range domain.Cols {
		t.Units = append(t.Units, cross(domain.Rows, string(c)))
	}
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			t.Units = append(t.Units, cross(rs, cs))
		}
	}
	if v == domain.Diagonal {
		t.Units = append(t.Units, diagonal(domain.Cols), diagonal(reverse(domain.Cols)))
	}

	for _, u := range t.Units {
		for _, c := range u {
			t.UnitsOf[c] = append(t.UnitsOf[c], u)
		}
	}
	for _, c := range t.Cells {
		seen := make(map[domain.Cell]bool)
		for _, u := range t.UnitsOf[c] {
			for _, p := range u {
				if p != c {
					seen[p] = true
				}
			}
		}
		peers := make([]domain.Cell, 0, len(seen))
		for p := range seen {
			peers = append(peers, p)
		}
		sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
		t.Peers[c] = peers
	}
	return t
}

// cross builds the unit of every row letter in rs paired with every column
// digit in cs.
func cross(rs, cs string) domain.Unit {
	u := make(domain.Unit, 0, len(rs)*len(cs))
	for _, r := range rs {
		for _, c := range cs {
			u = append(u, domain.Cell(string(r)+string(c)))
		}
	}
	return u
}

// diagonal pairs the row letters with the given column order.
func diagonal(cs string) domain.Unit {
	u := make(domain.Unit, 0, 9)
	for i, r := range domain.Rows {
		u = append(u, domain.Cell(string(r)+string(cs[i])))
	}
	return u
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
