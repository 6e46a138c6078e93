package validator

import (
	"context"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

// UnitValidator checks every unit of the topology (rows, columns, boxes,
// and diagonals when the variant has them) for duplicate fixed digits.
// Unfixed cells are ignored, so a partially solved board can be checked too.
type UnitValidator struct {
	topo *topology.Topology
}

func New(t *topology.Topology) *UnitValidator { return &UnitValidator{topo: t} }

func (v *UnitValidator) Validate(ctx context.Context, g domain.Values) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	for _, u := range v.topo.Units {
		m := 0
		for _, c := range u {
			val := g[c]
			if len(val) != 1 {
				continue
			}
			bit := 1 << (val[0] - '0')
			if m&bit != 0 {
				conf = append(conf, c)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
