package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/grid"
	"svw.info/diagsudoku/internal/topology"
)

func TestHintFindsNakedSingle(t *testing.T) {
	h := NewLogical(topology.New(domain.Classic))
	// row A lacks only the 9, so A9 is a naked single
	v, err := grid.Parse("12345678." + strings.Repeat(".", 72))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	hh, found, err := h.Hint(context.Background(), v, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatalf("no hint found")
	}
	if hh.Strategy != domain.StrategySingles {
		t.Fatalf("strategy = %v, want singles", hh.Strategy)
	}
	if len(hh.Cells) != 1 || hh.Cells[0] != "A9" {
		t.Fatalf("cells = %v, want [A9]", hh.Cells)
	}
}

func TestHintFindsNakedPair(t *testing.T) {
	h := NewLogical(topology.New(domain.Classic))
	v := make(domain.Values, 81)
	for _, c := range domain.Cells() {
		v[c] = domain.Digits
	}
	v["A1"] = "37"
	v["A2"] = "37"
	v["A4"] = "379"

	hh, found, err := h.Hint(context.Background(), v, domain.StrategyPairs)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatalf("no hint found")
	}
	if hh.Strategy != domain.StrategyPairs {
		t.Fatalf("strategy = %v, want pairs", hh.Strategy)
	}
	if len(hh.Cells) != 2 || hh.Cells[0] != "A1" || hh.Cells[1] != "A2" {
		t.Fatalf("cells = %v, want [A1 A2]", hh.Cells)
	}
}

func TestHintRespectsTierCap(t *testing.T) {
	h := NewLogical(topology.New(domain.Classic))
	v := make(domain.Values, 81)
	for _, c := range domain.Cells() {
		v[c] = domain.Digits
	}
	v["A1"] = "37"
	v["A2"] = "37"
	v["A4"] = "379"

	_, found, err := h.Hint(context.Background(), v, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatalf("pair hint returned despite singles cap")
	}
}
