package solver

import (
	"strings"
	"testing"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

func TestEliminateRemovesFixedValueFromPeers(t *testing.T) {
	topo := topology.New(domain.Classic)
	s := NewConstraintSolver(topo)
	st := newState(fullBoard())
	st.values["A1"] = "5"

	s.eliminate(st)

	for _, p := range topo.Peers["A1"] {
		if strings.Contains(st.values[p], "5") {
			t.Fatalf("peer %s still holds 5: %q", p, st.values[p])
		}
	}
	if st.values["A1"] != "5" {
		t.Fatalf("fixed cell changed: %q", st.values["A1"])
	}
	if st.values["E5"] != domain.Digits {
		t.Fatalf("non-peer E5 changed: %q", st.values["E5"])
	}
}

func TestOnlyChoiceForcesUniqueCarrier(t *testing.T) {
	topo := topology.New(domain.Classic)
	s := NewConstraintSolver(topo)
	st := newState(fullBoard())
	// in row A only A4 still carries a 7
	for _, c := range []domain.Cell{"A1", "A2", "A3", "A5", "A6", "A7", "A8", "A9"} {
		st.values[c] = "123456"
	}
	st.values["A4"] = "79"

	s.onlyChoice(st)

	if st.values["A4"] != "7" {
		t.Fatalf("A4 = %q, want \"7\"", st.values["A4"])
	}
	if st.values["A1"] != "123456" {
		t.Fatalf("A1 changed: %q", st.values["A1"])
	}
}

func TestNakedTwinsClearPeersInUnit(t *testing.T) {
	topo := topology.New(domain.Classic)
	s := NewConstraintSolver(topo)
	st := newState(fullBoard())
	st.values["A1"] = "37"
	st.values["A2"] = "37"

	s.nakedTwins(st)

	// the twins themselves survive untouched
	if st.values["A1"] != "37" || st.values["A2"] != "37" {
		t.Fatalf("twins changed: A1=%q A2=%q", st.values["A1"], st.values["A2"])
	}
	// every other cell of row A and of the shared box loses 3 and 7
	affected := []domain.Cell{"A3", "A4", "A5", "A6", "A7", "A8", "A9", "B1", "B2", "B3", "C1", "C2", "C3"}
	for _, c := range affected {
		if strings.ContainsAny(st.values[c], "37") {
			t.Fatalf("%s still holds 3 or 7: %q", c, st.values[c])
		}
	}
	// cells outside the shared units are untouched
	if st.values["D5"] != domain.Digits {
		t.Fatalf("D5 changed: %q", st.values["D5"])
	}
}

func TestNakedTwinsTripleCellsShareOnePair(t *testing.T) {
	topo := topology.New(domain.Classic)
	s := NewConstraintSolver(topo)
	st := newState(fullBoard())
	st.values["A1"] = "37"
	st.values["A5"] = "37"
	st.values["A9"] = "37"

	s.nakedTwins(st)

	for _, c := range []domain.Cell{"A1", "A5", "A9"} {
		if st.values[c] != "37" {
			t.Fatalf("%s changed: %q", c, st.values[c])
		}
	}
	if strings.ContainsAny(st.values["A2"], "37") {
		t.Fatalf("A2 still holds 3 or 7: %q", st.values["A2"])
	}
}
