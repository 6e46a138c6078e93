package solver

import (
	"testing"

	"svw.info/diagsudoku/internal/domain"
)

func fullBoard() domain.Values {
	v := make(domain.Values, 81)
	for _, c := range domain.Cells() {
		v[c] = domain.Digits
	}
	return v
}

func TestAssignNoOpKeepsTraceEmpty(t *testing.T) {
	st := newState(fullBoard())
	st.assign("A1", domain.Digits)
	if len(st.trace.Steps) != 0 {
		t.Fatalf("no-op assignment grew the trace to %d steps", len(st.trace.Steps))
	}
	st.assign("A1", "5")
	st.assign("A1", "5")
	if len(st.trace.Steps) != 1 {
		t.Fatalf("got %d trace steps, want 1", len(st.trace.Steps))
	}
}

func TestAssignSnapshotsOnFix(t *testing.T) {
	st := newState(fullBoard())
	st.assign("A1", "135")
	if len(st.trace.Steps) != 0 {
		t.Fatalf("narrowing to 3 candidates should not snapshot")
	}
	st.assign("A1", "5")
	if len(st.trace.Steps) != 1 {
		t.Fatalf("got %d trace steps, want 1", len(st.trace.Steps))
	}
	snap := st.trace.Steps[0]
	if len(snap) != 81 || snap["A1"] != "5" {
		t.Fatalf("snapshot incomplete: %d cells, A1=%q", len(snap), snap["A1"])
	}
	// the snapshot must be insulated from later mutation
	st.assign("A1", "7")
	if snap["A1"] != "5" {
		t.Fatalf("snapshot changed after later assignment: A1=%q", snap["A1"])
	}
}

func TestBranchCopyIsIndependent(t *testing.T) {
	st := newState(fullBoard())
	child := st.copy()
	child.assign("B2", "4")
	if st.values["B2"] != domain.Digits {
		t.Fatalf("child mutation leaked into parent: B2=%q", st.values["B2"])
	}
	if len(st.trace.Steps) != 1 {
		t.Fatalf("trace is shared across branches, got %d steps", len(st.trace.Steps))
	}
}
