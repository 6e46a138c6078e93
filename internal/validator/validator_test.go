package validator

import (
	"context"
	"testing"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

func board(fixed map[domain.Cell]string) domain.Values {
	v := make(domain.Values, 81)
	for _, c := range domain.Cells() {
		if d, ok := fixed[c]; ok {
			v[c] = d
		} else {
			v[c] = domain.Digits
		}
	}
	return v
}

func TestValidateFlagsRowDuplicate(t *testing.T) {
	v := New(topology.New(domain.Classic))
	ok, conf, err := v.Validate(context.Background(), board(map[domain.Cell]string{"A1": "5", "A7": "5"}))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("duplicate in row A not flagged (ok=%v conflicts=%v)", ok, conf)
	}
}

func TestValidateDiagonalDuplicate(t *testing.T) {
	// A1 and E5 share only a diagonal; the classic topology must accept
	// this board and the diagonal one must reject it.
	b := board(map[domain.Cell]string{"A1": "5", "E5": "5"})

	ok, _, err := New(topology.New(domain.Classic)).Validate(context.Background(), b)
	if err != nil || !ok {
		t.Fatalf("classic topology rejected a row/col/box-valid board: ok=%v err=%v", ok, err)
	}
	ok, conf, err := New(topology.New(domain.Diagonal)).Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatalf("diagonal duplicate not flagged (ok=%v conflicts=%v)", ok, conf)
	}
}

func TestValidateIgnoresUnfixedCells(t *testing.T) {
	v := New(topology.New(domain.Diagonal))
	ok, conf, err := v.Validate(context.Background(), board(nil))
	if err != nil || !ok {
		t.Fatalf("empty board flagged: ok=%v conflicts=%v err=%v", ok, conf, err)
	}
}
