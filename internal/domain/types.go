package domain

// Rows and Cols index the 9×9 board; a cell ID concatenates one of each.
const (
	Rows = "ABCDEFGHI"
	Cols = "123456789"
)

// Digits are the candidate values a cell may hold.
const Digits = "123456789"

// Cell identifies one of the 81 board cells, e.g. "A1".
type Cell string

// Unit is a group of 9 cells that must jointly hold each digit exactly once.
type Unit []Cell

// Values maps every cell to its remaining candidates, kept as an ascending
// digit string ("137"). A cell with exactly one digit is fixed.
type Values map[Cell]string

// Cells returns all 81 cell IDs in row-major scan order (A1..A9, B1..I9).
func Cells() []Cell {
	out := make([]Cell, 0, 81)
	for _, r := range Rows {
		for _, c := range Cols {
			out = append(out, Cell(string(r)+string(c)))
		}
	}
	return out
}

// Copy returns an independent copy of the board state.
func (v Values) Copy() Values {
	out := make(Values, len(v))
	for c, cands := range v {
		out[c] = cands
	}
	return out
}

// Solved reports whether every cell is fixed to a single digit.
func (v Values) Solved() bool {
	for _, cands := range v {
		if len(cands) != 1 {
			return false
		}
	}
	return true
}

// Trace is the append-only sequence of full-board snapshots, one per cell
// that became fixed. It exists for playback tooling and is never consulted
// by the solving algorithm.
type Trace struct {
	Steps []Values `json:"steps"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []Cell       `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a generated Sudoku with metadata. Grid is the 81-character
// row-major form, '.' for empty cells.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Variant    Variant    `json:"variant"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       string     `json:"grid"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// TraceRecord is a persisted solve trace with metadata.
type TraceRecord struct {
	ID        string   `json:"id,omitempty"`
	Grid      string   `json:"grid"`
	Variant   Variant  `json:"variant"`
	Solved    bool     `json:"solved"`
	CreatedAt int64    `json:"createdAt,omitempty"`
	Name      string   `json:"name,omitempty"`
	Steps     []Values `json:"steps"`
}

// TraceMeta is a lightweight listing entry.
type TraceMeta struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Variant   Variant `json:"variant"`
	Solved    bool    `json:"solved"`
	CreatedAt int64   `json:"createdAt"`
}
