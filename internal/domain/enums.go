package domain

// Variant selects which constraint units apply.
type Variant int

const (
	Classic  Variant = iota // rows, columns, boxes
	Diagonal                // rows, columns, boxes, both main diagonals
)

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // sole candidates / forced placements
	StrategyPairs                       // naked pairs
)
