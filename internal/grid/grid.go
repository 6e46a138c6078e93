package grid

import (
	"fmt"
	"strings"

	"svw.info/diagsudoku/internal/domain"
)

// Parse converts an 81-character grid string ('1'-'9' or '.' per cell,
// row-major) into board state, expanding empty cells to all candidates.
// Malformed input is rejected before any solving begins.
func Parse(input string) (domain.Values, error) {
	if len(input) != 81 {
		return nil, fmt.Errorf("grid must be 81 characters, got %d", len(input))
	}
	v := make(domain.Values, 81)
	for i, c := range domain.Cells() {
		ch := input[i]
		switch {
		case ch == '.':
			v[c] = domain.Digits
		case ch >= '1' && ch <= '9':
			v[c] = string(ch)
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return v, nil
}

// String converts board state back to the 81-character form, '.' for any
// cell that is not fixed.
func String(v domain.Values) string {
	var b strings.Builder
	b.Grow(81)
	for _, c := range domain.Cells() {
		if cands := v[c]; len(cands) == 1 {
			b.WriteString(cands)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Render formats board state as a human-readable 9×9 grid with separators
// after rows 3 and 6 and columns 3 and 6. Unfixed cells show their full
// candidate set; the column width adapts to the widest one.
func Render(v domain.Values) string {
	width := 2
	for _, cands := range v {
		if len(cands)+1 > width {
			width = len(cands) + 1
		}
	}
	bar := strings.Repeat("-", width*3)
	line := bar + "+" + bar + "+" + bar

	var b strings.Builder
	for ri, r := range domain.Rows {
		for ci, c := range domain.Cols {
			b.WriteString(center(v[domain.Cell(string(r)+string(c))], width))
			if ci == 2 || ci == 5 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if ri == 2 || ri == 5 {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
