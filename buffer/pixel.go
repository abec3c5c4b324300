package buffer

// Measurer reports the rendered width of text in pixels. Widths must not
// shrink as a prefix grows.
type Measurer interface {
	MeasureWidth(text string) int
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(text string) int

func (f MeasureFunc) MeasureWidth(text string) int { return f(text) }

// ColumnFromPixel returns the column whose left edge is nearest to targetX,
// an offset from the start of the rendered line. The scan stops at the first
// prefix that does not improve on the best distance, so with non-monotonic
// widths the result is a local match.
func ColumnFromPixel(line string, targetX int, m Measurer) int {
	if targetX <= 0 {
		return 0
	}
	best := 0
	minDiff := -1
	col := 0
	for byteIdx := range line {
		diff := abs(m.MeasureWidth(line[:byteIdx]) - targetX)
		if minDiff >= 0 && diff >= minDiff {
			return best
		}
		minDiff = diff
		best = col
		col++
	}
	if diff := abs(m.MeasureWidth(line) - targetX); minDiff < 0 || diff < minDiff {
		best = col
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
