package cutplan

import "strconv"

// Grid produces Count contiguous intervals of Length seconds beginning at
// Start, labeled "{Prefix}1" through "{Prefix}{Count}".
type Grid struct {
	Start  float64
	Count  int
	Length float64
	Prefix string
}

// Produce implements Builder.
func (g Grid) Produce() (Plan, error) {
	if g.Count < 1 {
		return Plan{}, specErrorf("grid", "count must be at least 1, got %d", g.Count)
	}
	if g.Length <= 0 {
		return Plan{}, specErrorf("grid", "length must be positive, got %v", g.Length)
	}
	if g.Start < 0 {
		return Plan{}, specErrorf("grid", "start must not be negative, got %v", g.Start)
	}

	intervals := make([]Interval, 0, g.Count)
	for i := 0; i < g.Count; i++ {
		intervals = append(intervals, Interval{
			Start: g.Start + float64(i)*g.Length,
			End:   g.Start + float64(i+1)*g.Length,
			Label: g.Prefix + strconv.Itoa(i+1),
		})
	}
	return Plan{Targets: []Target{{Intervals: intervals}}}, nil
}

var _ Builder = Grid{}
