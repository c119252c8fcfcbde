package cutplan

// Interval is one contiguous cut range in seconds. End is strictly greater
// than Start for every interval a builder produces; Label is the
// filesystem-safe file stem for the segment.
type Interval struct {
	Start float64
	End   float64
	Label string
}

// Duration returns the interval length in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Target is one output directory's worth of intervals. Subdir is empty for
// grid and CSV plans (segments land in the output directory itself) and the
// sanitized sheet directory name in workbook plans. Sheet carries the
// original sheet name for source resolution and logging.
type Target struct {
	Subdir    string
	Sheet     string
	Source    string
	Intervals []Interval
}

// Plan is the ordered set of targets a run will cut.
type Plan struct {
	Targets []Target
}

// IntervalCount returns the total number of intervals across all targets.
func (p Plan) IntervalCount() int {
	total := 0
	for _, target := range p.Targets {
		total += len(target.Intervals)
	}
	return total
}

// SheetNames returns the sheet name of every target, in plan order.
func (p Plan) SheetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for _, target := range p.Targets {
		names = append(names, target.Sheet)
	}
	return names
}

// ApplySources attaches the resolved audio source of every target, keyed by
// sheet name. Grid and CSV plans carry a single target with an empty sheet
// name, so a mapping of {"" -> input} covers them.
func (p *Plan) ApplySources(mapping map[string]string) {
	for i := range p.Targets {
		p.Targets[i].Source = mapping[p.Targets[i].Sheet]
	}
}

// Builder produces a cutting plan from one timestamp specification. The three
// implementations (Grid, CSVFile, Workbook) are selected once at startup from
// mutually exclusive configuration.
type Builder interface {
	Produce() (Plan, error)
}
