package history

import "fmt"

// Comparison is one benchmark's change between two runs.
type Comparison struct {
	Name    string
	DiffPct float64 // Percentage change in mean time; negative is faster.
	Prev    Result
	Curr    Result
	New     bool // No previous result to compare against.
}

// Compare matches current results against a previous run by qualified name.
// Results keep the current run's order; benchmarks absent from the previous
// run are marked New.
func Compare(prev, curr []Result) []Comparison {
	prevMap := make(map[string]Result, len(prev))
	for _, r := range prev {
		prevMap[r.Name] = r
	}

	comparisons := make([]Comparison, 0, len(curr))
	for _, c := range curr {
		comp := Comparison{Name: c.Name, Curr: c}
		if p, ok := prevMap[c.Name]; ok {
			comp.Prev = p
			if p.MeanNs > 0 {
				comp.DiffPct = (float64(c.MeanNs) - float64(p.MeanNs)) / float64(p.MeanNs) * 100
			}
		} else {
			comp.New = true
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func (c Comparison) String() string {
	if c.New {
		return fmt.Sprintf("%s: new", c.Name)
	}
	return fmt.Sprintf("%s: %+.2f%%", c.Name, c.DiffPct)
}
