package academics

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ClassStatistics summarises the distribution of term averages in one class.
type ClassStatistics struct {
	ClassID string  `json:"class_id"`
	TermID  string  `json:"term_id"`
	Reports int     `json:"reports"`
	Graded  int     `json:"graded"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ComputeClassStatistics builds distribution statistics over the average
// scores of all graded reports for a class and term. Ungraded reports are
// counted but excluded from the distribution, the same way ranking excludes
// them.
func (e *Engine) ComputeClassStatistics(classID, termID string) (*ClassStatistics, error) {
	reports, err := e.Reports.ForClassTerm(classID, termID)
	if err != nil {
		return nil, fmt.Errorf("load reports for class %s: %w", classID, err)
	}

	out := &ClassStatistics{ClassID: classID, TermID: termID, Reports: len(reports)}
	data := make(stats.Float64Data, 0, len(reports))
	for _, r := range reports {
		if r.GradedSubjects > 0 {
			data = append(data, r.AverageScore)
		}
	}
	out.Graded = len(data)
	if len(data) == 0 {
		return out, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("compute mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("compute median: %w", err)
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, fmt.Errorf("compute stddev: %w", err)
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, fmt.Errorf("compute min: %w", err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, fmt.Errorf("compute max: %w", err)
	}

	out.Mean = round2(mean)
	out.Median = round2(median)
	out.StdDev = round2(stdDev)
	out.Min = round2(min)
	out.Max = round2(max)
	return out, nil
}
