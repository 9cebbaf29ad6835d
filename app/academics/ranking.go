package academics

import (
	"fmt"
	"math"
	"sort"

	"kisima-schools/app/models"
)

// RankFailure reports one report whose new rank could not be persisted.
// Ranking continues past it; the order is cheap to recompute.
type RankFailure struct {
	StudentID string `json:"student_id"`
	Reason    string `json:"reason"`
}

// RankClass recomputes and persists dense ranks for every report in a
// class and term. Averages are compared after rounding to 2 decimal places
// so floating-point noise cannot break a tie. Ties share a rank and the
// next distinct score skips over the tie group: [90, 85, 85, 70] ranks as
// [1, 2, 2, 4]. Students with no graded subject are excluded entirely, not
// ranked last. This is always a full re-rank: one changed average can shift
// every other student's position.
func (e *Engine) RankClass(classID, termID string) ([]RankFailure, error) {
	reports, err := e.Reports.ForClassTerm(classID, termID)
	if err != nil {
		return nil, fmt.Errorf("load reports for class %s: %w", classID, err)
	}

	eligible := make([]*models.TermReport, 0, len(reports))
	for _, r := range reports {
		if r.GradedSubjects > 0 {
			eligible = append(eligible, r)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return round2(eligible[i].AverageScore) > round2(eligible[j].AverageScore)
	})

	var failures []RankFailure
	rank := 0
	prev := math.Inf(1)
	for i, r := range eligible {
		score := round2(r.AverageScore)
		if score != prev {
			rank = i + 1
			prev = score
		}
		if err := e.Reports.UpdateRank(r.StudentID, termID, rank); err != nil {
			failures = append(failures, RankFailure{StudentID: r.StudentID, Reason: err.Error()})
			e.Log.WithError(err).WithField("student_id", r.StudentID).Warn("failed to persist rank")
			continue
		}
		rr := rank
		r.Rank = &rr
	}

	e.Log.WithFields(map[string]interface{}{
		"class_id": classID,
		"term_id":  termID,
	}).Infof("ranked %d of %d reports", len(eligible)-len(failures), len(eligible))
	return failures, nil
}

// ClassRankedReports returns the class broadsheet: every report for the
// class and term, ranked reports first in rank order. If any graded report
// is unranked (a regeneration happened after the last ranking pass) the
// whole read fails with ErrRankingDataStale rather than serving stale ranks.
func (e *Engine) ClassRankedReports(classID, termID string) ([]*models.TermReport, error) {
	reports, err := e.Reports.ForClassTerm(classID, termID)
	if err != nil {
		return nil, fmt.Errorf("load reports for class %s: %w", classID, err)
	}
	for _, r := range reports {
		if r.GradedSubjects > 0 && r.Rank == nil {
			return nil, ErrRankingDataStale
		}
	}
	sort.SliceStable(reports, func(i, j int) bool {
		ri, rj := reports[i].Rank, reports[j].Rank
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri < *rj
		}
	})
	return reports, nil
}
