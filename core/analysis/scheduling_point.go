package analysis

import (
	"errors"
	"fmt"

	"github.com/schedlab/rtfeas/core/model"
)

// ErrExplicitDeadline is returned by the scheduling-point test for task
// sets where some deadline differs from the period. The classical
// derivation only covers implicit deadlines, so such sets are rejected
// rather than mis-answered.
var ErrExplicitDeadline = errors.New("scheduling-point test requires deadline == period")

// SchedulingPointAnalyzer runs Lehoczky's exact test. A task is feasible
// if the cumulative demand of it and all higher-priority tasks fits within
// any scheduling point l*T_k up to its own period.
type SchedulingPointAnalyzer struct{}

func (SchedulingPointAnalyzer) Name() string { return TestSchedulingPoint }

// Analyze checks every task against its scheduling points. The inner
// search stops at the first satisfying point; all tasks are examined even
// after a failure so the diagnostics cover the whole set.
func (SchedulingPointAnalyzer) Analyze(ts model.TaskSet) (model.FeasibilityResult, error) {
	res := model.FeasibilityResult{Test: TestSchedulingPoint}
	if err := ts.Validate(); err != nil {
		return res, err
	}
	for i, t := range ts {
		if !t.ImplicitDeadline() {
			return res, fmt.Errorf("task %d: %w", i, ErrExplicitDeadline)
		}
	}
	res.Utilization = utilization(ts)
	res.SchedulingPoints = make([]float64, len(ts))

	verdict := model.Feasible
	for i := range ts {
		point := firstFeasiblePoint(ts, i)
		res.SchedulingPoints[i] = point
		if point < 0 {
			verdict = model.Infeasible
		}
	}
	res.Verdict = verdict
	return res, nil
}

// firstFeasiblePoint scans the candidate instants l*T_k for k <= i and
// 1 <= l <= floor(T_i/T_k), returning the first one whose demand fits, or
// -1 when none does. The candidate set is finite, so the scan is bounded.
func firstFeasiblePoint(ts model.TaskSet, i int) float64 {
	for k := 0; k <= i; k++ {
		lmax := floorDiv(ts[i].Period, ts[k].Period)
		for l := 1.0; l <= lmax; l++ {
			point := l * ts[k].Period
			demand := 0.0
			for j := 0; j <= i; j++ {
				demand += ts[j].WCET * ceilDiv(point, ts[j].Period)
			}
			if demand <= point {
				return point
			}
		}
	}
	return -1
}
