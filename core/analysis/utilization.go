package analysis

import (
	"math"

	"github.com/schedlab/rtfeas/core/model"
)

// UtilizationBoundAnalyzer runs the Liu & Layland least-upper-bound test
// for rate-monotonic fixed-priority scheduling. The test is sufficient but
// not necessary: an infeasible verdict may still be schedulable, which the
// exact tests can confirm.
type UtilizationBoundAnalyzer struct{}

func (UtilizationBoundAnalyzer) Name() string { return TestRMUtilization }

func (UtilizationBoundAnalyzer) Analyze(ts model.TaskSet) (model.FeasibilityResult, error) {
	res := model.FeasibilityResult{Test: TestRMUtilization}
	if err := ts.Validate(); err != nil {
		return res, err
	}
	n := float64(len(ts))
	res.Utilization = utilization(ts)
	res.Bound = n * (math.Pow(2, 1/n) - 1)
	if res.Utilization <= res.Bound {
		res.Verdict = model.Feasible
	}
	return res, nil
}

// DynamicPriorityBoundAnalyzer runs the utilization test for optimal
// dynamic-priority disciplines. For implicit-deadline periodic tasks, EDF
// and LLF share the identical necessary-and-sufficient condition U <= 1,
// so one computation answers for both.
type DynamicPriorityBoundAnalyzer struct{}

func (DynamicPriorityBoundAnalyzer) Name() string { return TestDynamicPriority }

func (DynamicPriorityBoundAnalyzer) Analyze(ts model.TaskSet) (model.FeasibilityResult, error) {
	res := model.FeasibilityResult{Test: TestDynamicPriority, Bound: 1}
	if err := ts.Validate(); err != nil {
		return res, err
	}
	res.Utilization = utilization(ts)
	if res.Utilization <= 1 {
		res.Verdict = model.Feasible
	}
	return res, nil
}
