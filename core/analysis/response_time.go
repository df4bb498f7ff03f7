package analysis

import "github.com/schedlab/rtfeas/core/model"

// ResponseTimeAnalyzer runs the exact completion-time test. For each task,
// from highest priority down, it computes the steady-state worst-case
// response time at a critical instant by fixed-point iteration and checks
// it against the task's deadline.
type ResponseTimeAnalyzer struct{}

func (ResponseTimeAnalyzer) Name() string { return TestResponseTime }

// Analyze returns an infeasible verdict as soon as a task's response time
// iterate exceeds its deadline. Response times computed up to that point
// are kept as diagnostics.
func (ResponseTimeAnalyzer) Analyze(ts model.TaskSet) (model.FeasibilityResult, error) {
	res := model.FeasibilityResult{Test: TestResponseTime}
	if err := ts.Validate(); err != nil {
		return res, err
	}
	res.Utilization = utilization(ts)
	res.ResponseTimes = make([]float64, len(ts))

	for i := range ts {
		r, ok := responseTime(ts, i)
		res.ResponseTimes[i] = r
		if !ok {
			res.Verdict = model.Infeasible
			return res, nil
		}
	}
	res.Verdict = model.Feasible
	return res, nil
}

// responseTime iterates a(k+1) = C_i + sum_{j<i} ceil(a(k)/T_j)*C_j from
// the seed sum C_0..C_i. The sequence is monotonic non-decreasing, so it
// either reaches a fixed point R_i or overshoots the deadline; no other
// stop condition is needed.
func responseTime(ts model.TaskSet, i int) (float64, bool) {
	a := 0.0
	for j := 0; j <= i; j++ {
		a += ts[j].WCET
	}
	for {
		if a > ts[i].Deadline {
			return a, false
		}
		next := ts[i].WCET
		for j := 0; j < i; j++ {
			next += ceilDiv(a, ts[j].Period) * ts[j].WCET
		}
		if next == a {
			return a, true
		}
		a = next
	}
}
