package model

import (
	"encoding/json"
	"fmt"
)

// Verdict is the two-valued outcome of a feasibility test.
type Verdict int

const (
	Infeasible Verdict = iota
	Feasible
)

// String returns the classical all-caps verdict label.
func (v Verdict) String() string {
	if v == Feasible {
		return "FEASIBLE"
	}
	return "INFEASIBLE"
}

// MarshalJSON encodes the verdict as its string label.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a verdict from its string label.
func (v *Verdict) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "FEASIBLE":
		*v = Feasible
	case "INFEASIBLE":
		*v = Infeasible
	default:
		return fmt.Errorf("unknown verdict %q", s)
	}
	return nil
}

// FeasibilityResult is the outcome of one analyzer run. Diagnostic fields
// are populated only by the tests that compute them: ResponseTimes by the
// response-time test, SchedulingPoints by the scheduling-point test, and
// Utilization/Bound by every test that evaluates a utilization threshold.
type FeasibilityResult struct {
	Test        string  `json:"test"`
	Verdict     Verdict `json:"verdict"`
	Utilization float64 `json:"utilization,omitempty"`
	Bound       float64 `json:"bound,omitempty"`
	// ResponseTimes holds the worst-case response time per task, in
	// priority order. When a task diverges past its deadline the entry is
	// the first iterate that exceeded it and later entries are zero.
	ResponseTimes []float64 `json:"response_times,omitempty"`
	// SchedulingPoints holds, per task, the first instant at which the
	// cumulative demand fits, or -1 when no scheduling point satisfies it.
	SchedulingPoints []float64 `json:"scheduling_points,omitempty"`
}
