package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/schedlab/rtfeas/core/model"
)

// Test name labels carried in FeasibilityResult.Test.
const (
	TestResponseTime    = "response_time"
	TestSchedulingPoint = "scheduling_point"
	TestRMUtilization   = "rm_utilization"
	TestDynamicPriority = "dynamic_priority_utilization"
)

// Analyzer runs one schedulability test over a task set. Implementations
// are stateless and safe for concurrent use on distinct task sets.
type Analyzer interface {
	Name() string
	Analyze(ts model.TaskSet) (model.FeasibilityResult, error)
}

// Suite returns the four analyzers in their conventional order: the two
// exact fixed-priority tests, the sufficient RM bound, and the dynamic
// priority bound.
func Suite() []Analyzer {
	return []Analyzer{
		ResponseTimeAnalyzer{},
		SchedulingPointAnalyzer{},
		UtilizationBoundAnalyzer{},
		DynamicPriorityBoundAnalyzer{},
	}
}

// ResponseTimeFeasible runs the exact completion-time test.
func ResponseTimeFeasible(ts model.TaskSet) (model.FeasibilityResult, error) {
	return ResponseTimeAnalyzer{}.Analyze(ts)
}

// SchedulingPointFeasible runs Lehoczky's exact scheduling-point test.
func SchedulingPointFeasible(ts model.TaskSet) (model.FeasibilityResult, error) {
	return SchedulingPointAnalyzer{}.Analyze(ts)
}

// RMUtilizationFeasible runs the Liu & Layland sufficient bound test.
func RMUtilizationFeasible(ts model.TaskSet) (model.FeasibilityResult, error) {
	return UtilizationBoundAnalyzer{}.Analyze(ts)
}

// DynamicPriorityUtilizationFeasible runs the EDF/LLF utilization test.
func DynamicPriorityUtilizationFeasible(ts model.TaskSet) (model.FeasibilityResult, error) {
	return DynamicPriorityBoundAnalyzer{}.Analyze(ts)
}

// utilization sums per-task processor demand fractions.
func utilization(ts model.TaskSet) float64 {
	us := make([]float64, len(ts))
	for i, t := range ts {
		us[i] = t.Utilization()
	}
	return floats.Sum(us)
}
