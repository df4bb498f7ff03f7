package config

import (
	"sort"

	"github.com/schedlab/rtfeas/core/model"
)

// TaskConfig declares one periodic task of the workload under analysis.
// A zero deadline means the deadline equals the period.
type TaskConfig struct {
	Name     string  `json:"name"`
	Period   float64 `json:"period"`
	WCET     float64 `json:"wcet"`
	Deadline float64 `json:"deadline"`
}

// WorkloadConfig declares the task set to analyze. Task order encodes
// priority unless RateMonotonic is set, in which case tasks are sorted by
// ascending period before analysis. The analyzers themselves never sort.
type WorkloadConfig struct {
	Tasks         []TaskConfig `json:"tasks"`
	RateMonotonic bool         `json:"rate_monotonic"`
}

// TaskSet builds the validated model task set from the declaration.
func (w WorkloadConfig) TaskSet() (model.TaskSet, error) {
	tasks := make([]model.Task, len(w.Tasks))
	for i, tc := range w.Tasks {
		tasks[i] = model.Task{Name: tc.Name, Period: tc.Period, WCET: tc.WCET, Deadline: tc.Deadline}
	}
	if w.RateMonotonic {
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Period < tasks[j].Period })
	}
	return model.NewTaskSet(tasks)
}

// Validate checks that the declared workload builds a valid task set.
func (w WorkloadConfig) Validate() error {
	if len(w.Tasks) == 0 {
		// An empty workload section is allowed; serve mode receives task
		// sets over MQTT instead.
		return nil
	}
	_, err := w.TaskSet()
	return err
}
