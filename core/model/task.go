package model

import (
	"errors"
	"fmt"
)

// Task describes one periodic activity of the analyzed system. All three
// parameters share the same (arbitrary) time unit. A zero Deadline is
// normalized to the period when the task enters a TaskSet.
type Task struct {
	Name     string  `json:"name,omitempty"`
	Period   float64 `json:"period"`
	WCET     float64 `json:"wcet"`
	Deadline float64 `json:"deadline,omitempty"`
}

// ImplicitDeadline reports whether the task must finish exactly by its next
// release.
func (t Task) ImplicitDeadline() bool { return t.Deadline == t.Period }

// Utilization returns the fraction of the processor the task demands.
func (t Task) Utilization() float64 { return t.WCET / t.Period }

// TaskSet is an ordered set of tasks. Index order encodes fixed priority:
// index 0 is the highest priority. Callers using the rate-monotonic
// assignment must order tasks by ascending period before analysis; the
// analyzers never reorder the set.
type TaskSet []Task

var (
	// ErrEmptyTaskSet is returned when a task set holds no tasks.
	ErrEmptyTaskSet = errors.New("task set is empty")
	// ErrNonPositiveParam is returned when a period, WCET or deadline is
	// zero or negative.
	ErrNonPositiveParam = errors.New("task parameter must be positive")
	// ErrDeadlineBounds is returned when wcet <= deadline <= period does
	// not hold for a task.
	ErrDeadlineBounds = errors.New("task must satisfy wcet <= deadline <= period")
)

// NewTaskSet builds a validated TaskSet from the given tasks. Tasks with a
// zero deadline get their period as implicit deadline. The input slice is
// not retained.
func NewTaskSet(tasks []Task) (TaskSet, error) {
	ts := make(TaskSet, len(tasks))
	copy(ts, tasks)
	for i := range ts {
		if ts[i].Deadline == 0 {
			ts[i].Deadline = ts[i].Period
		}
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return ts, nil
}

// Validate checks the structural task-set invariants. A violation is an
// analysis error; it is never reported as an infeasible verdict.
func (ts TaskSet) Validate() error {
	if len(ts) == 0 {
		return ErrEmptyTaskSet
	}
	for i, t := range ts {
		if t.Period <= 0 || t.WCET <= 0 || t.Deadline <= 0 {
			return fmt.Errorf("task %d (%s): %w", i, t.label(), ErrNonPositiveParam)
		}
		if t.WCET > t.Deadline || t.Deadline > t.Period {
			return fmt.Errorf("task %d (%s): %w", i, t.label(), ErrDeadlineBounds)
		}
	}
	return nil
}

// ImplicitDeadlines reports whether every task has deadline == period.
func (ts TaskSet) ImplicitDeadlines() bool {
	for _, t := range ts {
		if !t.ImplicitDeadline() {
			return false
		}
	}
	return true
}

func (t Task) label() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("T=%g C=%g", t.Period, t.WCET)
}
