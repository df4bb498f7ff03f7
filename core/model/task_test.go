package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskSetImplicitDeadline(t *testing.T) {
	ts, err := NewTaskSet([]Task{{Period: 10, WCET: 2}, {Period: 20, WCET: 5, Deadline: 15}})
	if err != nil {
		t.Fatalf("new task set: %v", err)
	}
	if ts[0].Deadline != 10 {
		t.Fatalf("expected implicit deadline 10, got %g", ts[0].Deadline)
	}
	if ts.ImplicitDeadlines() {
		t.Fatalf("set with deadline 15 < period 20 reported implicit")
	}
}

func TestNewTaskSetDoesNotRetainInput(t *testing.T) {
	in := []Task{{Period: 10, WCET: 2}}
	ts, err := NewTaskSet(in)
	if err != nil {
		t.Fatalf("new task set: %v", err)
	}
	in[0].Period = 1
	if ts[0].Period != 10 {
		t.Fatalf("task set aliases caller slice")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name  string
		tasks []Task
		want  error
	}{
		{"empty", nil, ErrEmptyTaskSet},
		{"zero period", []Task{{Period: 0, WCET: 1}}, ErrNonPositiveParam},
		{"negative wcet", []Task{{Period: 5, WCET: -1}}, ErrNonPositiveParam},
		{"wcet over deadline", []Task{{Period: 5, WCET: 4, Deadline: 3}}, ErrDeadlineBounds},
		{"deadline over period", []Task{{Period: 5, WCET: 1, Deadline: 6}}, ErrDeadlineBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTaskSet(tc.tasks)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTaskUtilization(t *testing.T) {
	tsk := Task{Period: 4, WCET: 1}
	assert.InDelta(t, 0.25, tsk.Utilization(), 1e-12)
}

func TestVerdictJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Feasible)
	assert.NoError(t, err)
	assert.Equal(t, `"FEASIBLE"`, string(b))

	var v Verdict
	assert.NoError(t, json.Unmarshal([]byte(`"INFEASIBLE"`), &v))
	assert.Equal(t, Infeasible, v)
	assert.Error(t, json.Unmarshal([]byte(`"MAYBE"`), &v))
}
