package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedlab/rtfeas/core/model"
)

func mustTaskSet(t *testing.T, tasks []model.Task) model.TaskSet {
	t.Helper()
	ts, err := model.NewTaskSet(tasks)
	if err != nil {
		t.Fatalf("task set: %v", err)
	}
	return ts
}

// Classic high-utilization example: U ~ 99.67%. Demand by t=13 is 14
// units, so the set fails every fixed-priority test yet stays EDF/LLF
// feasible.
func referenceSet(t *testing.T) model.TaskSet {
	return mustTaskSet(t, []model.Task{
		{Period: 2, WCET: 1},
		{Period: 5, WCET: 1},
		{Period: 7, WCET: 1},
		{Period: 13, WCET: 2},
	})
}

func overloadedSet(t *testing.T) model.TaskSet {
	return mustTaskSet(t, []model.Task{
		{Period: 2, WCET: 1},
		{Period: 2, WCET: 2},
	})
}

func TestResponseTimeReferenceSet(t *testing.T) {
	res, err := ResponseTimeFeasible(referenceSet(t))
	require.NoError(t, err)
	assert.Equal(t, model.Infeasible, res.Verdict)
	assert.InDelta(t, 0.9967, res.Utilization, 1e-4)
	// Hand-computed: R1..R3 reach fixed points, task 4 iterates
	// 5,7,9,11,13,14 and overshoots its deadline of 13.
	assert.Equal(t, []float64{1, 2, 4, 14}, res.ResponseTimes)
}

func TestResponseTimeOverloadedSet(t *testing.T) {
	res, err := ResponseTimeFeasible(overloadedSet(t))
	require.NoError(t, err)
	assert.Equal(t, model.Infeasible, res.Verdict)
	// Seed C1+C2 = 3 already exceeds D2 = 2.
	assert.Equal(t, 3.0, res.ResponseTimes[1])
}

func TestResponseTimeSingleFullyLoadedTask(t *testing.T) {
	res, err := ResponseTimeFeasible(mustTaskSet(t, []model.Task{{Period: 4, WCET: 4}}))
	require.NoError(t, err)
	assert.Equal(t, model.Feasible, res.Verdict)
	assert.Equal(t, []float64{4}, res.ResponseTimes)
	assert.InDelta(t, 1.0, res.Utilization, 1e-12)
}

func TestResponseTimeExplicitDeadline(t *testing.T) {
	// Deadline shorter than the period tightens the test.
	ts := mustTaskSet(t, []model.Task{
		{Period: 10, WCET: 4},
		{Period: 20, WCET: 5, Deadline: 8},
	})
	res, err := ResponseTimeFeasible(ts)
	require.NoError(t, err)
	// R2 iterates 9 > D2 = 8 even though R2 <= T2 would hold.
	assert.Equal(t, model.Infeasible, res.Verdict)
}

func TestResponseTimeInvalidSet(t *testing.T) {
	_, err := ResponseTimeFeasible(model.TaskSet{})
	if !errors.Is(err, model.ErrEmptyTaskSet) {
		t.Fatalf("expected ErrEmptyTaskSet, got %v", err)
	}
}

func TestResponseTimeIdempotent(t *testing.T) {
	ts := referenceSet(t)
	first, err := ResponseTimeFeasible(ts)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ResponseTimeFeasible(ts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCeilDivExactness(t *testing.T) {
	// Integral operands must never pick up float slack.
	assert.Equal(t, 2.0, ceilDiv(6, 3))
	assert.Equal(t, 3.0, ceilDiv(7, 3))
	assert.Equal(t, 1.0, ceilDiv(1, 13))
	// Non-integral exact multiple must not round up an extra unit.
	assert.Equal(t, 3.0, ceilDiv(1.5, 0.5))
	assert.Equal(t, 4.0, ceilDiv(1.6, 0.5))
	assert.Equal(t, 2.0, floorDiv(13, 5))
	assert.Equal(t, 3.0, floorDiv(1.5, 0.5))
}
