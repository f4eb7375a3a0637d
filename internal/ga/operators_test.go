package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventSink struct {
	events []Event
}

func (s *eventSink) Observe(ev Event) {
	s.events = append(s.events, ev)
}

func TestCrossover_ResolvesNames(t *testing.T) {
	p1 := []int{1, 1, 1, 1}
	p2 := []int{0, 0, 0, 0}

	for _, name := range []string{OpUniform, OpSinglePoint, OpTwoPoint} {
		fn, err := Crossover[int](name)
		require.NoError(t, err, name)

		c1, c2, err := fn(p1, p2, newRNG(3))
		require.NoError(t, err, name)
		assert.Len(t, c1, len(p1), name)
		if name == OpSinglePoint {
			assert.Nil(t, c2)
		} else {
			assert.Len(t, c2, len(p1), name)
		}
	}
}

func TestCrossover_UnknownName(t *testing.T) {
	_, err := Crossover[int]("three_point")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestMutation_ResolvesNames(t *testing.T) {
	params := DefaultMutationParams()
	params.BitFlipRate = 1

	flip, err := Mutation[int](OpBitFlip, params)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, flip([]int{0, 1}, newRNG(1)))

	params.Creep.Rate = 0
	creep, err := Mutation[int](OpCreep, params)
	require.NoError(t, err)
	assert.Empty(t, creep([]int{3, 4}, newRNG(1)))

	_, err = Mutation[int]("swap", params)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestObserveCrossover_ReportsEvents(t *testing.T) {
	sink := &eventSink{}
	fn, err := Crossover[int](OpSinglePoint)
	require.NoError(t, err)
	observed := ObserveCrossover(OpSinglePoint, fn, sink)

	rng := &scriptedRand{ints: []int{1}}
	child, _, err := observed([]int{1, 1, 1, 1}, []int{0, 0, 0, 0}, rng)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 0}, child)

	_, _, err = observed([]int{1}, []int{0}, rng)
	require.ErrorIs(t, err, ErrTooShort)

	require.Len(t, sink.events, 2)
	assert.Equal(t, Event{Operator: OpSinglePoint, ParentLen: 4, ChildLens: []int{4}, Changed: 2}, sink.events[0])
	assert.ErrorIs(t, sink.events[1].Err, ErrTooShort)
	assert.Empty(t, sink.events[1].ChildLens)
}

func TestObserveMutation_CountsChangesAndDrops(t *testing.T) {
	sink := &eventSink{}

	flip := ObserveMutation(OpBitFlip, func(g []int, rng Rand) []int {
		return BitFlipMutation(g, 1, rng)
	}, sink)
	flip([]int{0, 0, 1}, newRNG(1))

	creep := ObserveMutation(OpCreep, func(g []int, rng Rand) []int {
		return CreepMutation(g, 4, 0.3, rng)
	}, sink)
	creep([]int{5, 7, 2}, &scriptedRand{floats: []float64{0.1, 0.9, 0.2}, ints: []int{8, 0}})

	require.Len(t, sink.events, 2)
	assert.Equal(t, Event{Operator: OpBitFlip, ParentLen: 3, ChildLens: []int{3}, Changed: 3}, sink.events[0])
	// output [9, 8] against input [5, 7, 2]
	assert.Equal(t, Event{Operator: OpCreep, ParentLen: 3, ChildLens: []int{2}, Changed: 2, Dropped: 1}, sink.events[1])
}
