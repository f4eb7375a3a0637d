package ga

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Operator names accepted by Crossover and Mutation
const (
	OpUniform     = "uniform"
	OpSinglePoint = "single_point"
	OpTwoPoint    = "two_point"
	OpBitFlip     = "bit_flip"
	OpCreep       = "creep"
)

// CrossoverFunc recombines two parents. Operators producing a single child return nil as the second.
type CrossoverFunc[G any] func(p1, p2 []G, rng Rand) ([]G, []G, error)

// MutationFunc perturbs one individual
type MutationFunc[G constraints.Integer] func(genome []G, rng Rand) []G

// MutationParams carries the tunables for every mutation operator
type MutationParams struct {
	BitFlipRate float64
	Creep       CreepOptions
}

// DefaultMutationParams returns the default rates for all mutation operators
func DefaultMutationParams() MutationParams {
	return MutationParams{
		BitFlipRate: DefaultBitFlipRate,
		Creep:       DefaultCreepOptions(),
	}
}

// Crossover resolves a crossover operator by name
func Crossover[G any](name string) (CrossoverFunc[G], error) {
	switch name {
	case OpUniform:
		return UniformCrossover[G], nil
	case OpSinglePoint:
		return func(p1, p2 []G, rng Rand) ([]G, []G, error) {
			child, err := SinglePointCrossover(p1, p2, rng)
			return child, nil, err
		}, nil
	case OpTwoPoint:
		return TwoPointCrossover[G], nil
	}
	return nil, fmt.Errorf("%w: crossover %q", ErrUnknownOperator, name)
}

// Mutation resolves a mutation operator by name, binding its parameters
func Mutation[G constraints.Integer](name string, params MutationParams) (MutationFunc[G], error) {
	switch name {
	case OpBitFlip:
		return func(genome []G, rng Rand) []G {
			return BitFlipMutation(genome, params.BitFlipRate, rng)
		}, nil
	case OpCreep:
		return func(genome []G, rng Rand) []G {
			return CreepMutationWith(genome, params.Creep, rng)
		}, nil
	}
	return nil, fmt.Errorf("%w: mutation %q", ErrUnknownOperator, name)
}

// Event describes one operator application
type Event struct {
	Operator  string
	ParentLen int
	ChildLens []int
	Changed   int // positions, over the shorter of input and output, whose gene differs
	Dropped   int // genes missing from the output
	Err       error
}

// Observer receives an Event for every observed operator call
type Observer interface {
	Observe(Event)
}

// ObserveCrossover wraps fn so that each call is reported to obs.
// Changed is measured on the first child against the first parent.
func ObserveCrossover[G comparable](name string, fn CrossoverFunc[G], obs Observer) CrossoverFunc[G] {
	return func(p1, p2 []G, rng Rand) ([]G, []G, error) {
		c1, c2, err := fn(p1, p2, rng)

		ev := Event{Operator: name, ParentLen: len(p1), Err: err}
		if err == nil {
			ev.ChildLens = append(ev.ChildLens, len(c1))
			if c2 != nil {
				ev.ChildLens = append(ev.ChildLens, len(c2))
			}
			ev.Changed = countChanged(p1, c1)
		}
		obs.Observe(ev)

		return c1, c2, err
	}
}

// ObserveMutation wraps fn so that each call is reported to obs
func ObserveMutation[G constraints.Integer](name string, fn MutationFunc[G], obs Observer) MutationFunc[G] {
	return func(genome []G, rng Rand) []G {
		before := slices.Clone(genome)
		out := fn(genome, rng)

		obs.Observe(Event{
			Operator:  name,
			ParentLen: len(before),
			ChildLens: []int{len(out)},
			Changed:   countChanged(before, out),
			Dropped:   len(before) - len(out),
		})
		return out
	}
}

func countChanged[G comparable](a, b []G) int {
	n := min(len(a), len(b))
	changed := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			changed++
		}
	}
	return changed
}
