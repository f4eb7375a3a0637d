package ga

import (
	"golang.org/x/exp/constraints"
)

const (
	DefaultBitFlipRate = 0.1
	DefaultCreepStep   = 4
	DefaultCreepRate   = 0.3
	DefaultCreepMod    = 10
	DefaultCreepMin    = 0
	DefaultCreepMax    = 399
)

// BitFlipMutation toggles binary genes in-place and returns the same slice.
// Each gene flips to (g+1) mod 2 with probability rate, so non-binary genes collapse to {0,1}.
func BitFlipMutation[G constraints.Integer](genome []G, rate float64, rng Rand) []G {
	for i := range genome {
		if rng.Float64() < rate {
			genome[i] = floorMod(genome[i]+1, 2)
		}
	}
	return genome
}

// CreepOptions controls creep mutation
type CreepOptions struct {
	Step    int     // offsets are drawn from [-Step, Step]
	Rate    float64 // per-gene mutation probability
	Modulus int     // candidate wraps into [0, Modulus); <= 0 disables wrapping
	Min     int
	Max     int

	// PreserveLength keeps genes that miss the rate check. When false those
	// genes are dropped from the output, matching the legacy operator.
	PreserveLength bool
}

// DefaultCreepOptions returns the legacy creep parameters
func DefaultCreepOptions() CreepOptions {
	return CreepOptions{
		Step:    DefaultCreepStep,
		Rate:    DefaultCreepRate,
		Modulus: DefaultCreepMod,
		Min:     DefaultCreepMin,
		Max:     DefaultCreepMax,
	}
}

// CreepMutation applies legacy creep mutation and returns a new slice.
// Only genes selected for mutation appear in the output, so it is usually shorter than genome.
func CreepMutation[G constraints.Integer](genome []G, step int, rate float64, rng Rand) []G {
	opts := DefaultCreepOptions()
	opts.Step = step
	opts.Rate = rate
	return CreepMutationWith(genome, opts, rng)
}

// CreepMutationWith applies creep mutation with explicit options and returns a new slice.
// A candidate outside [Min, Max] is replaced by the original gene.
func CreepMutationWith[G constraints.Integer](genome []G, opts CreepOptions, rng Rand) []G {
	step := opts.Step
	if step < 0 {
		step = -step
	}

	out := make([]G, 0, len(genome))
	for _, g := range genome {
		if rng.Float64() >= opts.Rate {
			if opts.PreserveLength {
				out = append(out, g)
			}
			continue
		}

		candidate := int(g) + randRange(rng, -step, step)
		if opts.Modulus > 0 {
			candidate = floorMod(candidate, opts.Modulus)
		}
		if candidate >= opts.Min && candidate <= opts.Max {
			out = append(out, G(candidate))
		} else {
			out = append(out, g)
		}
	}
	return out
}

// floorMod returns v mod m with the sign of m
func floorMod[T constraints.Integer](v, m T) T {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
