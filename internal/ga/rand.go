package ga

// Rand is the random source every operator draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// randRange returns a uniform integer in the closed range [lo, hi]
func randRange(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
