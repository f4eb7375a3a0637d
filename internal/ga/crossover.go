package ga

import "fmt"

// UniformCrossover performs uniform crossover between two parents.
// Each position draws one bit; the second child always takes the other parent's gene.
func UniformCrossover[G any](p1, p2 []G, rng Rand) ([]G, []G, error) {
	if err := checkParents(p1, p2, 0); err != nil {
		return nil, nil, err
	}

	size := len(p1)
	c1 := make([]G, size)
	c2 := make([]G, size)

	for i := 0; i < size; i++ {
		if rng.Intn(2) == 0 {
			c1[i] = p1[i]
			c2[i] = p2[i]
		} else {
			c1[i] = p2[i]
			c2[i] = p1[i]
		}
	}

	return c1, c2, nil
}

// SinglePointCrossover picks a point in [1, len-1] and returns p1[:point] followed by p2[point:]
func SinglePointCrossover[G any](p1, p2 []G, rng Rand) ([]G, error) {
	if err := checkParents(p1, p2, 2); err != nil {
		return nil, err
	}
	point := randRange(rng, 1, len(p1)-1)
	return SinglePointCrossoverAt(p1, p2, point)
}

// SinglePointCrossoverAt performs single-point crossover at a fixed point
func SinglePointCrossoverAt[G any](p1, p2 []G, point int) ([]G, error) {
	if err := checkParents(p1, p2, 2); err != nil {
		return nil, err
	}
	size := len(p1)
	if point < 1 || point > size-1 {
		return nil, fmt.Errorf("%w: point %d outside [1, %d]", ErrInvalidPoint, point, size-1)
	}

	child := make([]G, size)
	copy(child[:point], p1[:point])
	copy(child[point:], p2[point:])

	return child, nil
}

// TwoPointCrossover picks point1 in [1, len-2] and point2 in [point1+1, len-1],
// then swaps the middle segment between the parents.
func TwoPointCrossover[G any](p1, p2 []G, rng Rand) ([]G, []G, error) {
	if err := checkParents(p1, p2, 3); err != nil {
		return nil, nil, err
	}
	size := len(p1)
	point1 := randRange(rng, 1, size-2)
	point2 := randRange(rng, point1+1, size-1)
	return TwoPointCrossoverAt(p1, p2, point1, point2)
}

// TwoPointCrossoverAt performs two-point crossover at fixed points
func TwoPointCrossoverAt[G any](p1, p2 []G, point1, point2 int) ([]G, []G, error) {
	if err := checkParents(p1, p2, 3); err != nil {
		return nil, nil, err
	}
	size := len(p1)
	if point1 < 1 || point2 <= point1 || point2 > size-1 {
		return nil, nil, fmt.Errorf("%w: points (%d, %d) need 1 <= p1 < p2 <= %d",
			ErrInvalidPoint, point1, point2, size-1)
	}

	c1 := make([]G, size)
	c2 := make([]G, size)

	copy(c1[:point1], p1[:point1])
	copy(c1[point1:point2], p2[point1:point2])
	copy(c1[point2:], p1[point2:])

	copy(c2[:point1], p2[:point1])
	copy(c2[point1:point2], p1[point1:point2])
	copy(c2[point2:], p2[point2:])

	return c1, c2, nil
}

func checkParents[G any](p1, p2 []G, minLen int) error {
	if len(p1) != len(p2) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(p1), len(p2))
	}
	if len(p1) < minLen {
		return fmt.Errorf("%w: length %d, need at least %d", ErrTooShort, len(p1), minLen)
	}
	return nil
}
