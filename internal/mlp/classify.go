package mlp

// Classify returns the index of the largest activation.
//
// The scan starts from a seed maximum of 0.0 at index 0 and only moves on a
// strictly greater value, so ties resolve to the lowest index and a vector
// with no positive entry yields 0.
func Classify(activations []float64) int {
	highest := 0.0
	best := 0
	for i, v := range activations {
		if v > highest {
			highest = v
			best = i
		}
	}
	return best
}
