package util

// MaxInt returns the largest of values or 0 when there are none.
func MaxInt(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	maxValue := values[0]
	for _, val := range values[1:] {
		if val > maxValue {
			maxValue = val
		}
	}
	return maxValue
}
