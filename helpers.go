package shiftoverlap

type minuteTypes interface {
	int | int64
}

func max[T minuteTypes](a, b T) T {
	if a > b {
		return a
	}

	return b
}

func min[T minuteTypes](a, b T) T {
	if a < b {
		return a
	}

	return b
}

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}
