package dynarray

// Slack returns the number of allocated but logically dead slots,
// Cap() - Len().
func (a *Array[T]) Slack() int {
	return a.capacity - a.size
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 when nothing is allocated.
func (a *Array[T]) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.size) / float64(a.capacity)
}

// Metrics returns a snapshot of the array's storage statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:         a.size,
		Cap:         a.capacity,
		Slack:       a.Slack(),
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array's
// storage.
type ArrayMetrics struct {
	Len         int     // Live elements
	Cap         int     // Allocated slots
	Slack       int     // Allocated but unused slots
	Utilization float64 // Ratio of live elements to slots (0.0-1.0)
}
