package metric

// Mean computes the arithmetic mean of a signal over the given rows.
// Rows that don't carry the signal are skipped, not treated as zero.
// Returns false when no row carries the signal.
func Mean(rows []Aggregate, s Signal) (float64, bool) {
	var sum float64
	var n int
	for _, row := range rows {
		if v, ok := row.Value(s); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Means computes per-signal means over the rows for every tracked signal
// present in at least one row.
func Means(rows []Aggregate) map[Signal]float64 {
	out := make(map[Signal]float64, len(TrackedSignals))
	for _, s := range TrackedSignals {
		if m, ok := Mean(rows, s); ok {
			out[s] = m
		}
	}
	return out
}
