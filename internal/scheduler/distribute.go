package scheduler

import "time"

// DistributeProportional splits total across weights in proportion to
// each weight, with two guarantees when sum(weights) >= total:
//
//   - conservation: the shares sum to exactly total
//   - capping: no share exceeds its weight
//
// The math runs on whole milliseconds so the cross product cannot
// overflow for day-scale durations. Integer division floors each share;
// the rounding remainder goes to the earliest entries that still have
// capacity, keeping the split deterministic. When sum(weights) < total
// every share saturates at its weight and the shortfall is the caller's
// to report.
func DistributeProportional(total time.Duration, weights []time.Duration) []time.Duration {
	shares := make([]time.Duration, len(weights))
	if total <= 0 {
		return shares
	}

	totalMs := total.Milliseconds()
	weightMs := make([]int64, len(weights))
	var totalWeight int64
	for i, w := range weights {
		if w > 0 {
			weightMs[i] = w.Milliseconds()
			totalWeight += weightMs[i]
		}
	}
	if totalWeight == 0 {
		return shares
	}

	if totalWeight <= totalMs {
		for i, ms := range weightMs {
			shares[i] = time.Duration(ms) * time.Millisecond
		}
		return shares
	}

	var allocated int64
	shareMs := make([]int64, len(weights))
	for i, ms := range weightMs {
		if ms == 0 {
			continue
		}
		shareMs[i] = totalMs * ms / totalWeight
		allocated += shareMs[i]
	}

	remainder := totalMs - allocated
	for i := 0; i < len(weights) && remainder > 0; i++ {
		capacity := weightMs[i] - shareMs[i]
		if capacity <= 0 {
			continue
		}
		add := capacity
		if remainder < add {
			add = remainder
		}
		shareMs[i] += add
		remainder -= add
	}

	for i, ms := range shareMs {
		shares[i] = time.Duration(ms) * time.Millisecond
	}
	return shares
}
