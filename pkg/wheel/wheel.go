package wheel

// Rand is the source of randomness for draws. *rand.Rand satisfies it.
type Rand interface {
	Int63n(n int64) int64
}

// Pick performs a cumulative-weight draw over weights and returns the chosen
// index. Negative weights count as zero. When the total weight is zero the
// pick is uniform over all entries, a non-empty pool always yields a result.
// Returns -1 for an empty slice.
func Pick(r Rand, weights []int64) int {
	if len(weights) == 0 {
		return -1
	}

	var total int64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	if total == 0 {
		return int(r.Int63n(int64(len(weights))))
	}

	drawn := r.Int63n(total)
	var acc int64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if drawn < acc {
			return i
		}
	}
	return len(weights) - 1
}
