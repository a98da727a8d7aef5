package policy

import "math/rand"

// bellNumbers returns B(0)..B(n) computed with the Bell triangle. float64
// is exact far beyond the node counts a test network reaches.
func bellNumbers(n int) []float64 {
	bells := make([]float64, n+1)
	bells[0] = 1
	row := []float64{1}
	for i := 1; i <= n; i++ {
		next := make([]float64, i+1)
		next[0] = row[len(row)-1]
		for j := 1; j <= i; j++ {
			next[j] = next[j-1] + row[j-1]
		}
		row = next
		bells[i] = row[0]
	}
	return bells
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}

// randomPartition draws a uniform random set-partition of [0, n): every
// partition is equally likely. The block containing the lowest remaining id
// gets size k with probability C(m-1, k-1) * B(m-k) / B(m), which is the
// exact marginal of the uniform distribution.
func randomPartition(rng *rand.Rand, n int) [][]int {
	if n <= 0 {
		return nil
	}
	bells := bellNumbers(n)

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var parts [][]int
	for len(remaining) > 0 {
		m := len(remaining)
		target := rng.Float64() * bells[m]
		size := m
		cumulative := 0.0
		for k := 1; k <= m; k++ {
			cumulative += binomial(m-1, k-1) * bells[m-k]
			if target < cumulative {
				size = k
				break
			}
		}

		// The block is the first remaining id plus size-1 companions drawn
		// uniformly from the rest.
		companions := rng.Perm(m - 1)[:size-1]
		block := []int{remaining[0]}
		taken := make(map[int]bool, size)
		for _, index := range companions {
			block = append(block, remaining[index+1])
			taken[index+1] = true
		}
		parts = append(parts, block)

		next := remaining[:0]
		for i := 1; i < m; i++ {
			if !taken[i] {
				next = append(next, remaining[i])
			}
		}
		remaining = next
	}
	return parts
}

// randomSubset draws a uniform random subset of [0, n): an independent fair
// coin per node.
func randomSubset(rng *rand.Rand, n int) []int {
	var subset []int
	for id := 0; id < n; id++ {
		if rng.Intn(2) == 0 {
			subset = append(subset, id)
		}
	}
	return subset
}
