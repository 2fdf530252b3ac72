package wheel

import (
	"github.com/stretchr/testify/assert"
	"math"
	"math/rand"
	"testing"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(1122))
}

func TestPick_Empty(t *testing.T) {
	assert.Equal(t, -1, Pick(newRand(), nil))
	assert.Equal(t, -1, Pick(newRand(), []int64{}))
}

func TestPick_Single(t *testing.T) {
	r := newRand()
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, Pick(r, []int64{7}))
	}
}

func TestPick_Zero_Total_Weight_Uniform(t *testing.T) {
	r := newRand()

	counts := make([]int, 3)
	const n = 30000
	for i := 0; i < n; i++ {
		idx := Pick(r, []int64{0, 0, 0})
		counts[idx]++
	}

	for _, c := range counts {
		assert.InDelta(t, float64(n)/3, float64(c), float64(n)*0.02)
	}
}

func TestPick_Negative_Weight_Never_Chosen(t *testing.T) {
	r := newRand()
	for i := 0; i < 1000; i++ {
		idx := Pick(r, []int64{-5, 3, 0})
		assert.Equal(t, 1, idx)
	}
}

func TestPick_Fairness(t *testing.T) {
	r := newRand()

	weights := []int64{1, 2, 3, 4}
	var total int64
	for _, w := range weights {
		total += w
	}

	counts := make([]int, len(weights))
	const n = 100000
	for i := 0; i < n; i++ {
		counts[Pick(r, weights)]++
	}

	for i, w := range weights {
		expected := float64(n) * float64(w) / float64(total)
		// 4 standard deviations of the binomial
		p := float64(w) / float64(total)
		sigma := math.Sqrt(float64(n) * p * (1 - p))
		assert.InDelta(t, expected, float64(counts[i]), 4*sigma)
	}
}

func TestPick_Two_Entries_Roughly_Even(t *testing.T) {
	r := newRand()

	counts := make([]int, 2)
	const n = 1000
	for i := 0; i < n; i++ {
		counts[Pick(r, []int64{1, 1})]++
	}

	assert.InDelta(t, n/2, counts[0], float64(n)*0.1)
	assert.InDelta(t, n/2, counts[1], float64(n)*0.1)
}
