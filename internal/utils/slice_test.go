package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	keys := Keys(map[int]string{2: "b", 0: "a", 1: "c"})
	sort.Ints(keys)
	assert.Equal(t, []int{0, 1, 2}, keys)
	assert.Empty(t, Keys(map[string]int{}))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Flatten([][]int{{0, 1}, {2}, {3}}))
	assert.Empty(t, Flatten([][]int{}))
	assert.Empty(t, Flatten([][]int{{}, {}}))
}
