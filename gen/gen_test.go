package gen

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearlySortedWithoutSwapsIsIdentity(t *testing.T) {
	g := New(1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, g.NearlySorted(10, 0))
}

func TestNearlySortedIsPermutation(t *testing.T) {
	g := New(2)
	data := g.NearlySorted(1000, 10)

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}

	// 교환 10번이면 제자리를 벗어난 원소는 최대 20개
	var moved int
	for i, v := range data {
		if i != v {
			moved++
		}
	}
	assert.LessOrEqual(t, moved, 20)
}

func TestDescending(t *testing.T) {
	assert.Equal(t, []int{5, 4, 3, 2, 1}, Descending(5))
	assert.Empty(t, Descending(0))
}

func TestRandomRange(t *testing.T) {
	g := New(3)
	data, err := g.Random(5000, -5, 5)
	require.NoError(t, err)
	require.Len(t, data, 5000)
	for _, v := range data {
		assert.GreaterOrEqual(t, v, -5)
		assert.LessOrEqual(t, v, 5)
	}
	assert.Contains(t, data, -5)
	assert.Contains(t, data, 5)
}

func TestRandomRejectsInvertedRange(t *testing.T) {
	g := New(5)
	_, err := g.Random(10, 3, 2)
	assert.ErrorContains(t, err, "empty value range [3, 2]")

	data, err := g.Random(4, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7}, data)
}

func TestRandomFullIntRange(t *testing.T) {
	g := New(6)

	data, err := g.Random(1000, math.MinInt, math.MaxInt)
	require.NoError(t, err)
	require.Len(t, data, 1000)

	var negative, positive int
	for _, v := range data {
		if v < 0 {
			negative++
		} else {
			positive++
		}
	}
	assert.Positive(t, negative)
	assert.Positive(t, positive)

	data, err = g.Random(1000, math.MaxInt-1, math.MaxInt)
	require.NoError(t, err)
	for _, v := range data {
		assert.GreaterOrEqual(t, v, math.MaxInt-1)
	}
}

func TestSameSeedSameData(t *testing.T) {
	a, err := New(42).Generate(Random, 100)
	require.NoError(t, err)
	b, err := New(42).Generate(Random, 100)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate(t *testing.T) {
	g := New(4)

	for _, dist := range Distributions {
		data, err := g.Generate(dist, 0)
		require.NoError(t, err)
		assert.NotNil(t, data)
		assert.Empty(t, data)

		data, err = g.Generate(dist, 500)
		require.NoError(t, err)
		assert.Len(t, data, 500)
	}

	data, err := g.Generate(Reverse, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, data)

	_, err = g.Generate("Sawtooth", 10)
	assert.ErrorContains(t, err, `unknown distribution "Sawtooth"`)

	_, err = g.Generate(Random, -1)
	assert.Error(t, err)

	g.Min, g.Max = 10, 5
	_, err = g.Generate(Random, 1)
	assert.Error(t, err)
}

func TestParseDistribution(t *testing.T) {
	d, err := ParseDistribution("NearlySorted")
	require.NoError(t, err)
	assert.Equal(t, NearlySorted, d)

	_, err = ParseDistribution("nearlysorted")
	assert.Error(t, err)
}
