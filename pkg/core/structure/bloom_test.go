package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloomFilterNoFalseNegatives(t *testing.T) {
	bf := NewBloomFilter[int64](1000, 0.01)
	for k := int64(0); k < 1000; k += 3 {
		bf.Add(k)
	}
	for k := int64(0); k < 1000; k += 3 {
		assert.True(t, bf.Contains(k), "key %d", k)
	}
	assert.EqualValues(t, 334, bf.Stats()["bloom_count"])

	bf.Reset()
	assert.False(t, bf.Contains(3))
	assert.EqualValues(t, 0, bf.Stats()["bloom_count"])
}

func TestBloomFilterNegativeZero(t *testing.T) {
	bf := NewBloomFilter[float64](16, 0.01)
	negZero := 0.0
	negZero = -negZero
	bf.Add(negZero)
	assert.True(t, bf.Contains(0))
}

func TestBloomFilterStrings(t *testing.T) {
	bf := NewBloomFilter[string](64, 0.001)
	bf.Add("alpha")
	assert.True(t, bf.Contains("alpha"))
	assert.False(t, bf.Contains("omega"))
}
