package structure

import (
	"fmt"

	"github.com/bits-and-blooms/bloom/v3"

	"ordmap/pkg/common"
)

// BloomFilter answers "definitely absent" for keys. It only grows; Reset is
// the way to forget keys.
type BloomFilter[T common.Ordered] struct {
	filter *bloom.BloomFilter
	count  uint
	buf    []byte
}

func NewBloomFilter[T common.Ordered](n uint, p float64) *BloomFilter[T] {
	return &BloomFilter[T]{
		filter: bloom.NewWithEstimates(n, p),
	}
}

func (bf *BloomFilter[T]) encode(key T) []byte {
	// Folds -0 into 0 so equal float keys hash alike.
	var zero T
	if key == zero {
		key = zero
	}
	bf.buf = fmt.Appendf(bf.buf[:0], "%v", key)
	return bf.buf
}

func (bf *BloomFilter[T]) Add(key T) {
	bf.filter.Add(bf.encode(key))
	bf.count++
}

func (bf *BloomFilter[T]) Contains(key T) bool {
	return bf.filter.Test(bf.encode(key))
}

func (bf *BloomFilter[T]) Reset() {
	bf.filter.ClearAll()
	bf.count = 0
}

func (bf *BloomFilter[T]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"bloom_bits_size": bf.filter.Cap(),
		"bloom_hashes":    bf.filter.K(),
		"bloom_count":     bf.count,
	}
}
