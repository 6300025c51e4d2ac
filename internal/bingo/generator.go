package bingo

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
	"github.com/rocketscienceinc/bingo-backend/internal/config"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

// MaxGridSize bounds the card dimension whatever the pool width.
const MaxGridSize = 100

// Generator deals new cards from a fixed pool of numbers.
type Generator struct {
	pool    config.Pool
	maxSize int
	rnd     *rand.Rand
}

// NewGenerator - validates the pool and returns a generator drawing from it.
// A nil rnd uses the shared random source.
func NewGenerator(pool config.Pool, rnd *rand.Rand) (*Generator, error) {
	if pool.Min < 1 || pool.Max < pool.Min {
		return nil, fmt.Errorf("%w: [%d, %d]", apperror.ErrInvalidPool, pool.Min, pool.Max)
	}

	if rnd == nil {
		rnd = rand.New(globalSource{}) //nolint: gosec // game cards, not secrets
	}

	return &Generator{
		pool:    pool,
		maxSize: maxSize(pool.Size()),
		rnd:     rnd,
	}, nil
}

// MaxSize - the largest dimension whose card fits in the pool, at most MaxGridSize.
func (that *Generator) MaxSize() int {
	return that.maxSize
}

// Generate - deals a size x size card of distinct numbers, all unmarked.
func (that *Generator) Generate(size int) (*entity.Grid, error) {
	if size < 1 || size > that.maxSize {
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", apperror.ErrInvalidDimension, size, that.maxSize)
	}

	return entity.NewGrid(size, that.draw(size*size)), nil
}

// draw - takes count distinct values from the pool with a sparse Fisher-Yates shuffle.
// Only swapped positions are kept, so the cost does not depend on the pool width.
func (that *Generator) draw(count int) []int {
	poolSize := that.pool.Size()
	swapped := make(map[int]int, count)

	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	values := make([]int, count)
	for i := 0; i < count; i++ {
		j := i + that.rnd.IntN(poolSize-i)
		values[i] = that.pool.Min + at(j)
		swapped[j] = at(i)
	}

	return values
}

// maxSize - integer square root of poolSize, capped at MaxGridSize.
func maxSize(poolSize int) int {
	size := int(math.Sqrt(float64(poolSize)))
	for size > 0 && size > poolSize/size {
		size--
	}
	for size+1 <= poolSize/(size+1) {
		size++
	}

	return min(size, MaxGridSize)
}

// globalSource - adapts the package-level generator to rand.Source.
type globalSource struct{}

func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}
