package build

import "sync"

// cell is an explicit compute-once guard. The first caller runs the
// computation; concurrent callers block on the same sync.Once and all
// observe the identical value and error.
type cell[T any] struct {
	once sync.Once
	val  T
	err  error
}

// Do returns the cached result, computing it on first use.
func (c *cell[T]) Do(fn func() (T, error)) (T, error) {
	c.once.Do(func() {
		c.val, c.err = fn()
	})
	return c.val, c.err
}
