package fieldcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	inner *box
	name  string
}

func TestExtract(t *testing.T) {
	t.Run("returns present value", func(t *testing.T) {
		res := extract(&box{name: "a"}, func(b *box) string { return b.name })
		assert.True(t, res.present)
		assert.Equal(t, "a", res.value)
		assert.NoError(t, res.err)
	})

	t.Run("treats typed nil as absent", func(t *testing.T) {
		res := extract(&box{}, func(b *box) *box { return b.inner })
		assert.False(t, res.present)
		assert.NoError(t, res.err)
	})

	t.Run("converts nil dereference into absent", func(t *testing.T) {
		res := extract(&box{}, func(b *box) string { return b.inner.name })
		assert.False(t, res.present)
		assert.Empty(t, res.value)
		require.Error(t, res.err)
	})

	t.Run("keeps panic error value", func(t *testing.T) {
		boom := errors.New("boom")
		res := extract(1, func(int) int { panic(boom) })
		assert.False(t, res.present)
		assert.ErrorIs(t, res.err, boom)
	})

	t.Run("wraps non-error panic values", func(t *testing.T) {
		res := extract(1, func(int) int { panic("bad input") })
		require.Error(t, res.err)
		assert.Equal(t, "bad input", res.err.Error())
	})

	t.Run("nil extractor is absent", func(t *testing.T) {
		res := extract[int, string](1, nil)
		assert.False(t, res.present)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("passes through result", func(t *testing.T) {
		assert.True(t, evaluate(2, func(n int) bool { return n == 2 }).passed)
		assert.False(t, evaluate(3, func(n int) bool { return n == 2 }).passed)
	})

	t.Run("panic counts as failure", func(t *testing.T) {
		res := evaluate([]int{}, func(s []int) bool { return s[5] == 0 })
		assert.False(t, res.passed)
		require.Error(t, res.err)
	})
}

func TestIsNil(t *testing.T) {
	var p *box
	var m map[string]int
	var s []int
	var f func()
	var c chan int
	var e error

	assert.True(t, isNil(nil))
	assert.True(t, isNil(p))
	assert.True(t, isNil(m))
	assert.True(t, isNil(s))
	assert.True(t, isNil(f))
	assert.True(t, isNil(c))
	assert.True(t, isNil(e))

	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil([]int{}))
	assert.False(t, isNil(map[string]int{}))
	assert.False(t, isNil(box{}))
	assert.False(t, isNil(&box{}))
}
