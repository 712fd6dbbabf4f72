package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/predicate"
)

func TestBetween(t *testing.T) {
	qty := predicate.Between(1, 10)
	assert.True(t, qty(1))
	assert.True(t, qty(10))
	assert.False(t, qty(0))
	assert.False(t, qty(11))

	price := predicate.Between(0.01, 999.99)
	assert.True(t, price(5.5))
	assert.False(t, price(0))
}

func TestPositive(t *testing.T) {
	assert.True(t, predicate.Positive(1))
	assert.True(t, predicate.Positive(0.1))
	assert.False(t, predicate.Positive(0))
	assert.False(t, predicate.Positive(int8(-3)))
}

func TestOneOf(t *testing.T) {
	status := predicate.OneOf("new", "paid", "shipped")
	assert.True(t, status("paid"))
	assert.False(t, status("lost"))
	assert.False(t, predicate.OneOf[string]()("new"))
}

func TestNoneOf(t *testing.T) {
	reserved := predicate.NoneOf("admin", "root")
	assert.True(t, reserved("alice"))
	assert.False(t, reserved("root"))
}

func TestUnique(t *testing.T) {
	assert.True(t, predicate.Unique([]string{"a", "b"}))
	assert.True(t, predicate.Unique([]int(nil)))
	assert.False(t, predicate.Unique([]int{1, 2, 1}))
}
