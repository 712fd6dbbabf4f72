package predicate_test

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/predicate"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@mail.example.org",
		"John Doe <john@example.com>",
	}
	for _, s := range valid {
		assert.True(t, predicate.Email(s), s)
	}

	invalid := []string{
		"",
		"   ",
		"plainaddress",
		"user@localhost",
		"user@.example.com",
		"user@example.com.",
		"user@example..com",
		"@example.com",
	}
	for _, s := range invalid {
		assert.False(t, predicate.Email(s), s)
	}
}

func TestURL(t *testing.T) {
	assert.True(t, predicate.URL("https://example.com/path?q=1"))
	assert.True(t, predicate.URL("ftp://files.example.com"))

	assert.False(t, predicate.URL(""))
	assert.False(t, predicate.URL("example.com"))
	assert.False(t, predicate.URL("/relative/path"))
	assert.False(t, predicate.URL("http://"))
}

func TestUUID(t *testing.T) {
	t.Run("accepts canonical form", func(t *testing.T) {
		assert.True(t, predicate.UUID(uuid.NewString()))
		assert.True(t, predicate.UUID(uuid.Nil.String()))
	})

	t.Run("rejects other forms", func(t *testing.T) {
		assert.False(t, predicate.UUID(""))
		assert.False(t, predicate.UUID("550e8400e29b41d4a716446655440000"))
		assert.False(t, predicate.UUID("urn:uuid:550e8400-e29b-41d4-a716-446655440000"))
		assert.False(t, predicate.UUID("550e8400-e29b-41d4-a716-44665544000g"))
	})

	t.Run("non-nil rejects the nil UUID", func(t *testing.T) {
		assert.False(t, predicate.NonNilUUID(uuid.Nil.String()))
		assert.True(t, predicate.NonNilUUID("550e8400-e29b-41d4-a716-446655440000"))
		assert.False(t, predicate.NonNilUUID("nope"))
	})
}

func TestPhone(t *testing.T) {
	assert.True(t, predicate.Phone("+14155552671"))
	assert.True(t, predicate.Phone("+1 (415) 555-2671"))
	assert.False(t, predicate.Phone(""))
	assert.False(t, predicate.Phone("+0123"))
	assert.False(t, predicate.Phone("phone"))
}

func TestAlphanumeric(t *testing.T) {
	assert.True(t, predicate.Alphanumeric("abc123"))
	assert.False(t, predicate.Alphanumeric(""))
	assert.False(t, predicate.Alphanumeric("abc-123"))
}

func TestMatches(t *testing.T) {
	sku := predicate.Matches(regexp.MustCompile(`^SKU-\d{4}$`))
	assert.True(t, sku("SKU-0042"))
	assert.False(t, sku("SKU-42"))
	assert.False(t, predicate.Matches(nil)("anything"))
}
