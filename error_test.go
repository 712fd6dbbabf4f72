package fieldcheck_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck"
)

func TestError_Error(t *testing.T) {
	t.Run("returns default message when empty", func(t *testing.T) {
		assert.Equal(t, "validation failed", fieldcheck.NewError(nil).Error())
	})

	t.Run("lists every message sorted by path", func(t *testing.T) {
		err := fieldcheck.NewError(fieldcheck.Violations{
			"name":    {"must not be EMPTY"},
			"address": {"must not be NULL", "is not allowed"},
		})
		assert.Equal(t,
			"validation failed: address must not be NULL; address is not allowed; name must not be EMPTY",
			err.Error())
	})
}

func TestError_Accessors(t *testing.T) {
	err := fieldcheck.NewError(fieldcheck.Violations{
		"b": {"one", "two"},
		"a": {"three"},
	})

	assert.True(t, err.Has("a"))
	assert.False(t, err.Has("c"))
	assert.Equal(t, []string{"one", "two"}, err.Get("b"))
	assert.Empty(t, err.Get("c"))
	assert.Equal(t, []string{"a", "b"}, err.Fields())

	got := err.Violations()
	got["a"][0] = "changed"
	assert.Equal(t, []string{"three"}, err.Get("a"))
}

func TestAsError(t *testing.T) {
	t.Run("finds wrapped error", func(t *testing.T) {
		inner := fieldcheck.NewError(fieldcheck.Violations{"x": {"bad"}})
		wrapped := fmt.Errorf("create order: %w", inner)

		verr, ok := fieldcheck.AsError(wrapped)
		require.True(t, ok)
		assert.Same(t, inner, verr)
		assert.True(t, fieldcheck.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, fieldcheck.ErrValidationFailed)
	})

	t.Run("rejects other errors", func(t *testing.T) {
		_, ok := fieldcheck.AsError(errors.New("plain"))
		assert.False(t, ok)
		assert.False(t, fieldcheck.IsValidationError(nil))
	})
}

func TestError_LogValue(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))

	err := fieldcheck.NewError(fieldcheck.Violations{"address.city": {"must not be EMPTY"}})
	log.Info("rejected", slog.Any("violations", err))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	group, ok := entry["violations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"must not be EMPTY"}, group["address.city"])
}
