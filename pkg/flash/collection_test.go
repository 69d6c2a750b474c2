package flash_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashkit/pkg/flash"
)

func TestCollection_AddUnique(t *testing.T) {
	t.Parallel()

	c := flash.NewCollection()

	c.AddUnique(flash.NewMessage(flash.TypeError, "Bad input.")).
		AddUnique(flash.NewMessage(flash.TypeError, "Bad input.")).
		AddUnique(flash.NewMessage(flash.TypeError, "Missing input."))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Bad input.", c.All()[0].Text())
	assert.Equal(t, "Missing input.", c.All()[1].Text())
}

func TestCollection_AddUnique_IgnoresFormatAndFlashable(t *testing.T) {
	t.Parallel()

	c := flash.NewCollection(
		flash.NewMessage(flash.TypeInfo, "hello"),
		flash.NewMessage(flash.TypeInfo, "hello", flash.WithFlashable(false), flash.WithFormat(":message")),
	)

	assert.Equal(t, 1, c.Len())
	// The first insertion wins; the duplicate's attributes are discarded.
	assert.True(t, c.All()[0].IsFlashable())
}

func TestCollection_AddUnique_NilMessage(t *testing.T) {
	t.Parallel()

	c := flash.NewCollection()
	c.AddUnique(nil)

	assert.Equal(t, 0, c.Len())
}

func TestCollection_First(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		c := flash.NewCollection()
		m, err := c.First()

		require.ErrorIs(t, err, flash.ErrEmptyCollection)
		assert.Nil(t, m)
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		t.Parallel()

		c := flash.NewCollection(
			flash.NewMessage(flash.TypeSuccess, "first"),
			flash.NewMessage(flash.TypeSuccess, "second"),
		)

		m, err := c.First()
		require.NoError(t, err)
		assert.Equal(t, "first", m.Text())
	})
}

func TestCollection_MarshalJSON(t *testing.T) {
	t.Parallel()

	c := flash.NewCollection(
		flash.NewMessage(flash.TypeError, "x", flash.WithFormat(":message")),
		flash.NewMessage(flash.TypeInfo, "y"),
	)

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"type":"error","message":"x","format":":message"},{"type":"info","message":"y"}]`, string(raw))
}

func TestCollection_Payload_Order(t *testing.T) {
	t.Parallel()

	c := flash.NewCollection(
		flash.NewMessage(flash.TypeWarning, "a"),
		flash.NewMessage(flash.TypeWarning, "b"),
		flash.NewMessage(flash.TypeWarning, "c"),
	)

	p := c.Payload()
	require.Len(t, p, 3)
	assert.Equal(t, "a", p[0].Message)
	assert.Equal(t, "b", p[1].Message)
	assert.Equal(t, "c", p[2].Message)
}
