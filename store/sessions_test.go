package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/models"
)

func TestEnsureCreatesAndReusesSessions(t *testing.T) {
	m := NewSessionManager()

	token, s := m.Ensure("")
	require.NotEmpty(t, token)
	require.NotNil(t, s)
	assert.Equal(t, 1, m.Len())

	s.Dispatch(AddToCart(models.CartItem{Product: models.Product{ID: "p1"}, Quantity: 1}))

	// same token returns the same store with its state intact
	token2, s2 := m.Ensure(token)
	assert.Equal(t, token, token2)
	assert.Same(t, s, s2)
	assert.Len(t, s2.Snapshot().Cart, 1)
	assert.Equal(t, 1, m.Len())
}

func TestEnsureNeverAdoptsUnknownToken(t *testing.T) {
	m := NewSessionManager()

	// a stale or guessed token gets a server-minted replacement, so a
	// client cannot choose the key a future session lives under
	token, s := m.Ensure("stale-token")
	assert.NotEqual(t, "stale-token", token)
	assert.NotEmpty(t, token)
	assert.Empty(t, s.Snapshot().Cart)

	_, ok := m.Get("stale-token")
	assert.False(t, ok)

	got, ok := m.Get(token)
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestGetDoesNotCreate(t *testing.T) {
	m := NewSessionManager()

	_, ok := m.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	token, s := m.Ensure("")
	got, ok := m.Get(token)
	require.True(t, ok)
	assert.Same(t, s, got)
}
