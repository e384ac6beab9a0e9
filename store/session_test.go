package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_GetCreatesOnFirstSight(t *testing.T) {
	sessions := NewSessions(map[string]int{"SALE10": 10})

	sess := sessions.Get("visitor-a")
	require.NotNil(t, sess)
	assert.Equal(t, 0, sess.Cart.ItemCount())
	assert.Equal(t, 1, sessions.Len())
}

func TestSessions_GetIsStablePerID(t *testing.T) {
	sessions := NewSessions(map[string]int{"SALE10": 10})

	first := sessions.Get("visitor-a")
	first.Cart.Add(bulb)

	again := sessions.Get("visitor-a")
	assert.Same(t, first, again)
	assert.Equal(t, 1, again.Cart.ItemCount())
}

func TestSessions_AreIsolated(t *testing.T) {
	sessions := NewSessions(map[string]int{"SALE10": 10})

	a := sessions.Get("visitor-a")
	b := sessions.Get("visitor-b")
	a.Cart.Add(bulb)

	assert.Equal(t, 0, b.Cart.ItemCount())
	assert.Equal(t, 2, sessions.Len())
}

func TestSessions_SharePromoTable(t *testing.T) {
	sessions := NewSessions(map[string]int{"SALE10": 10})

	sess := sessions.Get("visitor-a")
	pct, err := sess.Promo.Apply("sale10")
	require.NoError(t, err)
	assert.Equal(t, 10, pct)
}
