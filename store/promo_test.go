package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePromo() *Promo {
	return NewPromo(map[string]int{
		"SALE10":  10,
		"SALE20":  20,
		"WELCOME": 15,
	})
}

func TestApply_IsCaseInsensitive(t *testing.T) {
	promo := fixturePromo()

	lower, err := promo.Apply("sale10")
	require.NoError(t, err)

	upper, err := promo.Apply("SALE10")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, 10, promo.Active())
	assert.Equal(t, "SALE10", promo.ActiveCode())
}

func TestApply_UnknownCodeKeepsPreviousDiscount(t *testing.T) {
	promo := fixturePromo()

	_, err := promo.Apply("welcome")
	require.NoError(t, err)

	_, err = promo.Apply("BOGUS")
	assert.ErrorIs(t, err, ErrInvalidPromoCode)
	assert.Equal(t, 15, promo.Active())
	assert.Equal(t, "WELCOME", promo.ActiveCode())
}

func TestApply_NewCodeReplacesActiveDiscount(t *testing.T) {
	promo := fixturePromo()

	_, err := promo.Apply("SALE10")
	require.NoError(t, err)

	_, err = promo.Apply("SALE20")
	require.NoError(t, err)

	assert.Equal(t, 20, promo.Active())
}

func TestApply_NoDiscountBeforeFirstCode(t *testing.T) {
	promo := fixturePromo()

	assert.Equal(t, 0, promo.Active())
	assert.Equal(t, "", promo.ActiveCode())
}

func TestReset(t *testing.T) {
	promo := fixturePromo()

	_, err := promo.Apply("SALE20")
	require.NoError(t, err)

	promo.Reset()

	assert.Equal(t, 0, promo.Active())
	assert.Equal(t, "", promo.ActiveCode())
}

func TestNewPromo_NormalizesTableKeys(t *testing.T) {
	promo := NewPromo(map[string]int{"sneaky": 5})

	pct, err := promo.Apply("SNEAKY")
	require.NoError(t, err)
	assert.Equal(t, 5, pct)
}
