package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), HNL)
		require.NoError(t, err)
		assert.Equal(t, HNL, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyHNLFromFloat(10.50)
	b := NewMoneyHNLFromFloat(4.50)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(15.0)))
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromFloat(6.0)))
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		total := a.MultiplyByInt(3)
		assert.True(t, total.Amount().Equal(decimal.NewFromFloat(31.5)))
	})

	t.Run("mismatched currencies", func(t *testing.T) {
		usd := Zero(USD)
		_, err := a.Add(usd)
		assert.Error(t, err)
		_, err = a.Subtract(usd)
		assert.Error(t, err)
	})
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroHNL().IsZero())
	assert.True(t, NewMoneyHNLFromFloat(1).IsPositive())
	assert.True(t, NewMoneyHNLFromFloat(-1).IsNegative())
	assert.True(t, NewMoneyHNLFromFloat(2.5).Equals(NewMoneyHNLFromFloat(2.5)))
	assert.False(t, NewMoneyHNLFromFloat(2.5).Equals(Zero(USD)))
}

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole amount", 120, "Lps 120.00"},
		{"fractional amount", 99.9, "Lps 99.90"},
		{"zero", 0, "Lps 0.00"},
		{"negative", -15.25, "Lps -15.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMoneyHNLFromFloat(tt.amount).Format())
		})
	}
}

func TestMoney_FormatUSD(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(5.5), USD)
	require.NoError(t, err)
	assert.Equal(t, "$ 5.50", m.Format())
}

func TestNewMoneyHNLFromString(t *testing.T) {
	m, err := NewMoneyHNLFromString("42.75")
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(42.75)))

	_, err = NewMoneyHNLFromString("not-a-number")
	assert.Error(t, err)
}
