package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "1,000", FormatAmount(1000))
	assert.Equal(t, "1,000,000", FormatAmount(1000000))
	assert.Equal(t, "5,000,000", FormatAmount(5000000))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1,000,000", 1000000, false},
		{"1000", 1000, false},
		{" 12 345 KRW", 12345, false},
		{"₩3,000", 3000, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_InvertsFormatAmount(t *testing.T) {
	for _, v := range []int64{0, 1, 999, 1000, 123456789, 20000000} {
		got, err := ParseAmount(FormatAmount(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFee(t *testing.T) {
	assert.Equal(t, int64(10), Fee(1000))
	assert.Equal(t, int64(9), Fee(999))
	assert.Equal(t, int64(10), Fee(1099))
	assert.Equal(t, int64(0), Fee(0))
	assert.Equal(t, int64(0), Fee(-5))
}

func TestNewPreview(t *testing.T) {
	rates := map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("1350.50"),
		"JPY": decimal.Zero,
	}

	t.Run("with rate", func(t *testing.T) {
		p := NewPreview(1000, "usd", rates)
		assert.Equal(t, int64(10), p.Fee)
		assert.Equal(t, int64(1010), p.Total)
		assert.True(t, p.RateAvailable)
		assert.True(t, p.ConvertedAmount.Equal(decimal.RequireFromString("0.74")), p.ConvertedAmount.String())
	})

	t.Run("fee floors", func(t *testing.T) {
		p := NewPreview(999, "USD", rates)
		assert.Equal(t, int64(9), p.Fee)
		assert.Equal(t, int64(1008), p.Total)
	})

	t.Run("missing rate", func(t *testing.T) {
		p := NewPreview(50000, "EUR", rates)
		assert.False(t, p.RateAvailable)
		assert.True(t, p.ConvertedAmount.IsZero())
		assert.Equal(t, int64(50500), p.Total)
	})

	t.Run("zero rate", func(t *testing.T) {
		p := NewPreview(50000, "JPY", rates)
		assert.False(t, p.RateAvailable)
		assert.True(t, p.ConvertedAmount.IsZero())
	})
}
