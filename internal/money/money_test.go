package money

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRupeesToPaise(t *testing.T) {
	tests := []struct {
		name   string
		rupees float64
		want   Paise
	}{
		{"whole rupee", 1, 100},
		{"two decimals", 123.45, 12345},
		{"zero", 0, 0},
		{"half paisa rounds up", 1.005, 101},
		{"below half paisa rounds down", 1.004, 100},
		{"single decimal", 0.1, 10},
		{"sum with float noise", 0.1 + 0.2, 30},
		{"large amount", 1234567.89, 123456789},
		{"negative is not validated", -1.5, -150},
		{"beyond int64 paise saturates", 1e17, math.MaxInt64},
		{"beyond int64 paise saturates negative", -1e17, math.MinInt64},
		{"not a number", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RupeesToPaise(tt.rupees))
		})
	}
}

func TestFormatPaise(t *testing.T) {
	tests := []struct {
		paise Paise
		want  string
	}{
		{12345, "₹123.45"},
		{0, "₹0.00"},
		{5, "₹0.05"},
		{100, "₹1.00"},
		{100000000, "₹1000000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPaise(tt.paise))
		})
	}
}

func TestParseRupees(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Paise
		wantErr error
	}{
		{name: "plain decimal", input: "123.45", want: 12345},
		{name: "integer", input: "500", want: 50000},
		{name: "symbol and spaces", input: " ₹ 99.90 ", want: 9990},
		{name: "grouping commas", input: "1,200.50", want: 120050},
		{name: "third decimal rounds half up", input: "1.005", want: 101},
		{name: "third decimal rounds down", input: "1.004", want: 100},
		{name: "empty", input: "", wantErr: ErrInvalidAmount},
		{name: "only symbol", input: "₹", wantErr: ErrInvalidAmount},
		{name: "garbage", input: "12.3.4", wantErr: ErrInvalidAmount},
		{name: "letters", input: "abc", wantErr: ErrInvalidAmount},
		{name: "leading dot", input: ".5", want: 50},
		{name: "negative", input: "-10", wantErr: ErrNegativeAmount},
		{name: "negative fraction", input: "₹-0.50", wantErr: ErrNegativeAmount},
		{name: "exponent", input: "1e3", wantErr: ErrInvalidAmount},
		{name: "huge exponent", input: "1e20000000", wantErr: ErrInvalidAmount},
		{name: "upper-case exponent", input: "5E-2", wantErr: ErrInvalidAmount},
		{name: "explicit plus", input: "+10", wantErr: ErrInvalidAmount},
		{name: "trailing dot", input: "10.", wantErr: ErrInvalidAmount},
		{name: "beyond int64 paise", input: "100000000000000000", wantErr: ErrInvalidAmount},
		{name: "overlong digits", input: strings.Repeat("9", 5000), wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRupees(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRupees_RejectsExponentQuickly(t *testing.T) {
	start := time.Now()
	_, err := ParseRupees("1e20000000")
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPaiseToRupees(t *testing.T) {
	assert.Equal(t, "123.45", PaiseToRupees(12345).StringFixed(2))
	assert.True(t, PaiseToRupees(100).Equal(hundred.Div(hundred)))
}

func TestProperty_PaiseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.Int64Range(0, 1_000_000_000_000).Draw(t, "paise")

		if got := RupeesToPaise(float64(p) / 100); got != p {
			t.Fatalf("RupeesToPaise(%d/100) = %d", p, got)
		}

		parsed, err := ParseRupees(PaiseToRupees(p).StringFixed(2))
		if err != nil {
			t.Fatalf("ParseRupees of formatted %d: %v", p, err)
		}
		if parsed != p {
			t.Fatalf("ParseRupees round-trip: got %d, want %d", parsed, p)
		}
	})
}
