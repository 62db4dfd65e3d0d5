package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "whole amount", input: "100", want: "100.00"},
		{name: "cents", input: "12.34", want: "12.34"},
		{name: "rounds half away from zero", input: "0.125", want: "0.13"},
		{name: "negative rounds away from zero", input: "-0.125", want: "-0.13"},
		{name: "malformed", input: "12,34", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMoney(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := MustParseMoney("10.50")
	b := MustParseMoney("0.75")

	assert.Equal(t, "11.25", a.Add(b).String())
	assert.Equal(t, "9.75", a.Sub(b).String())
	assert.Equal(t, "-10.50", a.Neg().String())
	assert.Equal(t, "10.50", a.Neg().Abs().String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.Equal(t, 0, a.Cmp(MustParseMoney("10.5")))
	assert.True(t, Zero.IsZero())
	assert.True(t, a.IsPositive())
	assert.True(t, a.Neg().IsNegative())
}

func TestMoney_Split(t *testing.T) {
	tests := []struct {
		name  string
		total string
		n     int
		want  []string
	}{
		{name: "even split", total: "90.00", n: 3, want: []string{"30.00", "30.00", "30.00"}},
		{name: "remainder on last part", total: "100.00", n: 3, want: []string{"33.33", "33.33", "33.34"}},
		{name: "single installment", total: "800.00", n: 1, want: []string{"800.00"}},
		{name: "cents smaller than parts", total: "0.05", n: 7, want: []string{"0.00", "0.00", "0.00", "0.00", "0.00", "0.00", "0.05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := MustParseMoney(tt.total)
			parts := total.Split(tt.n)
			require.Len(t, parts, tt.n)

			sum := Zero
			for i, p := range parts {
				assert.Equal(t, tt.want[i], p.String())
				sum = sum.Add(p)
			}
			assert.True(t, sum.Equal(total), "parts must sum to the total")
		})
	}

	assert.Nil(t, MustParseMoney("1.00").Split(0))
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Amount: MustParseMoney("5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"5.00"}`, string(data))

	var decoded struct {
		Amount Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":12.345}`), &decoded))
	assert.Equal(t, "12.35", decoded.Amount.String())
}

func TestMoney_SQL(t *testing.T) {
	v, err := MustParseMoney("42.10").Value()
	require.NoError(t, err)
	assert.Equal(t, "42.10", v)

	var m Money
	require.NoError(t, m.Scan("7.5"))
	assert.True(t, m.Equal(NewMoney(decimal.RequireFromString("7.50"))))
}
