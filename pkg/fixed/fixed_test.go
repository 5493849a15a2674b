package fixed

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.3331", "2.3331"},
		{"2.33305", "2.3331"}, // half rounds up
		{"2.33304", "2.333"},
		{"0", "0"},
		{"7.5", "7.5"},
	}
	for _, c := range cases {
		if got := Quantity(d(c.in)); !got.Equal(d(c.want)) {
			t.Errorf("Quantity(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"18.75", "18.75"},
		{"0.005", "0.01"}, // half rounds up
		{"0.004", "0"},
		{"10.999", "11"},
	}
	for _, c := range cases {
		if got := Money(d(c.in)); !got.Equal(d(c.want)) {
			t.Errorf("Money(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestCost(t *testing.T) {
	if got := Cost(d("7.5"), d("2.50")); !got.Equal(d("18.75")) {
		t.Errorf("Cost = %s, want 18.75", got)
	}
	if got := Cost(d("3"), decimal.Zero); !got.Equal(decimal.Zero) {
		t.Errorf("Cost with zero unit cost = %s, want 0", got)
	}
}
