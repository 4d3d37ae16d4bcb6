package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthNameToNumber(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"January", 1},
		{"July", 7},
		{"December", 12},
		{"july", InvalidMonth},
		{"JULY", InvalidMonth},
		{"Jul", InvalidMonth},
		{" July", InvalidMonth},
		{"", InvalidMonth},
		{"Julyy", InvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthNameToNumber(tt.name))
		})
	}
}

func TestMonthNames_RoundTrip(t *testing.T) {
	names := MonthNames()
	assert.Len(t, names, 12)
	for i, n := range names {
		assert.Equal(t, i+1, MonthNameToNumber(n))
		assert.Equal(t, n, MonthName(i+1))
	}

	names[0] = "changed"
	assert.Equal(t, "January", MonthName(1))
}

func TestMonthName_OutOfRange(t *testing.T) {
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
	assert.Empty(t, MonthName(InvalidMonth))
}

func TestResolveMonth(t *testing.T) {
	tests := []struct {
		selector     string
		expectedNum  int
		expectedName string
	}{
		{"3", 3, "March"},
		{"12", 12, "December"},
		{"March", 3, "March"},
		{"0", InvalidMonth, "0"},
		{"13", InvalidMonth, "13"},
		{"march", InvalidMonth, "march"},
		{"", InvalidMonth, ""},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			n, name := ResolveMonth(tt.selector)
			assert.Equal(t, tt.expectedNum, n)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}
