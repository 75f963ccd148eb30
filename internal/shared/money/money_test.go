package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{2000, "R$ 20,00"},
		{0, "R$ 0,00"},
		{123456, "R$ 1.234,56"},
		{5, "R$ 0,05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.cents))
		})
	}
}

func TestFormat_OtherCurrency(t *testing.T) {
	assert.Equal(t, "USD 9,90", Format(990, "USD"))
	assert.Equal(t, "R$ 9,90", Format(990, ""))
}
