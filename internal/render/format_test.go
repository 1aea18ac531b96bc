package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComma(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{298302, "298,302"},
		{259744226, "259,744,226"},
		{-52400, "-52,400"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Comma(tt.in))
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "SAR 298,302", Money("SAR", 298302))
	assert.Equal(t, "SAR 1.7M", Money("SAR", 1_660_304))
	assert.Equal(t, "USD 69.3M", Money("USD", 69_265_127))
}
