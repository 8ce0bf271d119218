package utils_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/hanifwid/printmart/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		value  int64
		scale  int
		expect string
	}{
		{name: "zero", value: 0, scale: 0, expect: "Rp0"},
		{name: "hundreds", value: 500, scale: 0, expect: "Rp500"},
		{name: "thousands", value: 1500, scale: 0, expect: "Rp1.500"},
		{name: "million", value: 1000000, scale: 0, expect: "Rp1.000.000"},
		{name: "odd grouping", value: 12345678, scale: 0, expect: "Rp12.345.678"},
		{name: "fraction", value: 150050, scale: 2, expect: "Rp1.500,50"},
		{name: "negative", value: -250000, scale: 0, expect: "-Rp250.000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := decimal.New(test.value, test.scale)
			assert.NoError(t, err)
			assert.Equal(t, test.expect, utils.FormatRupiah(d))
		})
	}
}
