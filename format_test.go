// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSymbols(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in   string
		sep  rune
		size int
		out  string
	}{
		{"1000", ',', 3, "1,000"},
		{"100", ',', 3, "100"},
		{"1", ',', 3, "1"},
		{"", ',', 3, ""},
		{"123456", ',', 3, "123,456"},
		{"1234567", ',', 3, "1,234,567"},
		// kept leading zeros group like any other digit
		{"0100", ',', 3, "0,100"},
		{"12", '.', 1, "1.2"},
		{"1000", ' ', 3, "1 000"},
		{"1000", ',', 0, "1000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.out, string(groupSymbols([]rune(test.in), test.sep, test.size)))
		})
	}
}

func TestFormatWithDefaults(t *testing.T) {
	a := assert.New(t)
	def := Format{Delimiter: '.', Separator: ',', Sign: '-', GroupSize: 3}
	a.Equal(def, Format{}.withDefaults(def))
	custom := Format{Delimiter: ';', Separator: ' ', Sign: '~', GroupSize: 4}
	a.Equal(custom, custom.withDefaults(def))
	partial := Format{Delimiter: ','}.withDefaults(def)
	a.Equal(Format{Delimiter: ',', Separator: ',', Sign: '-', GroupSize: 3}, partial)
}
