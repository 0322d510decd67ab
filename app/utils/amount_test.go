package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndian(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{1234567.5, "12,34,567.5"},
		{-1234567, "-12,34,567"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatIndian(c.in), "FormatIndian(%v)", c.in)
	}
}

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{15, "Fifteen"},
		{21, "Twenty one"},
		{100, "One hundred"},
		{150, "One hundred and fifty"},
		{1500, "One thousand five hundred"},
		{100000, "One lakh"},
		{1234567, "Twelve lakh thirty four thousand five hundred and sixty seven"},
		{10000000, "One crore"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NumberToWords(c.in), "NumberToWords(%d)", c.in)
	}
}

func TestNumberToWords_Negative(t *testing.T) {
	assert.Equal(t, "", NumberToWords(-5))
}
