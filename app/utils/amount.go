package utils

import (
	"strconv"
	"strings"
)

// FormatIndian formats an amount with Indian digit grouping: groups of two
// after the first three digits from the right, e.g. 1234567 -> "12,34,567".
func FormatIndian(amount float64) string {
	numStr := strconv.FormatFloat(amount, 'f', -1, 64)

	neg := strings.HasPrefix(numStr, "-")
	if neg {
		numStr = numStr[1:]
	}

	intPart := numStr
	decimalPart := ""
	if idx := strings.IndexByte(numStr, '.'); idx >= 0 {
		intPart, decimalPart = numStr[:idx], numStr[idx+1:]
	}

	result := intPart
	if len(intPart) > 3 {
		lastThree := intPart[len(intPart)-3:]
		other := intPart[:len(intPart)-3]
		var groups []string
		for len(other) > 2 {
			groups = append([]string{other[len(other)-2:]}, groups...)
			other = other[:len(other)-2]
		}
		if other != "" {
			groups = append([]string{other}, groups...)
		}
		result = strings.Join(groups, ",") + "," + lastThree
	}

	if decimalPart != "" {
		result += "." + decimalPart
	}
	if neg {
		result = "-" + result
	}
	return result
}

var units = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var scales = []struct {
	divisor int64
	name    string
}{
	{10000000, "crore"},
	{100000, "lakh"},
	{1000, "thousand"},
	{100, "hundred"},
}

// NumberToWords spells a whole rupee amount using the Indian numbering
// system (crore/lakh), for the amount-in-words line on receipts. Negative
// amounts are not expected and yield an empty string.
func NumberToWords(num int64) string {
	if num < 0 {
		return ""
	}
	if num == 0 {
		return "Zero"
	}
	return capitalize(convertWords(num))
}

func twoDigits(n int64) string {
	if n < 20 {
		return units[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + units[n%10]
	}
	return s
}

func convertWords(n int64) string {
	var b strings.Builder
	for _, scale := range scales {
		if v := n / scale.divisor; v > 0 {
			b.WriteString(convertWords(v))
			b.WriteString(" ")
			b.WriteString(scale.name)
			b.WriteString(" ")
			n %= scale.divisor
		}
	}
	if n > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		b.WriteString(twoDigits(n))
	}
	return strings.TrimSpace(b.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
