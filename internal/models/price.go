package models

import (
	"fmt"
	"strings"
)

// FormatPrice renders an amount of euro cents in Dutch notation, e.g.
// 4500 -> "€ 45,00" and 123456 -> "€ 1.234,56".
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	euros := cents / 100
	rem := cents % 100

	digits := fmt.Sprintf("%d", euros)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%s€ %s,%02d", sign, strings.Join(groups, "."), rem)
}
