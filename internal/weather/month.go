package weather

import "strconv"

// InvalidMonth is returned for month selectors that do not name a month.
const InvalidMonth = -1

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNameToNumber maps a canonical English month name to 1-12.
// Matching is exact and case-sensitive; anything else yields InvalidMonth.
func MonthNameToNumber(name string) int {
	for i, n := range monthNames {
		if n == name {
			return i + 1
		}
	}
	return InvalidMonth
}

// MonthName returns the canonical name for 1-12, or "" otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthNames lists the month names in calendar order.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

// ResolveMonth accepts either a decimal month number or a canonical month name.
// Numbers resolve to their canonical name; names are returned unchanged.
func ResolveMonth(selector string) (int, string) {
	if n, err := strconv.Atoi(selector); err == nil {
		if name := MonthName(n); name != "" {
			return n, name
		}
		return InvalidMonth, selector
	}
	return MonthNameToNumber(selector), selector
}
