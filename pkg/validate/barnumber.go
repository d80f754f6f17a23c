package validate

import "regexp"

var barNumberRe = regexp.MustCompile(`^\d{2}-\d{5}$`)

// IsBarNumber reports whether s matches the bar registration number
// format NN-NNNNN.
func IsBarNumber(s string) bool {
	return barNumberRe.MatchString(s)
}
