package numberutils

import "strconv"

// IsFloat64 checks if the given string can be converted to a valid float64.
// It returns true if the string can be converted, false otherwise.
func IsFloat64(str string) bool {
	_, err := strconv.ParseFloat(str, 64)
	return err == nil
}

// ToFloat64WithError converts the given string to a float64 and returns any error
// that occurred during conversion.
func ToFloat64WithError(str string) (float64, error) {
	return strconv.ParseFloat(str, 64)
}

// FormatFloat64 formats a float64 with a plain decimal point and the minimal
// number of digits, independent of any locale convention.
func FormatFloat64(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
