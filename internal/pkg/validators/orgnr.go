package validators

import (
	"github.com/go-playground/validator/v10"
)

// mod-11 weights for the nine-digit Norwegian organisation number
var orgNumberWeights = [8]int{3, 2, 7, 6, 5, 4, 3, 2}

// OrgNumberValidation validates a Norwegian organisation number: nine digits
// where the last digit is a mod-11 checksum over the first eight.
func OrgNumberValidation(fl validator.FieldLevel) bool {
	return ValidOrgNumber(fl.Field().String())
}

// ValidOrgNumber reports whether s is a structurally valid Norwegian
// organisation number.
func ValidOrgNumber(s string) bool {
	if len(s) != 9 {
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * orgNumberWeights[i]
	}

	last := s[8]
	if last < '0' || last > '9' {
		return false
	}

	remainder := sum % 11
	if remainder == 0 {
		return last == '0'
	}
	control := 11 - remainder
	if control == 10 {
		// Numbers whose checksum computes to 10 are never issued.
		return false
	}
	return int(last-'0') == control
}
