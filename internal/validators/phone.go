package validators

import "strings"

// IsPhoneValid aceita dígitos com separadores usuais e um + inicial.
// Entre 8 e 15 dígitos (E.164).
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 8 && digits <= 15
}
