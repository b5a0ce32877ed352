package maptel

// MaxNumberLength is the longest accepted telephone number, in digits.
const MaxNumberLength = 22

// ValidateNumber reports whether s is a telephone number: 1 to
// MaxNumberLength ASCII decimal digits. The returned error is a
// *NumberError wrapping ErrInvalidNumber.
func ValidateNumber(s string) error {
	return checkNumber("validate", s)
}

// IsValidNumber is ValidateNumber as a predicate.
func IsValidNumber(s string) bool {
	return numberFault(s) == ""
}

func checkNumber(op, s string) error {
	if reason := numberFault(s); reason != "" {
		return &NumberError{Op: op, Number: s, Reason: reason}
	}
	return nil
}

// numberFault returns why s is not a telephone number, or "" if it is.
func numberFault(s string) string {
	switch {
	case s == "":
		return "empty"
	case len(s) > MaxNumberLength:
		return "too long"
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "non-digit character"
		}
	}
	return ""
}
