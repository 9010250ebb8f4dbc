package domain

// Class is a character class a password may be required or forbidden to use.
type Class int

// Classes in canonical alphabet order.
const (
	ClassSpecial Class = iota
	ClassUpper
	ClassLower
	ClassDigit
)

// Classes lists every class in canonical order.
var Classes = []Class{ClassSpecial, ClassUpper, ClassLower, ClassDigit}

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
)

func (c Class) String() string {
	switch c {
	case ClassSpecial:
		return "special"
	case ClassUpper:
		return "uppercase"
	case ClassLower:
		return "lowercase"
	case ClassDigit:
		return "digit"
	default:
		return "unknown"
	}
}

// MissingErr returns the rejection reason for a required class that is absent.
func (c Class) MissingErr() error {
	switch c {
	case ClassSpecial:
		return ErrMissingSpecial
	case ClassUpper:
		return ErrMissingUpper
	case ClassLower:
		return ErrMissingLower
	default:
		return ErrMissingDigit
	}
}

// ForbiddenErr returns the rejection reason for a disabled class that is present.
func (c Class) ForbiddenErr() error {
	switch c {
	case ClassSpecial:
		return ErrForbiddenSpecial
	case ClassUpper:
		return ErrForbiddenUpper
	case ClassLower:
		return ErrForbiddenLower
	default:
		return ErrForbiddenDigit
	}
}
