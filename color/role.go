package color

import "fmt"

// Role is the purpose a band serves when decoding. The same Color can be
// valid in one role and invalid in another.
type Role uint8

const (
	// RoleTensDigit is the tens place of the significant digits.
	RoleTensDigit Role = iota
	// RoleOnesDigit is the ones place of the significant digits.
	RoleOnesDigit
	// RoleHundredsDigit is the hundreds place (five- and six-band parts).
	RoleHundredsDigit
	// RoleThousandsDigit is the thousands place. No band layout uses it yet.
	RoleThousandsDigit
	// RoleMultiplier is the decade multiplier band.
	RoleMultiplier
	// RoleTolerance is the tolerance band.
	RoleTolerance
	// RoleTemperatureCoefficient is the sixth band of six-band parts.
	RoleTemperatureCoefficient
)

var roleNames = [...]string{
	RoleTensDigit:              "tens digit",
	RoleOnesDigit:              "ones digit",
	RoleHundredsDigit:          "hundreds digit",
	RoleThousandsDigit:         "thousands digit",
	RoleMultiplier:             "multiplier",
	RoleTolerance:              "tolerance",
	RoleTemperatureCoefficient: "temperature coefficient",
}

// String returns the human-readable role name, e.g. "tens digit".
func (r Role) String() string {
	if int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", uint8(r))
	}

	return roleNames[r]
}

// Place returns the decimal exponent of a digit role (ones=0 … thousands=3)
// and false for roles that are not digits.
func (r Role) Place() (int, bool) {
	switch r {
	case RoleOnesDigit:
		return 0, true
	case RoleTensDigit:
		return 1, true
	case RoleHundredsDigit:
		return 2, true
	case RoleThousandsDigit:
		return 3, true
	default:
		return 0, false
	}
}

// Lookup evaluates c under role r and returns the validation error, if any.
// Digit roles share the Digit table; the value itself is discarded.
func (r Role) Lookup(c Color) error {
	var err error
	switch r {
	case RoleTensDigit, RoleOnesDigit, RoleHundredsDigit, RoleThousandsDigit:
		_, err = Digit(c)
	case RoleMultiplier:
		_, err = Multiplier(c)
	case RoleTolerance:
		_, err = Tolerance(c)
	case RoleTemperatureCoefficient:
		_, err = TemperatureCoefficient(c)
	default:
		err = fmt.Errorf("%s: %w", r, ErrUnknownRole)
	}

	return err
}
