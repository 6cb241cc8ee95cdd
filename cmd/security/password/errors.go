package password

// PolicyError is a password policy violation. Its message is the exact
// string returned to API clients, so the texts below are a wire contract
// and must not be reworded casually.
type PolicyError struct {
	msg string
}

func (e *PolicyError) Error() string { return e.msg }

// Policy violations, in the order Validate checks them.
var (
	ErrTooShort   = &PolicyError{"Password be longer than 8 characters"}
	ErrTooLong    = &PolicyError{"Password be less than 72 characters"}
	ErrEdgeSpaces = &PolicyError{"Password must not start or end with empty spaces"}
	ErrNotComplex = &PolicyError{"Password must contain one upper case, lower case, number and special character"}
)
