package enums

// CheckoutState tracks the checkout submission machine.
type CheckoutState string

const (
	CheckoutStateIdle       CheckoutState = "idle"
	CheckoutStateValidating CheckoutState = "validating"
	CheckoutStateSubmitting CheckoutState = "submitting"
	CheckoutStateSucceeded  CheckoutState = "succeeded"
	CheckoutStateFailed     CheckoutState = "failed"
)

// String implements fmt.Stringer.
func (c CheckoutState) String() string {
	return string(c)
}

// Terminal reports whether the machine has finished a submission
// attempt. A terminal state allows a fresh submit.
func (c CheckoutState) Terminal() bool {
	return c == CheckoutStateSucceeded || c == CheckoutStateFailed
}
