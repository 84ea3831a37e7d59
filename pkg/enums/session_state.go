package enums

// SessionState is the tri-state the session store exposes to route
// guards: identity not yet resolved, resolved to a user, or resolved
// to nobody.
type SessionState string

const (
	SessionStateLoading         SessionState = "loading"
	SessionStateAuthenticated   SessionState = "authenticated"
	SessionStateUnauthenticated SessionState = "unauthenticated"
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	return string(s)
}
