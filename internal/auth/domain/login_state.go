package domain

// LoginState is the outcome of one step of the two-step login sequence.
//
// AwaitingPassword is the implicit starting point of every attempt. A
// password match on an account with 2FA enabled moves to
// AwaitingSecondFactor instead of granting a session; the client then
// resubmits the same credentials together with a TOTP token or backup code.
// Rejected is re-entrant: the next attempt simply starts over from
// AwaitingPassword.
type LoginState string

const (
	StateAwaitingPassword     LoginState = "awaiting_password"
	StateAwaitingSecondFactor LoginState = "awaiting_second_factor"
	StateAuthenticated        LoginState = "authenticated"
	StateRejected             LoginState = "rejected"
)
