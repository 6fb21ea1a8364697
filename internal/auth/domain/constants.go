package domain

const (
	SessionDurationMinutes = 60 * 24 * 15

	MaxLoginAttempts = 5

	// TwoFactorIssuer is the issuer label shown in authenticator apps.
	TwoFactorIssuer = "AramisTech"
)
