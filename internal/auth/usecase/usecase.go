package usecase

import "context"

type UserUsecase interface {
	LoginUser(ctx context.Context, input LoginUserInput, userAgent, ipAddress string) (LoginUserOutput, error)
	LoginWithTwoFactor(ctx context.Context, input TwoFactorLoginInput, userAgent, ipAddress string) (LoginUserOutput, error)
	LogoutUser(ctx context.Context, token string) (LogoutOutput, error)
}
