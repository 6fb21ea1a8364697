package usecase

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/aramistech/aramistech-website/internal/users/domain"
	"github.com/aramistech/aramistech-website/internal/users/repository"
	"github.com/aramistech/aramistech-website/pkg/logger"
	"github.com/aramistech/aramistech-website/pkg/password"
	"github.com/aramistech/aramistech-website/pkg/uploadfiles"

	"github.com/google/uuid"
)

type userUsecase struct {
	userRepo repository.UserRepository
	uploader *uploadfiles.Uploader
}

func NewUserUsecase(userRepo repository.UserRepository, uploader *uploadfiles.Uploader) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		uploader: uploader,
	}
}

func (u *userUsecase) GetUserProfile(ctx context.Context, userID string) (UserProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return UserProfileResponse{}, domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("user not found", "user_id", userID)
			return UserProfileResponse{}, domain.ErrUserNotFound
		}
		return UserProfileResponse{}, err
	}

	return ToUserProfileResponse(user), nil
}

func (u *userUsecase) UpdateUserProfile(ctx context.Context, userID string, req UpdateUserRequest) (UserProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return UserProfileResponse{}, domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("user not found", "user_id", userID)
			return UserProfileResponse{}, domain.ErrUserNotFound
		}
		return UserProfileResponse{}, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	updatedUser, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		logger.Error("failed to update user", "error", err)
		return UserProfileResponse{}, err
	}

	return ToUserProfileResponse(updatedUser), nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		logger.Error("failed to get user for password change", "error", err)
		return err
	}

	passwordMatch, err := password.ComparePassword(user.PasswordHash, req.CurrentPassword)
	if err != nil {
		logger.Error("password comparison error", "error", err)
		return domain.ErrPasswordVerificationFailed
	}

	if !passwordMatch {
		return domain.ErrInvalidCurrentPassword
	}

	hashedPassword, err := password.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("failed to hash new password", "error", err)
		return domain.ErrPasswordProcessingFailed
	}

	err = u.userRepo.UpdatePassword(ctx, userUUID, hashedPassword)
	if err != nil {
		logger.Error("failed to update password", "error", err)
		return domain.ErrUserUpdateFailed
	}

	return nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrInvalidUserID
	}

	err = u.userRepo.DeleteUser(ctx, userUUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		logger.Error("failed to delete user", "error", err)
		return err
	}

	return nil
}

func (u *userUsecase) UploadAvatar(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrInvalidUserID
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	avatarURL, err := u.uploader.Upload(ctx, file, fileHeader, "avatars")
	if err != nil {
		logger.Error("failed to upload avatar", "error", err)
		return "", err
	}

	err = u.userRepo.UpdateAvatar(ctx, userUUID, avatarURL)
	if err != nil {
		logger.Error("failed to save avatar URL", "error", err)
		return "", err
	}

	return avatarURL, nil
}
