package authService

import (
	"SpendWise/internal/api/auth"
	"SpendWise/internal/entity"
	contextPkg "SpendWise/pkg/context"
	jwtPkg "SpendWise/pkg/jwt"
	"SpendWise/pkg/utils"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const minPasswordLength = 6

func (s *authService) RegisterUser(ctx context.Context, req auth.RegisterUserRequest) (auth.AuthUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthUserResponse{}, err
	}

	if len(req.Password) < minPasswordLength {
		return auth.AuthUserResponse{}, auth.ErrPasswordTooShort
	}
	if !utils.IsValidPhone(req.Phone) {
		return auth.AuthUserResponse{}, auth.ErrInvalidPhoneNumber
	}

	email := utils.NormalizeEmail(req.Email)

	_, err = repo.Users.GetByEmail(ctx, email)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Registration with existing email")
		return auth.AuthUserResponse{}, auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check email usage")
		return auth.AuthUserResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.AuthUserResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.AuthUserResponse{}, err
	}

	newUser := entity.User{
		ID:           ULID,
		Name:         req.Name,
		Email:        email,
		Password:     hashedPassword,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfileImage: entity.DefaultProfileImage,
		Theme:        string(entity.ThemeLight),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, newUser); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.AuthUserResponse{}, err
	}

	token, _, err := jwtPkg.Sign(MakeUserData(newUser), time.Hour*24)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    newUser.ID,
	}).Info("User registered")

	return auth.AuthUserResponse{
		User:  MakeUserResponse(newUser),
		Token: token,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.UserResponse{}, err
	}

	return MakeUserResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.AuthUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthUserResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return auth.AuthUserResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		email := utils.NormalizeEmail(req.Email)
		if email != user.Email {
			existing, err := repo.Users.GetByEmail(ctx, email)
			if err == nil && existing.ID != userID {
				return auth.AuthUserResponse{}, auth.ErrEmailAlreadyExists
			}
			if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
				return auth.AuthUserResponse{}, err
			}
			user.Email = email
		}
	}
	if req.Phone != "" {
		if !utils.IsValidPhone(req.Phone) {
			return auth.AuthUserResponse{}, auth.ErrInvalidPhoneNumber
		}
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Theme != "" {
		if !entity.IsValidTheme(req.Theme) {
			return auth.AuthUserResponse{}, auth.ErrInvalidTheme
		}
		user.Theme = req.Theme
	}
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			return auth.AuthUserResponse{}, auth.ErrPasswordTooShort
		}
		hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash password")
			return auth.AuthUserResponse{}, err
		}
		user.Password = hashedPassword
	}

	user.UpdatedAt = time.Now()

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return auth.AuthUserResponse{}, err
	}

	// Email and name may have changed, so the claims are re-issued.
	token, _, err := jwtPkg.Sign(MakeUserData(user), time.Hour*24)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthUserResponse{}, err
	}

	return auth.AuthUserResponse{
		User:  MakeUserResponse(user),
		Token: token,
	}, nil
}

func (s *authService) UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(photoFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Profile photo validation failed")
		return "", auth.ErrInvalidFileType
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	imageURL, err := s.s3Client.UploadFile(photoFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile photo")
		return "", auth.ErrFailedToUploadFile
	}

	if err := repo.Users.UpdateProfileImage(ctx, userID, imageURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save profile image URL")
		return "", err
	}

	// Old image removal is best effort; the new URL is already stored.
	if user.ProfileImage != "" && user.ProfileImage != entity.DefaultProfileImage {
		if err := s.s3Client.DeleteFile(user.ProfileImage); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete previous profile photo")
		}
	}

	return imageURL, nil
}
