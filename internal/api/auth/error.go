package auth

import (
	"SpendWise/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusBadRequest, "user already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusUnauthorized, "invalid email or password")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidPhoneNumber     = response.NewError(http.StatusBadRequest, "phone number must be exactly 10 digits")
	ErrInvalidTheme           = response.NewError(http.StatusBadRequest, "theme must be light or dark")
	ErrPasswordTooShort       = response.NewError(http.StatusBadRequest, "password must be at least 6 characters long")
	ErrInvalidFileType        = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFailedToUploadFile     = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrGoogleExchangeFailed   = response.NewError(http.StatusUnauthorized, "google sign-in failed")
)
