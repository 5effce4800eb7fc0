package authService

import (
	"SpendWise/internal/api/auth"
	contextPkg "SpendWise/pkg/context"
	jwtPkg "SpendWise/pkg/jwt"
	"SpendWise/pkg/utils"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) Login(ctx context.Context, req auth.LoginUserRequest) (auth.AuthUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt with unknown email")
			return auth.AuthUserResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.AuthUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.AuthUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, _, err := jwtPkg.Sign(MakeUserData(user), time.Hour*24)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.AuthUserResponse{
		User:  MakeUserResponse(user),
		Token: token,
	}, nil
}

func (s *authService) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", gConfig.ClientID)
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

func (s *authService) UserLoginGoogle(ctx context.Context, req auth.LoginUserGoogle) (auth.AuthUserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Google sign-in for unregistered email")
			return auth.AuthUserResponse{}, auth.ErrUserNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.AuthUserResponse{}, err
	}

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

// Logout revokes the presented token until its natural expiry so the
// middleware rejects any replay of it.
func (s *authService) Logout(ctx context.Context, token string) error {
	requestID := contextPkg.GetRequestID(ctx)

	secret := os.Getenv("JWT_ACCESS_TOKEN_SECRET")
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to parse token on logout")
		return err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("unexpected token claims")
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return errors.New("token has no expiry")
	}

	if err := s.redisServer.RevokeToken(ctx, token, time.Until(expiry.Time)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token revoked")

	return nil
}
