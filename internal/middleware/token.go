package middleware

import (
	"SpendWise/internal/entity"
	jwtPkg "SpendWise/pkg/jwt"
	"SpendWise/pkg/redis"
	"SpendWise/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

type tokenMiddleware struct {
	redisServer redis.IRedis
}

func newTokenMiddleware(redisServer redis.IRedis) *tokenMiddleware {
	return &tokenMiddleware{redisServer: redisServer}
}

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(response.Failure("unauthorized, access token invalid or expired"))
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header is missing")
		return unauthorized(ctx)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Authorization header format is invalid")
		return unauthorized(ctx)
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token verification failed")
		return unauthorized(ctx)
	}

	// A logged-out token is still cryptographically valid; the revocation
	// list is what makes logout effective.
	accessToken, err := jwtPkg.TokenFromHeader(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	revoked, err := m.token.redisServer.IsTokenRevoked(ctx.Context(), accessToken)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to check token revocation")
		return unauthorized(ctx)
	}
	if revoked {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Revoked token presented")
		return unauthorized(ctx)
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.Warn("Invalid token claims")
		return unauthorized(ctx)
	}

	if claims["id"] == nil || claims["email"] == nil || claims["username"] == nil {
		m.log.Warn("Token claims are missing required fields")
		return unauthorized(ctx)
	}

	user := entity.UserLoginData{
		ID:    claims["id"].(string),
		Email: claims["email"].(string),
		Name:  claims["username"].(string),
	}
	ctx.Locals("user", user)

	return ctx.Next()
}
