package authService

import (
	"SpendWise/internal/api/auth"
	authRepository "SpendWise/internal/api/auth/repository"
	"SpendWise/pkg/bcrypt"
	"SpendWise/pkg/google"
	"SpendWise/pkg/redis"
	"SpendWise/pkg/s3"
	"SpendWise/pkg/utils"
	"mime/multipart"
	"net/url"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	RegisterUser(ctx context.Context, req auth.RegisterUserRequest) (auth.AuthUserResponse, error)
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.AuthUserResponse, error)
	LoginGoogle() (*url.URL, error)
	UserLoginGoogle(ctx context.Context, req auth.LoginUserGoogle) (auth.AuthUserResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID string) (auth.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.AuthUserResponse, error)
	UpdateProfilePhoto(ctx context.Context, userID string, photoFile *multipart.FileHeader) (string, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		googleProvider: googleProvider,
		redisServer:    redisServer,
		s3Client:       s3Client,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
