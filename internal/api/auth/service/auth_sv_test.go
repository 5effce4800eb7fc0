package authService

import (
	"SpendWise/internal/api/auth"
	authRepository "SpendWise/internal/api/auth/repository"
	"SpendWise/internal/entity"
	"SpendWise/pkg/bcrypt"
	"SpendWise/pkg/utils"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type userStore struct {
	users []entity.User
}

func (s *userStore) CreateUser(_ context.Context, u entity.User) error {
	s.users = append(s.users, u)
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (s *userStore) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (s *userStore) UpdateUser(_ context.Context, updated entity.User) error {
	for i, u := range s.users {
		if u.ID == updated.ID {
			s.users[i] = updated
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func (s *userStore) UpdateProfileImage(_ context.Context, id string, imageURL string) error {
	for i, u := range s.users {
		if u.ID == id {
			s.users[i].ProfileImage = imageURL
			return nil
		}
	}
	return auth.ErrUserNotFound
}

type fakeAuthRepo struct {
	store *userStore
}

func (f *fakeAuthRepo) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeRevocationStore struct {
	revoked map[string]bool
}

func (r *fakeRevocationStore) RevokeToken(_ context.Context, token string, _ time.Duration) error {
	if r.revoked == nil {
		r.revoked = make(map[string]bool)
	}
	r.revoked[token] = true
	return nil
}

func (r *fakeRevocationStore) IsTokenRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

func newAuthFixture(t *testing.T) (IAuthService, *userStore, *fakeRevocationStore) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := &userStore{}
	revocations := &fakeRevocationStore{}
	svc := New(logger, &fakeAuthRepo{store: store}, nil, revocations, nil, bcrypt.NewWithCost(4), utils.New())
	return svc, store, revocations
}

func TestRegisterUser(t *testing.T) {
	svc, store, _ := newAuthFixture(t)

	registered, err := svc.RegisterUser(context.Background(), auth.RegisterUserRequest{
		Name:     "Alex",
		Email:    "  Alex@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alex@example.com", registered.User.Email)
	assert.Equal(t, string(entity.ThemeLight), registered.User.Theme)
	assert.Equal(t, entity.DefaultProfileImage, registered.User.ProfileImage)
	assert.NotEmpty(t, registered.Token)

	require.Len(t, store.users, 1)
	assert.NotEqual(t, "secret123", store.users[0].Password)
}

func TestRegisterUserDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Other", Email: "ALEX@example.com", Password: "secret456",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterUserValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "short",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)

	_, err = svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "secret123", Phone: "123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidPhoneNumber)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	loggedIn, err := svc.Login(ctx, auth.LoginUserRequest{
		Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)

	_, err = svc.Login(ctx, auth.LoginUserRequest{
		Email: "alex@example.com", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)

	// Unknown emails fail with the same error so the endpoint does not
	// leak which addresses are registered.
	_, err = svc.Login(ctx, auth.LoginUserRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, revocations := newAuthFixture(t)
	ctx := context.Background()

	registered, err := svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.Token))

	revoked, err := revocations.IsTokenRevoked(ctx, registered.Token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestUpdateProfile(t *testing.T) {
	svc, store, _ := newAuthFixture(t)
	ctx := context.Background()

	registered, err := svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	userID := registered.User.ID

	updated, err := svc.UpdateProfile(ctx, userID, auth.UpdateProfileRequest{
		Name:  "Alexandra",
		Theme: "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alexandra", updated.User.Name)
	assert.Equal(t, "dark", updated.User.Theme)
	assert.Equal(t, "alex@example.com", updated.User.Email)
	assert.NotEmpty(t, updated.Token)

	_, err = svc.UpdateProfile(ctx, userID, auth.UpdateProfileRequest{Theme: "neon"})
	assert.ErrorIs(t, err, auth.ErrInvalidTheme)

	_, err = svc.UpdateProfile(ctx, userID, auth.UpdateProfileRequest{Password: "short"})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)

	assert.Len(t, store.users, 1)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	first, err := svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Alex", Email: "alex@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, auth.RegisterUserRequest{
		Name: "Blake", Email: "blake@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, first.User.ID, auth.UpdateProfileRequest{
		Email: "blake@example.com",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}
