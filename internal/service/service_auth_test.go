package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/config"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/store"
	"github.com/Emerydith/LuciaPach-StarWars-API/models"
)

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "starwars-catalog",
	TokenDuration: time.Hour,
}

func newTestAuthService(users *mockUserRepository) AuthService {
	return NewAuthService(users, testAuthConfig, logger.Nop())
}

func TestAuthService_Signup(t *testing.T) {
	leia := models.User{FirstName: "Leia", LastName: "Organa", Email: "leia@rebellion.org", Password: "alderaan"}

	t.Run("new email creates the account", func(t *testing.T) {
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return models.User{}, store.ErrNotFound
			},
			CreateFunc: func(ctx context.Context, user models.User) (models.User, error) {
				user.ID = 1
				return user, nil
			},
		}

		created, err := newTestAuthService(users).Signup(context.Background(), leia)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, leia.Email, created.Email)
	})

	t.Run("taken email reports already exists", func(t *testing.T) {
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return models.User{ID: 1, Email: email}, nil
			},
		}

		_, err := newTestAuthService(users).Signup(context.Background(), leia)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("insert conflict after pre-check still reports already exists", func(t *testing.T) {
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return models.User{}, store.ErrNotFound
			},
			CreateFunc: func(ctx context.Context, user models.User) (models.User, error) {
				return models.User{}, store.ErrAlreadyExists
			},
		}

		_, err := newTestAuthService(users).Signup(context.Background(), leia)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		_, err := newTestAuthService(&mockUserRepository{}).
			Signup(context.Background(), models.User{FirstName: "Leia"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{ID: 1, FirstName: "Leia", Email: "leia@rebellion.org", Password: "alderaan"}

	usersWith := func(user models.User, err error) *mockUserRepository {
		return &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return user, err
			},
		}
	}

	t.Run("correct credentials", func(t *testing.T) {
		user, err := newTestAuthService(usersWith(stored, nil)).
			Login(context.Background(), "leia@rebellion.org", "alderaan")
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := newTestAuthService(usersWith(models.User{}, store.ErrNotFound)).
			Login(context.Background(), "vader@empire.gov", "alderaan")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := newTestAuthService(usersWith(stored, nil)).
			Login(context.Background(), "leia@rebellion.org", "wrong")
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		_, err := newTestAuthService(usersWith(models.User{}, errors.New("connection refused"))).
			Login(context.Background(), "leia@rebellion.org", "alderaan")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), "leia@rebellion.org")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "leia@rebellion.org", parsed.Email)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseToken(context.Background(), "not.a.token")
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		otherIssuer := NewAuthService(&mockUserRepository{}, config.Auth{
			TokenSignKey:  testAuthConfig.TokenSignKey,
			TokenIssuer:   "death-star",
			TokenDuration: time.Hour,
		}, logger.Nop())

		token, err := otherIssuer.CreateToken(context.Background(), "leia@rebellion.org")
		require.NoError(t, err)

		_, err = svc.ParseToken(context.Background(), token.SignedString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}

func TestAuthService_CheckToken(t *testing.T) {
	t.Run("identity still maps to a user", func(t *testing.T) {
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return models.User{ID: 1, Email: email}, nil
			},
		}

		logged, err := newTestAuthService(users).CheckToken(context.Background(), "leia@rebellion.org")
		require.NoError(t, err)
		assert.True(t, logged)
	})

	t.Run("deleted account is no longer logged in", func(t *testing.T) {
		users := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return models.User{}, store.ErrNotFound
			},
		}

		logged, err := newTestAuthService(users).CheckToken(context.Background(), "leia@rebellion.org")
		require.NoError(t, err)
		assert.False(t, logged)
	})
}
