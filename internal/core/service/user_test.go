package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port/mock"
	"github.com/hanifwid/printmart/internal/core/service"
	"github.com/hanifwid/printmart/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareUserMocks func(repo *mock.MockRepository, ts *mock.MockTokenService)

func TestUserService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashedPass, _ := utils.HashPassword("secret-pass")
	user := domain.User{
		ID:       1,
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: hashedPass,
		Role:     domain.RoleCustomer,
	}

	tests := []struct {
		name      string
		user      domain.User
		mock      prepareUserMocks
		expError  error
		expResult *domain.User
	}{
		{
			name: "register good",
			user: domain.User{Name: user.Name, Email: user.Email, Password: "secret-pass"},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.Equal(t, domain.RoleCustomer, u.Role)
						return &user, nil
					})
			},
			expResult: &user,
		},
		{
			name: "email already taken",
			user: domain.User{Name: user.Name, Email: user.Email, Password: "secret-pass"},
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrConflictingData,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewUserService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestUserService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashedPass, _ := utils.HashPassword("secret-pass")
	user := domain.User{
		ID:       1,
		Email:    "budi@example.com",
		Password: hashedPass,
		Role:     domain.RoleCustomer,
	}

	tests := []struct {
		name     string
		password string
		mock     prepareUserMocks
		expToken string
		expError error
	}{
		{
			name:     "login good",
			password: "secret-pass",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
				ts.EXPECT().CreateToken(&user).Return("token", nil)
			},
			expToken: "token",
		},
		{
			name:     "wrong password",
			password: "hacker",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "secret-pass",
			mock: func(repo *mock.MockRepository, ts *mock.MockTokenService) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo, ts)

			s, err := service.NewUserService(repo, ts, logger)
			assert.NoError(t, err)

			token, err := s.LoginUser(context.Background(), user.Email, test.password)

			assert.Equal(t, test.expToken, token)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestUserService_UpdateProfileKeepsCredentials(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	current := domain.User{
		ID:       1,
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "hashed",
		Role:     domain.RoleAdmin,
	}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)

	repo.EXPECT().ReadUser(gomock.Any(), current.ID).Return(&current, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, current.Role, u.Role)
			assert.Equal(t, current.Email, u.Email)
			assert.Equal(t, current.Password, u.Password)
			assert.Equal(t, "Budi Santoso", u.Name)
			return u, nil
		})

	s, err := service.NewUserService(repo, ts, logger)
	assert.NoError(t, err)

	updated, err := s.UpdateProfile(context.Background(), &domain.User{
		ID:    current.ID,
		Name:  "Budi Santoso",
		Email: "spoofed@example.com",
		Role:  domain.RoleCustomer,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)
}
