package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	jwtInfra "resthouse/infras/jwt"
	jwtMocks "resthouse/infras/jwt/mocks"
	"resthouse/infras/otel/mocks"
	adminMocks "resthouse/internal/domains/admin/mocks"
	adminModel "resthouse/internal/domains/admin/model"
	"resthouse/internal/domains/auth/model/dto"
	"resthouse/internal/domains/auth/service"
	"resthouse/shared/failure"
	"resthouse/shared/password"
)

func testAdmin(t *testing.T, plainPassword string) adminModel.Admin {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	require.NoError(t, err)

	return adminModel.Admin{
		ID:       "admin-id",
		Name:     "Administrator",
		Email:    "admin@resthouse.dev",
		Password: hashed,
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	admin := testAdmin(t, "correct-password")

	tokenPair := &jwtInfra.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: admin.Email, Password: "correct-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), admin.ID, admin.Email, "admin").
					Return(tokenPair, nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@resthouse.dev", Password: "correct-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: admin.Email, Password: "wrong-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: admin.Email, Password: "correct-password"},
			setupMock: func() {
				inactive := admin
				inactive.Active = false

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "token generation failure",
			req:  dto.LoginRequest{Email: admin.Email, Password: "correct-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful refresh",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "valid-refresh-token").
					Return(&jwtInfra.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
		},
		{
			name: "invalid refresh token",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), gomock.Any()).
					Return(nil, jwtInfra.ErrInvalidToken)
			},
			wantErr:  true,
			wantCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access", res.AccessToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel, mockJWT)

	admin := testAdmin(t, "correct-password")

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct-password", NewPassword: "brand-new-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, ok := fields["password"].(string)
						assert.True(t, ok)
						assert.NoError(t, password.Verify("brand-new-password", hashed))

						return nil
					})
			},
		},
		{
			name: "admin not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "correct-password", NewPassword: "brand-new-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong-password", NewPassword: "brand-new-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, "admin-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
