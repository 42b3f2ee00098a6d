package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	tests := []struct {
		name         string
		username     string
		password     string
		confirmation string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		expectRead   bool
		expectSave   bool
		expectJWT    bool
		wantErr      error
	}{
		{
			name:         "successful registration",
			username:     "alice",
			password:     "pass123",
			confirmation: "pass123",
			expectRead:   true,
			expectSave:   true,
			expectJWT:    true,
		},
		{
			name:         "passwords must match",
			username:     "alice",
			password:     "pass123",
			confirmation: "pass124",
			wantErr:      services.ErrPasswordMismatch,
		},
		{
			name:         "missing username",
			username:     "  ",
			password:     "pass123",
			confirmation: "pass123",
			wantErr:      services.ErrInvalidRegistration,
		},
		{
			name:     "missing password",
			username: "alice",
			wantErr:  services.ErrInvalidRegistration,
		},
		{
			name:         "username already taken",
			username:     "bob",
			password:     "pass123",
			confirmation: "pass123",
			existingUser: &models.UserDB{UserID: uuid.New(), Username: "bob"},
			expectRead:   true,
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:         "concurrent registration wins the unique key",
			username:     "dave",
			password:     "pass123",
			confirmation: "pass123",
			writerErr:    fmt.Errorf("%w: users_username_key", models.ErrUniqueViolation),
			expectRead:   true,
			expectSave:   true,
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:         "reader error",
			username:     "eve",
			password:     "pass123",
			confirmation: "pass123",
			readerErr:    errors.New("db error"),
			expectRead:   true,
			wantErr:      errors.New("db error"),
		},
		{
			name:         "writer error",
			username:     "carol",
			password:     "pass123",
			confirmation: "pass123",
			writerErr:    errors.New("save error"),
			expectRead:   true,
			expectSave:   true,
			wantErr:      errors.New("save error"),
		},
		{
			name:         "JWT generation error",
			username:     "frank",
			password:     "pass123",
			confirmation: "pass123",
			jwtErr:       errors.New("jwt error"),
			expectRead:   true,
			expectSave:   true,
			expectJWT:    true,
			wantErr:      errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectRead {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.existingUser, tt.readerErr)
			}
			if tt.expectSave {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *models.UserDB) error {
						assert.Equal(t, tt.username, user.Username)
						assert.NotEqual(t, uuid.Nil, user.UserID)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
						return tt.writerErr
					})
			}
			if tt.expectJWT {
				mockJWT.EXPECT().
					Generate(gomock.Any(), gomock.Any(), tt.username).
					Return("token123", tt.jwtErr)
			}

			token, err := svc.Register(context.Background(), tt.username, tt.username+"@example.com", tt.password, tt.confirmation)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockRevoker)

	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{UserID: uuid.New(), Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			user:      &models.UserDB{UserID: userID, Username: "dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Username).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(nil, nil, nil, mockRevoker)

	expiresAt := time.Now().Add(time.Hour)

	mockRevoker.EXPECT().
		Revoke(gomock.Any(), "jti-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
			assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
			return nil
		})
	assert.NoError(t, svc.Logout(context.Background(), "jti-1", expiresAt))

	mockRevoker.EXPECT().
		Revoke(gomock.Any(), "jti-2", gomock.Any()).
		Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), "jti-2", expiresAt), "redis down")
}
