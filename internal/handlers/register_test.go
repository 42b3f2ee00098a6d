package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/jwt"
	"github.com/actuallyyun/cs50w-project2-commerce/internal/services"
)

func TestRegisterPageHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewRegisterPageHandler(newTestRenderer(t))(w, httptest.NewRequest(http.MethodGet, "/register", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="confirmation"`)
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	rd := newTestRenderer(t)
	cookie := SessionCookie{MaxAge: time.Hour}

	form := url.Values{
		"username":     {"alice"},
		"email":        {"alice@example.com"},
		"password":     {"pw"},
		"confirmation": {"pw"},
	}

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody string
		expectCookie bool
	}{
		{
			name: "success logs the user in",
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pw", "pw").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusSeeOther,
			expectCookie: true,
		},
		{
			name: "passwords differ",
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pw", "pw").
					Return("", services.ErrPasswordMismatch)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Passwords must match.",
		},
		{
			name: "username taken",
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pw", "pw").
					Return("", services.ErrUsernameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Username already taken.",
		},
		{
			name: "missing fields",
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pw", "pw").
					Return("", services.ErrInvalidRegistration)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Username and password are required.",
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pw", "pw").
					Return("", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewRegisterHandler(mockSvc, rd, cookie)(w, newFormRequest(http.MethodPost, "/register", form))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}

			cookies := w.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, jwt.CookieName, cookies[0].Name)
				assert.Equal(t, "JWT_TOKEN", cookies[0].Value)
				assert.Equal(t, "/", w.Header().Get("Location"))
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestRegisterHandler_KeepsFormValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", "pw", "other").
		Return("", services.ErrPasswordMismatch)

	form := url.Values{
		"username":     {"alice"},
		"email":        {"alice@example.com"},
		"password":     {"pw"},
		"confirmation": {"other"},
	}
	w := httptest.NewRecorder()
	NewRegisterHandler(mockSvc, newTestRenderer(t), SessionCookie{})(w, newFormRequest(http.MethodPost, "/register", form))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `value="alice"`)
	assert.NotContains(t, w.Body.String(), `value="pw"`)
}
