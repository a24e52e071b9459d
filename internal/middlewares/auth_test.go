package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
	"github.com/sbilibin2017/fitness-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "a@x.com"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, auth *MockUserAuthenticator)
		expectedStatus   int
		expectedMessage  string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, auth *MockUserAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Not authorized, no token",
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, auth *MockUserAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "sometoken").Return(uuid.Nil, errors.New("invalid token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Not authorized, token failed",
		},
		{
			name: "DeletedUser",
			mockSetup: func(tok *MockTokener, auth *MockUserAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "validtoken").Return(userID, nil)
				auth.EXPECT().Authenticate(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Not authorized, user not found",
		},
		{
			name: "StoreError",
			mockSetup: func(tok *MockTokener, auth *MockUserAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "validtoken").Return(userID, nil)
				auth.EXPECT().Authenticate(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, auth *MockUserAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "validtoken").Return(userID, nil)
				auth.EXPECT().Authenticate(gomock.Any(), userID).Return(user, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tok := NewMockTokener(ctrl)
			auth := NewMockUserAuthenticator(ctrl)
			tt.mockSetup(tok, auth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, user, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tok, auth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedMessage != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	user, ok := UserFromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, user)

	_, ok = UserFromContext(WithUser(req.Context(), nil))
	assert.False(t, ok)
}
