package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/restobonus/loyalty/internal/domain"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectToken  bool
	}{
		{
			name: "Successful login",
			body: `{"login":"till-1","secret":"s3cret-till"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "till-1", "s3cret-till").
					Return(&domain.Terminal{ID: 3, RestaurantID: 7, Login: "till-1"}, nil)
				service.EXPECT().GenerateToken(3, 7).Return("jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Wrong credentials",
			body: `{"login":"till-1","secret":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "till-1", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token generation failure",
			body: `{"login":"till-1","secret":"s3cret-till"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "till-1", "s3cret-till").
					Return(&domain.Terminal{ID: 3, RestaurantID: 7}, nil)
				service.EXPECT().GenerateToken(3, 7).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/terminal/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectToken {
				assert.Equal(t, "Bearer jwt-token", rec.Header().Get("Authorization"))
			}
		})
	}
}
