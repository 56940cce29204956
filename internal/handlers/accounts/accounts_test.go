package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/dto"
	saleservice "github.com/restobonus/loyalty/internal/service/saleservice"
	"github.com/restobonus/loyalty/pkg/auth"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, url, body, accountID string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	ctx := context.WithValue(req.Context(), auth.TerminalIDKey, 3)
	ctx = context.WithValue(ctx, auth.RestaurantIDKey, 7)
	if accountID != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("accountID", accountID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return req.WithContext(ctx)
}

func TestEnrollHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.EnrollResponseDTO
	}{
		{
			name: "Successful enrollment",
			body: `{"guest_id":10}`,
			prepareMock: func() {
				service.EXPECT().Enroll(gomock.Any(), 10, 7).Return(
					&domain.Account{ID: 1, GuestID: 10, RestaurantID: 7, TierID: 1},
					&domain.Card{ID: 5, QRToken: "tok", Code: "042137"},
					nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &dto.EnrollResponseDTO{AccountID: 1, TierID: 1, QRToken: "tok", Code: "042137"},
		},
		{
			name:         "Missing guest id",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Guest already enrolled",
			body: `{"guest_id":10}`,
			prepareMock: func() {
				service.EXPECT().Enroll(gomock.Any(), 10, 7).Return(nil, nil, errors.New("duplicate"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := httptest.NewRecorder()
			handler.Enroll(rec, authedRequest("POST", "/api/accounts", tt.body, ""))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				var got dto.EnrollResponseDTO
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	handler, service := NewMock(t)
	lastVisit := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		accountID    string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.AccountResponseDTO
	}{
		{
			name:      "Existing account",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), 7, 1).Return(
					&domain.Account{ID: 1, GuestID: 10, Balance: 1050, TierID: 2, VisitsCount: 3, LastVisitAt: &lastVisit}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.AccountResponseDTO{
				ID: 1, GuestID: 10, Balance: 1050, TierID: 2, VisitsCount: 3, LastVisitAt: "2024-06-01T19:30:00Z",
			},
		},
		{
			name:      "Unknown account",
			accountID: "99",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), 7, 99).Return(nil, saleservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad account id",
			accountID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Internal error",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().GetAccount(gomock.Any(), 7, 1).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := httptest.NewRecorder()
			handler.GetAccount(rec, authedRequest("GET", "/api/accounts/"+tt.accountID, "", tt.accountID))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				var got dto.AccountResponseDTO
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)
	amount := 1000.0

	tests := []struct {
		name         string
		accountID    string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:      "Ledger with rows",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), 7, 1).Return([]domain.Transaction{
					{ID: 12, Type: domain.RedemptionTransaction, BasePoints: -200, OldBalance: 1050, NewBalance: 850, CreatedAt: createdAt},
					{ID: 11, Type: domain.SaleTransaction, Amount: &amount, BasePoints: 1000, BonusPoints: 50, NewBalance: 1050, CreatedAt: createdAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:      "Empty ledger",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), 7, 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:      "Unknown account",
			accountID: "99",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), 7, 99).Return(nil, saleservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rec := httptest.NewRecorder()
			handler.GetTransactions(rec, authedRequest("GET", "/api/accounts/"+tt.accountID+"/transactions", "", tt.accountID))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedLen > 0 {
				var got []dto.TransactionResponseDTO
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Len(t, got, tt.expectedLen)
				assert.Equal(t, 12, got[0].ID)
			}
		})
	}
}
