package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/restobonus/loyalty/docs"
	"github.com/restobonus/loyalty/internal/handlers/accounts"
	"github.com/restobonus/loyalty/internal/handlers/auth"
	"github.com/restobonus/loyalty/internal/handlers/cards"
	"github.com/restobonus/loyalty/internal/handlers/sale"
	"github.com/restobonus/loyalty/internal/service"
	pkgauth "github.com/restobonus/loyalty/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		SaleService:    sale.NewMockService(ctrl),
		CardService:    cards.NewMockService(ctrl),
		AccountService: accounts.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockSaleHandler := NewMockSaleHandler(ctrl)
	mockCardHandler := NewMockCardHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockSaleHandler.EXPECT().ProcessSale(gomock.Any(), gomock.Any()).AnyTimes()
	mockSaleHandler.EXPECT().ProcessRedemption(gomock.Any(), gomock.Any()).AnyTimes()
	mockCardHandler.EXPECT().ValidateCard(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().Enroll(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockAccountHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		SaleHandler:    mockSaleHandler,
		CardHandler:    mockCardHandler,
		AccountHandler: mockAccountHandler,
		jwtService:     pkgauth.NewJWTService("secret"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/terminal/login", http.StatusOK},
		{"POST", "/api/sale", http.StatusUnauthorized},
		{"POST", "/api/redeem", http.StatusUnauthorized},
		{"POST", "/api/cards/validate", http.StatusUnauthorized},
		{"POST", "/api/accounts", http.StatusUnauthorized},
		{"GET", "/api/accounts/1", http.StatusUnauthorized},
		{"GET", "/api/accounts/1/transactions", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_WithValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockSaleHandler := NewMockSaleHandler(ctrl)
	mockCardHandler := NewMockCardHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)

	jwtService := pkgauth.NewJWTService("secret")
	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		SaleHandler:    mockSaleHandler,
		CardHandler:    mockCardHandler,
		AccountHandler: mockAccountHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	mockSaleHandler.EXPECT().ProcessSale(gomock.Any(), gomock.Any()).Do(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

	token, err := jwtService.GenerateJWT(3, 7, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/sale", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
