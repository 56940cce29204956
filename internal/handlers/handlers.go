package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/restobonus/loyalty/docs"
	accounthandlers "github.com/restobonus/loyalty/internal/handlers/accounts"
	authhandlers "github.com/restobonus/loyalty/internal/handlers/auth"
	cardhandlers "github.com/restobonus/loyalty/internal/handlers/cards"
	salehandlers "github.com/restobonus/loyalty/internal/handlers/sale"
	"github.com/restobonus/loyalty/internal/service"
	"github.com/restobonus/loyalty/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type SaleHandler interface {
	ProcessSale(w http.ResponseWriter, r *http.Request)
	ProcessRedemption(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	ValidateCard(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	Enroll(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	SaleHandler    SaleHandler
	CardHandler    CardHandler
	AccountHandler AccountHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		SaleHandler:    salehandlers.New(s.SaleService),
		CardHandler:    cardhandlers.New(s.CardService),
		AccountHandler: accounthandlers.New(s.AccountService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/terminal/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.TerminalAuth(h.jwtService))
			r.Post("/sale", h.SaleHandler.ProcessSale)
			r.Post("/redeem", h.SaleHandler.ProcessRedemption)
			r.Post("/cards/validate", h.CardHandler.ValidateCard)
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountHandler.Enroll)
				r.Get("/{accountID}", h.AccountHandler.GetAccount)
				r.Get("/{accountID}/transactions", h.AccountHandler.GetTransactions)
			})
		})
	})

	return r
}
