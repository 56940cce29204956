package service

import (
	"github.com/restobonus/loyalty/internal/handlers/accounts"
	"github.com/restobonus/loyalty/internal/handlers/auth"
	"github.com/restobonus/loyalty/internal/handlers/cards"
	"github.com/restobonus/loyalty/internal/handlers/sale"

	pkgauth "github.com/restobonus/loyalty/pkg/auth"

	"github.com/restobonus/loyalty/internal/config"
	"github.com/restobonus/loyalty/internal/pg"
	"github.com/restobonus/loyalty/internal/repo"
	authservice "github.com/restobonus/loyalty/internal/service/authservice"
	cardservice "github.com/restobonus/loyalty/internal/service/cardservice"
	saleservice "github.com/restobonus/loyalty/internal/service/saleservice"
)

type Services struct {
	AuthService    auth.Service
	SaleService    sale.Service
	CardService    cards.Service
	AccountService accounts.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	cardService := cardservice.New(cfg.CardSecret, cfg.TokenTTL)
	saleService := saleservice.New(repo.AccountRepo, repo.TransactionRepo, repo.TierRepo, repo.CardRepo, cardService, txManager, cfg.SaleTimeout)
	authService := authservice.New(repo.TerminalRepo, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret), cfg.JWTExpiration)

	return &Services{
		AuthService:    authService,
		SaleService:    saleService,
		CardService:    saleService,
		AccountService: saleService,
	}
}
