package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/restobonus/loyalty/internal/config"
	"github.com/restobonus/loyalty/internal/pg"
	"github.com/restobonus/loyalty/internal/repo"
	"github.com/restobonus/loyalty/internal/service/authservice"
	"github.com/restobonus/loyalty/internal/service/saleservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		AccountRepo:     saleservice.NewMockAccountRepo(ctrl),
		TransactionRepo: saleservice.NewMockTransactionRepo(ctrl),
		TierRepo:        saleservice.NewMockTierRepo(ctrl),
		CardRepo:        saleservice.NewMockCardRepo(ctrl),
		TerminalRepo:    authservice.NewMockRepo(ctrl),
	}

	cfg := &config.Config{
		CardSecret:    "card-secret",
		TokenTTL:      24 * time.Hour,
		SaleTimeout:   5 * time.Second,
		JWTSecret:     "jwt-secret",
		JWTExpiration: 12 * time.Hour,
	}

	services := New(cfg, repos, pg.NewMockTXManager(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.SaleService)
	assert.NotNil(t, services.CardService)
	assert.NotNil(t, services.AccountService)
}
