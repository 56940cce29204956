package tiersync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/restobonus/loyalty/internal/config"
	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/pg"
	"github.com/restobonus/loyalty/internal/service/saleservice"
)

// syncPool runs jobs inline so tests see every effect before asserting.
type syncPool struct{}

func (syncPool) AddJob(ctx context.Context, job ReconcileJob) error { return job() }
func (syncPool) Close()                                             {}

func NewMock(t *testing.T) (*Service, *saleservice.MockAccountRepo, *saleservice.MockTierRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := saleservice.NewMockAccountRepo(ctrl)
	tierRepo := saleservice.NewMockTierRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	cfg := &config.Config{SyncInterval: time.Minute}
	service := New(cfg, accountRepo, tierRepo, txManager)
	service.workerPool = syncPool{}
	defer ctrl.Finish()
	return service, accountRepo, tierRepo, txManager
}

func testTiers() []domain.Tier {
	silver := 1000
	gold := 5000
	vip := 25000
	return []domain.Tier{
		{ID: 1, RestaurantID: 7, Name: "BRONZE", MinPoints: 0, MaxPoints: &silver, DiscountPercent: 5, Position: 0},
		{ID: 2, RestaurantID: 7, Name: "SILVER", MinPoints: 1000, MaxPoints: &gold, DiscountPercent: 10, Position: 1},
		{ID: 3, RestaurantID: 7, Name: "GOLD", MinPoints: 5000, MaxPoints: &vip, DiscountPercent: 15, Position: 2},
		{ID: 4, RestaurantID: 7, Name: "VIP", MinPoints: 25000, DiscountPercent: 25, Position: 3},
	}
}

func passthroughBegin(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		stale       domain.Account
		prepareMock func(accountRepo *saleservice.MockAccountRepo, tierRepo *saleservice.MockTierRepo)
		expectErr   bool
	}{
		{
			name:  "Downgrades account below its tier floor",
			stale: domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2},
			prepareMock: func(accountRepo *saleservice.MockAccountRepo, tierRepo *saleservice.MockTierRepo) {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(
					&domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2}, nil)
				tierRepo.EXPECT().ListByRestaurant(gomock.Any(), 7).Return(testTiers(), nil)
				accountRepo.EXPECT().SetTier(gomock.Any(), 1, 1).Return(nil)
				tierRepo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, event *domain.TierEvent) error {
						assert.Equal(t, "reconcile", event.Reason)
						assert.Equal(t, 2, event.OldTierID)
						assert.Equal(t, 1, event.NewTierID)
						assert.Nil(t, event.TransactionID)
						return nil
					})
			},
		},
		{
			name:  "Sale landed first, nothing to do",
			stale: domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2},
			prepareMock: func(accountRepo *saleservice.MockAccountRepo, tierRepo *saleservice.MockTierRepo) {
				// the re-read shows the balance back inside SILVER
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(
					&domain.Account{ID: 1, RestaurantID: 7, Balance: 1200, TierID: 2}, nil)
				tierRepo.EXPECT().ListByRestaurant(gomock.Any(), 7).Return(testTiers(), nil)
			},
		},
		{
			name:  "Blocked account left untouched",
			stale: domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2},
			prepareMock: func(accountRepo *saleservice.MockAccountRepo, tierRepo *saleservice.MockTierRepo) {
				// no SetTier, no AppendEvent: the account is frozen
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(
					&domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2, IsBlocked: true}, nil)
			},
		},
		{
			name:  "Account deleted since the sweep",
			stale: domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2},
			prepareMock: func(accountRepo *saleservice.MockAccountRepo, tierRepo *saleservice.MockTierRepo) {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
		},
		{
			name:  "Repo error propagates",
			stale: domain.Account{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2},
			prepareMock: func(accountRepo *saleservice.MockAccountRepo, tierRepo *saleservice.MockTierRepo) {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, tierRepo, txManager := NewMock(t)
			passthroughBegin(txManager)
			tt.prepareMock(accountRepo, tierRepo)

			err := service.reconcile(context.Background(), tt.stale)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAccounts(t *testing.T) {
	service, accountRepo, tierRepo, txManager := NewMock(t)
	passthroughBegin(txManager)

	mistiered := []domain.Account{
		{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2},
		{ID: 2, RestaurantID: 7, Balance: 6000, TierID: 2},
	}
	accountRepo.EXPECT().FindMistiered(gomock.Any(), uint32(1000)).Return(mistiered, nil)

	accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&mistiered[0], nil)
	accountRepo.EXPECT().GetForUpdate(gomock.Any(), 2).Return(&mistiered[1], nil)
	tierRepo.EXPECT().ListByRestaurant(gomock.Any(), 7).Return(testTiers(), nil).Times(2)
	accountRepo.EXPECT().SetTier(gomock.Any(), 1, 1).Return(nil)
	accountRepo.EXPECT().SetTier(gomock.Any(), 2, 3).Return(nil)
	tierRepo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service.processAccounts(context.Background())
}

func TestProcessAccounts_SkipsInFlight(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)

	inFlightAccounts.Store(1, struct{}{})
	defer inFlightAccounts.Delete(1)

	accountRepo.EXPECT().FindMistiered(gomock.Any(), uint32(1000)).Return(
		[]domain.Account{{ID: 1, RestaurantID: 7, Balance: 850, TierID: 2}}, nil)

	// no further calls expected: the account is already being reconciled
	service.processAccounts(context.Background())
}

func TestProcessAccounts_SweepError(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)

	accountRepo.EXPECT().FindMistiered(gomock.Any(), uint32(1000)).Return(nil, errors.New("database error"))

	service.processAccounts(context.Background())
}
