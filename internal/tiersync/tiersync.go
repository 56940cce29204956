package tiersync

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/restobonus/loyalty/internal/config"
	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/pg"
	"github.com/restobonus/loyalty/internal/service/saleservice"
	"github.com/restobonus/loyalty/internal/service/tierservice"
)

var inFlightAccounts sync.Map

// Service is the background reconciler. Sales only ever move tiers up, and
// redemptions don't touch them at all, so accounts drift below their tier
// floor over time. The reconciler sweeps for accounts whose balance fell
// outside the stored tier range and moves them to the right one.
type Service struct {
	accountRepo  saleservice.AccountRepo
	tierRepo     saleservice.TierRepo
	txManager    pg.TXManager
	resolver     *tierservice.Resolver
	limit        uint32
	workerPool   WorkerPoolI
	syncInterval time.Duration
}

func New(cfg *config.Config, accountRepo saleservice.AccountRepo, tierRepo saleservice.TierRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:  accountRepo,
		tierRepo:     tierRepo,
		txManager:    txManager,
		resolver:     tierservice.NewResolver(),
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		syncInterval: cfg.SyncInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Tier reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processAccounts(ctx)
		}
	}
}

func (s *Service) processAccounts(ctx context.Context) {
	accounts, err := s.accountRepo.FindMistiered(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch accounts for reconcile", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, account := range accounts {
		account := account

		if _, loaded := inFlightAccounts.LoadOrStore(account.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddJob(ctx, func() error {
				defer inFlightAccounts.Delete(account.ID)
				return s.reconcile(ctx, account)
			})
			if err != nil {
				inFlightAccounts.Delete(account.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling accounts", zap.Error(err))
	}
}

// reconcile re-reads the account under lock: a sale may have landed between
// the sweep and this task, in which case the stored tier may already be right.
func (s *Service) reconcile(ctx context.Context, stale domain.Account) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, stale.ID)
		if err != nil {
			return err
		}
		if account == nil {
			return nil
		}
		// blocked accounts are frozen as-is until unblocked, same as checkout
		if account.IsBlocked {
			return nil
		}

		tiers, err := s.tierRepo.ListByRestaurant(ctx, account.RestaurantID)
		if err != nil {
			return err
		}
		target, err := s.resolver.Resolve(tiers, account.Balance)
		if err != nil {
			return fmt.Errorf("can't resolve tier for account %d: %w", account.ID, err)
		}
		if target.ID == account.TierID {
			return nil
		}

		if err := s.accountRepo.SetTier(ctx, account.ID, target.ID); err != nil {
			return err
		}
		if err := s.tierRepo.AppendEvent(ctx, &domain.TierEvent{
			AccountID: account.ID,
			OldTierID: account.TierID,
			NewTierID: target.ID,
			Reason:    "reconcile",
		}); err != nil {
			return err
		}

		zap.L().Info("Account tier reconciled",
			zap.Int("account_id", account.ID),
			zap.Int("old_tier_id", account.TierID),
			zap.Int("new_tier_id", target.ID),
		)
		return nil
	})
}
