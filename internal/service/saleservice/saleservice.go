package saleservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/internal/pg"
	"github.com/restobonus/loyalty/internal/service/cardservice"
	"github.com/restobonus/loyalty/internal/service/pointsservice"
	"github.com/restobonus/loyalty/internal/service/tierservice"
)

type AccountRepo interface {
	GetByID(ctx context.Context, accountID int) (*domain.Account, error)
	GetForUpdate(ctx context.Context, accountID int) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID, newBalance int) error
	SetTier(ctx context.Context, accountID, tierID int) error
	SetActiveCard(ctx context.Context, accountID, cardID int) error
	RegisterVisit(ctx context.Context, accountID int, at time.Time) error
	FindMistiered(ctx context.Context, limit uint32) ([]domain.Account, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	AppendDetail(ctx context.Context, detail *domain.BalanceDetail) error
	FindByIdempotencyKey(ctx context.Context, restaurantID int, key string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.Transaction, error)
}

type TierRepo interface {
	ListByRestaurant(ctx context.Context, restaurantID int) ([]domain.Tier, error)
	Upsert(ctx context.Context, tier *domain.Tier) error
	AppendEvent(ctx context.Context, event *domain.TierEvent) error
}

type CardRepo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	Invalidate(ctx context.Context, cardID, transactionID int) error
	FindActiveByAccount(ctx context.Context, accountID int) (*domain.Card, error)
	FindActiveByCode(ctx context.Context, restaurantID int, code string) (*domain.Card, error)
	FindActiveByToken(ctx context.Context, restaurantID int, token string) (*domain.Card, error)
}

// Cards is the credential side of cardservice used during rotation and
// checkout identification.
type Cards interface {
	IssueQRToken(accountID, restaurantID int) string
	ValidateQRToken(token string, restaurantID int) cardservice.TokenCheck
	IssueCode() (string, error)
	ValidateCodeFormat(code string) cardservice.TokenCheck
}

const maxSaleAmount = 1_000_000

var (
	ErrInvalidAmount         = errors.New("amount must be positive and at most 1000000 rubles")
	ErrInvalidRedemption     = errors.New("redeemed points must be positive")
	ErrInvalidIdempotencyKey = errors.New("idempotency key must be a uuid")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountBlocked        = errors.New("account is blocked")
	ErrDuplicateSale         = errors.New("sale with this idempotency key already processed")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrOperationFailed       = errors.New("operation failed")
)

const (
	tierEventSale      = "sale"
	tierEventEnroll    = "enroll"
	tierEventReconcile = "reconcile"
)

// Service coordinates a checkout event end to end: guards, pricing, the
// atomic ledger write, tier re-evaluation, card rotation and visit
// bookkeeping. Everything a single sale touches is committed in one
// transaction with the account row locked, so concurrent sales on one
// account serialize while different accounts proceed in parallel.
type Service struct {
	accountRepo AccountRepo
	txnRepo     TransactionRepo
	tierRepo    TierRepo
	cardRepo    CardRepo
	cards       Cards
	calculator  *pointsservice.Calculator
	resolver    *tierservice.Resolver
	txManager   pg.TXManager
	timeout     time.Duration
	now         func() time.Time
}

func New(accountRepo AccountRepo, txnRepo TransactionRepo, tierRepo TierRepo, cardRepo CardRepo, cards Cards, txManager pg.TXManager, timeout time.Duration) *Service {
	return &Service{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		tierRepo:    tierRepo,
		cardRepo:    cardRepo,
		cards:       cards,
		calculator:  pointsservice.NewCalculator(),
		resolver:    tierservice.NewResolver(),
		txManager:   txManager,
		timeout:     timeout,
		now:         time.Now,
	}
}

type SaleRequest struct {
	AccountID      int
	RestaurantID   int
	Amount         float64
	ChequeNumber   string
	CashierID      string
	IdempotencyKey string
}

type RedeemRequest struct {
	AccountID    int
	RestaurantID int
	Points       int
	ChequeNumber string
	CashierID    string
}

// Identity is the outcome of resolving a presented checkout credential.
type Identity struct {
	Valid           bool    `json:"valid"`
	Reason          string  `json:"reason,omitempty"`
	AccountID       int     `json:"account_id,omitempty"`
	Balance         int     `json:"balance,omitempty"`
	TierID          int     `json:"tier_id,omitempty"`
	TierName        string  `json:"tier_name,omitempty"`
	DiscountPercent float64 `json:"discount_percent,omitempty"`
}

// ProcessSale turns one purchase into points, a ledger entry, a possible tier
// upgrade and a fresh checkout credential. Validation and guards leave no
// trace; once the ledger write begins, either every effect commits or none.
func (s *Service) ProcessSale(ctx context.Context, req SaleRequest) (*domain.SaleResult, error) {
	if req.Amount <= 0 || req.Amount > maxSaleAmount {
		return nil, ErrInvalidAmount
	}
	var key *string
	if req.IdempotencyKey != "" {
		parsed, err := uuid.Parse(req.IdempotencyKey)
		if err != nil {
			return nil, ErrInvalidIdempotencyKey
		}
		k := parsed.String()
		key = &k
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var result *domain.SaleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if key != nil {
			existing, err := s.txnRepo.FindByIdempotencyKey(ctx, req.RestaurantID, *key)
			if err != nil {
				return err
			}
			if existing != nil {
				return ErrDuplicateSale
			}
		}

		account, err := s.lockAccount(ctx, req.AccountID, req.RestaurantID)
		if err != nil {
			return err
		}

		tiers, err := s.tierRepo.ListByRestaurant(ctx, req.RestaurantID)
		if err != nil {
			return err
		}
		currentTier, err := s.resolver.ByID(tiers, account.TierID)
		if err != nil {
			return err
		}

		points, err := s.calculator.Calculate(req.Amount, currentTier.DiscountPercent)
		if err != nil {
			return err
		}
		newBalance := account.Balance + points.Total

		newTier, err := s.resolver.Resolve(tiers, newBalance)
		if err != nil {
			return err
		}

		amount := req.Amount
		txn, err := s.txnRepo.Append(ctx, &domain.Transaction{
			AccountID:       account.ID,
			RestaurantID:    req.RestaurantID,
			Type:            domain.SaleTransaction,
			Amount:          &amount,
			BasePoints:      points.Base,
			BonusPoints:     points.Bonus,
			OldBalance:      account.Balance,
			NewBalance:      newBalance,
			OldTierID:       currentTier.ID,
			NewTierID:       newTier.ID,
			DiscountPercent: currentTier.DiscountPercent,
			ChequeNumber:    req.ChequeNumber,
			CashierID:       req.CashierID,
			IdempotencyKey:  key,
		})
		if err != nil {
			// a concurrent sale with the same key can slip past the lookup
			// above; the unique index catches it at insert
			if key != nil && isUniqueViolation(err) {
				return ErrDuplicateSale
			}
			return err
		}
		if err := s.txnRepo.AppendDetail(ctx, &domain.BalanceDetail{
			AccountID:     account.ID,
			TransactionID: txn.ID,
			BasePoints:    points.Base,
			BonusPoints:   points.Bonus,
			OldBalance:    account.Balance,
			NewBalance:    newBalance,
		}); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalance(ctx, account.ID, newBalance); err != nil {
			return err
		}

		if newTier.ID != currentTier.ID {
			if err := s.accountRepo.SetTier(ctx, account.ID, newTier.ID); err != nil {
				return err
			}
			if err := s.tierRepo.AppendEvent(ctx, &domain.TierEvent{
				AccountID:     account.ID,
				OldTierID:     currentTier.ID,
				NewTierID:     newTier.ID,
				Reason:        tierEventSale,
				TransactionID: &txn.ID,
			}); err != nil {
				return err
			}
		}

		card, err := s.rotateCard(ctx, account, txn.ID)
		if err != nil {
			return err
		}

		processedAt := s.now()
		if err := s.accountRepo.RegisterVisit(ctx, account.ID, processedAt); err != nil {
			return err
		}

		result = &domain.SaleResult{
			TransactionID: txn.ID,
			BasePoints:    points.Base,
			BonusPoints:   points.Bonus,
			TotalPoints:   points.Total,
			OldBalance:    account.Balance,
			NewBalance:    newBalance,
			OldTierID:     currentTier.ID,
			NewTierID:     newTier.ID,
			TierUpgraded:  newTier.ID != currentTier.ID,
			QRToken:       card.QRToken,
			Code:          card.Code,
			ProcessedAt:   processedAt,
		}
		return nil
	})
	if err != nil {
		return nil, s.classify(err)
	}

	zap.L().Info("sale processed",
		zap.Int("account_id", req.AccountID),
		zap.Int("transaction_id", result.TransactionID),
		zap.Int("total_points", result.TotalPoints),
	)
	return result, nil
}

// ProcessRedemption spends points for a discount. The ledger row carries
// negative base points so new_balance = old_balance + base + bonus holds for
// every row type. Tier is left alone at checkout; the reconciler applies any
// downgrade later.
func (s *Service) ProcessRedemption(ctx context.Context, req RedeemRequest) (*domain.SaleResult, error) {
	if req.Points <= 0 {
		return nil, ErrInvalidRedemption
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var result *domain.SaleResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.lockAccount(ctx, req.AccountID, req.RestaurantID)
		if err != nil {
			return err
		}
		if account.Balance < req.Points {
			return ErrInsufficientBalance
		}

		tiers, err := s.tierRepo.ListByRestaurant(ctx, req.RestaurantID)
		if err != nil {
			return err
		}
		currentTier, err := s.resolver.ByID(tiers, account.TierID)
		if err != nil {
			return err
		}

		newBalance := account.Balance - req.Points
		txn, err := s.txnRepo.Append(ctx, &domain.Transaction{
			AccountID:       account.ID,
			RestaurantID:    req.RestaurantID,
			Type:            domain.RedemptionTransaction,
			BasePoints:      -req.Points,
			BonusPoints:     0,
			OldBalance:      account.Balance,
			NewBalance:      newBalance,
			OldTierID:       currentTier.ID,
			NewTierID:       currentTier.ID,
			DiscountPercent: currentTier.DiscountPercent,
			ChequeNumber:    req.ChequeNumber,
			CashierID:       req.CashierID,
		})
		if err != nil {
			return err
		}
		if err := s.txnRepo.AppendDetail(ctx, &domain.BalanceDetail{
			AccountID:     account.ID,
			TransactionID: txn.ID,
			BasePoints:    -req.Points,
			BonusPoints:   0,
			OldBalance:    account.Balance,
			NewBalance:    newBalance,
		}); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalance(ctx, account.ID, newBalance); err != nil {
			return err
		}

		card, err := s.rotateCard(ctx, account, txn.ID)
		if err != nil {
			return err
		}

		processedAt := s.now()
		if err := s.accountRepo.RegisterVisit(ctx, account.ID, processedAt); err != nil {
			return err
		}

		result = &domain.SaleResult{
			TransactionID: txn.ID,
			BasePoints:    -req.Points,
			TotalPoints:   -req.Points,
			OldBalance:    account.Balance,
			NewBalance:    newBalance,
			OldTierID:     currentTier.ID,
			NewTierID:     currentTier.ID,
			QRToken:       card.QRToken,
			Code:          card.Code,
			ProcessedAt:   processedAt,
		}
		return nil
	})
	if err != nil {
		return nil, s.classify(err)
	}

	zap.L().Info("redemption processed",
		zap.Int("account_id", req.AccountID),
		zap.Int("transaction_id", result.TransactionID),
		zap.Int("points", req.Points),
	)
	return result, nil
}

// Enroll creates the (guest, restaurant) account with its first active card.
func (s *Service) Enroll(ctx context.Context, guestID, restaurantID int) (*domain.Account, *domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		account *domain.Account
		card    *domain.Card
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tiers, err := s.tierRepo.ListByRestaurant(ctx, restaurantID)
		if err != nil {
			return err
		}
		baseTier, err := s.resolver.Resolve(tiers, 0)
		if err != nil {
			return err
		}

		account, err = s.accountRepo.Create(ctx, &domain.Account{
			GuestID:      guestID,
			RestaurantID: restaurantID,
			Balance:      0,
			TierID:       baseTier.ID,
		})
		if err != nil {
			return err
		}

		card, err = s.issueCard(ctx, account)
		return err
	})
	if err != nil {
		return nil, nil, s.classify(err)
	}

	zap.L().Info("account enrolled", zap.Int("account_id", account.ID), zap.Int("guest_id", guestID))
	return account, card, nil
}

// IdentifyCard resolves a presented QR token or six-digit code to the guest's
// account. Credential defects are reported as reasons, never as errors.
func (s *Service) IdentifyCard(ctx context.Context, restaurantID int, qrToken, code string) (*Identity, error) {
	var card *domain.Card

	switch {
	case qrToken != "":
		check := s.cards.ValidateQRToken(qrToken, restaurantID)
		if !check.Valid {
			return &Identity{Reason: check.Reason}, nil
		}
		found, err := s.cardRepo.FindActiveByToken(ctx, restaurantID, qrToken)
		if err != nil {
			return nil, err
		}
		if found == nil {
			// signature is fine but the card was rotated away
			return &Identity{Reason: "not-active"}, nil
		}
		card = found
	case code != "":
		check := s.cards.ValidateCodeFormat(code)
		if !check.Valid {
			return &Identity{Reason: check.Reason}, nil
		}
		found, err := s.cardRepo.FindActiveByCode(ctx, restaurantID, code)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return &Identity{Reason: "unknown-code"}, nil
		}
		card = found
	default:
		return &Identity{Reason: cardservice.ReasonMalformed}, nil
	}

	account, err := s.accountRepo.GetByID(ctx, card.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return &Identity{Reason: "unknown-account"}, nil
	}
	if account.IsBlocked {
		return &Identity{Reason: "account-blocked"}, nil
	}

	tiers, err := s.tierRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	tier, err := s.resolver.ByID(tiers, account.TierID)
	if err != nil {
		return nil, err
	}

	return &Identity{
		Valid:           true,
		AccountID:       account.ID,
		Balance:         account.Balance,
		TierID:          tier.ID,
		TierName:        tier.Name,
		DiscountPercent: tier.DiscountPercent,
	}, nil
}

func (s *Service) GetAccount(ctx context.Context, restaurantID, accountID int) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil || account.RestaurantID != restaurantID {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) ListTransactions(ctx context.Context, restaurantID, accountID int) ([]domain.Transaction, error) {
	if _, err := s.GetAccount(ctx, restaurantID, accountID); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) lockAccount(ctx context.Context, accountID, restaurantID int) (*domain.Account, error) {
	account, err := s.accountRepo.GetForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.RestaurantID != restaurantID {
		return nil, ErrAccountNotFound
	}
	if account.IsBlocked {
		return nil, fmt.Errorf("%w: %s", ErrAccountBlocked, account.BlockReason)
	}
	return account, nil
}

// rotateCard retires the current credential and issues the next one inside
// the same transaction, so no reader ever sees zero or two active cards.
func (s *Service) rotateCard(ctx context.Context, account *domain.Account, transactionID int) (*domain.Card, error) {
	active, err := s.cardRepo.FindActiveByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		if err := s.cardRepo.Invalidate(ctx, active.ID, transactionID); err != nil {
			return nil, err
		}
	}
	return s.issueCard(ctx, account)
}

func (s *Service) issueCard(ctx context.Context, account *domain.Account) (*domain.Card, error) {
	code, err := s.cards.IssueCode()
	if err != nil {
		return nil, err
	}
	card, err := s.cardRepo.Create(ctx, &domain.Card{
		AccountID:    account.ID,
		RestaurantID: account.RestaurantID,
		QRToken:      s.cards.IssueQRToken(account.ID, account.RestaurantID),
		Code:         code,
	})
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.SetActiveCard(ctx, account.ID, card.ID); err != nil {
		return nil, err
	}
	return card, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// classify lets guard and validation sentinels through untouched and folds
// everything else into ErrOperationFailed with the cause preserved.
func (s *Service) classify(err error) error {
	for _, guard := range []error{
		ErrAccountNotFound, ErrAccountBlocked, ErrDuplicateSale, ErrInsufficientBalance,
		pointsservice.ErrNegativeAmount, pointsservice.ErrInvalidDiscount,
		tierservice.ErrInvalidTierConfig,
	} {
		if errors.Is(err, guard) {
			return err
		}
	}
	zap.L().Error("operation rolled back", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrOperationFailed, err)
}
