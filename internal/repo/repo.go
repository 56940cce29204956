package repo

import (
	"github.com/restobonus/loyalty/internal/pg"
	accountrepo "github.com/restobonus/loyalty/internal/repo/account-repo"
	cardrepo "github.com/restobonus/loyalty/internal/repo/card-repo"
	terminalrepo "github.com/restobonus/loyalty/internal/repo/terminal-repo"
	tierrepo "github.com/restobonus/loyalty/internal/repo/tier-repo"
	transactionrepo "github.com/restobonus/loyalty/internal/repo/transaction-repo"
	"github.com/restobonus/loyalty/internal/service/authservice"
	"github.com/restobonus/loyalty/internal/service/saleservice"
)

type Repositories struct {
	AccountRepo     saleservice.AccountRepo
	TransactionRepo saleservice.TransactionRepo
	TierRepo        saleservice.TierRepo
	CardRepo        saleservice.CardRepo
	TerminalRepo    authservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:     accountrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		TierRepo:        tierrepo.New(conn),
		CardRepo:        cardrepo.New(conn),
		TerminalRepo:    terminalrepo.New(conn),
	}
}
