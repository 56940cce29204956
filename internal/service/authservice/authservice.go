package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/restobonus/loyalty/internal/domain"
	"github.com/restobonus/loyalty/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Terminal, error)
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service authenticates POS terminals. Terminals are provisioned out of band,
// so there is no register path here.
type Service struct {
	terminalRepo Repo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	expiration   time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, expiration time.Duration) *Service {
	return &Service{
		terminalRepo: repo,
		hashService:  hashService,
		jwtService:   jwtService,
		expiration:   expiration,
	}
}

func (s *Service) Authenticate(ctx context.Context, login, secret string) (*domain.Terminal, error) {
	terminal, err := s.terminalRepo.FindByLogin(ctx, login)
	if err != nil || terminal == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.CompareSecret(terminal.SecretHash, secret); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("terminal authenticated", zap.String("login", login))
	return terminal, nil
}

func (s *Service) GenerateToken(terminalID, restaurantID int) (string, error) {
	expirationTime := time.Now().Add(s.expiration)

	token, err := s.jwtService.GenerateJWT(terminalID, restaurantID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
