package cardservice

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	ReasonMalformed          = "malformed"
	ReasonBadSignature       = "bad-signature"
	ReasonExpired            = "expired"
	ReasonRestaurantMismatch = "restaurant-mismatch"
)

// TokenCheck is the outcome of validating a checkout credential. Validation
// never fails with an error: any defect in the presented value is a reason,
// not a crash.
type TokenCheck struct {
	Valid     bool
	Reason    string
	AccountID int
	IssuedAt  time.Time
}

// Service issues and validates the two checkout credentials: the signed QR
// token and the human-typeable six-digit code.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueQRToken returns "<accountID>:<restaurantID>:<epochMillis>.<hex-hmac>".
func (s *Service) IssueQRToken(accountID, restaurantID int) string {
	payload := fmt.Sprintf("%d:%d:%d", accountID, restaurantID, s.now().UnixMilli())
	return payload + "." + s.sign(payload)
}

// ValidateQRToken checks signature, age and restaurant binding. The signature
// comparison is constant-time.
func (s *Service) ValidateQRToken(token string, restaurantID int) TokenCheck {
	dot := strings.LastIndex(token, ".")
	if dot <= 0 || dot == len(token)-1 {
		return TokenCheck{Reason: ReasonMalformed}
	}
	payload, sigHex := token[:dot], token[dot+1:]

	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return TokenCheck{Reason: ReasonMalformed}
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return TokenCheck{Reason: ReasonBadSignature}
	}

	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return TokenCheck{Reason: ReasonMalformed}
	}
	accountID, errAcc := strconv.Atoi(parts[0])
	tokenRestaurantID, errRest := strconv.Atoi(parts[1])
	issuedMillis, errTS := strconv.ParseInt(parts[2], 10, 64)
	if errAcc != nil || errRest != nil || errTS != nil {
		return TokenCheck{Reason: ReasonMalformed}
	}

	issuedAt := time.UnixMilli(issuedMillis)
	if s.now().Sub(issuedAt) > s.ttl {
		return TokenCheck{Reason: ReasonExpired, AccountID: accountID, IssuedAt: issuedAt}
	}
	if tokenRestaurantID != restaurantID {
		return TokenCheck{Reason: ReasonRestaurantMismatch, AccountID: accountID, IssuedAt: issuedAt}
	}

	return TokenCheck{Valid: true, AccountID: accountID, IssuedAt: issuedAt}
}

// IssueCode generates a six-digit code from a CSPRNG, zero-padded.
func (s *Service) IssueCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("can't generate six-digit code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ValidateCodeFormat checks shape only; whether an active card carries the
// code is the store's question.
func (s *Service) ValidateCodeFormat(code string) TokenCheck {
	if len(code) != 6 {
		return TokenCheck{Reason: ReasonMalformed}
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return TokenCheck{Reason: ReasonMalformed}
		}
	}
	return TokenCheck{Valid: true}
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
