package services

import (
	"context"
	"sync"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/utils"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthBackend delivers and checks one-time codes
type AuthBackend interface {
	// SendOTP starts a challenge for identifier. Login attempts may be
	// rejected with models.ErrInvalidCredentials.
	SendOTP(ctx context.Context, flow models.AuthFlow, identifier, password string) error
	// VerifyOTP reports whether code answers the pending challenge
	VerifyOTP(ctx context.Context, identifier, code string) (bool, error)
	// ResendOTP delivers a new code for the pending challenge
	ResendOTP(ctx context.Context, identifier string) error
}

type pendingChallenge struct {
	flow         models.AuthFlow
	passwordHash []byte
	resends      int
}

// SimulatedAuthBackend accepts any credentials and any six-digit code.
// Accounts created through signup are remembered by password hash; with
// WithPasswordCheck a later login with another password is refused.
type SimulatedAuthBackend struct {
	pending    *cache.Cache
	maxResends int
	cost       int

	// mu guards accounts, checkPasswords and every read-modify-write of a
	// pending challenge
	mu             sync.RWMutex
	accounts       map[string][]byte
	checkPasswords bool

	logger *zap.Logger
}

// NewSimulatedAuthBackend creates the in-process backend. Pending challenges
// expire after challengeTTL.
func NewSimulatedAuthBackend(maxResends int, challengeTTL time.Duration) *SimulatedAuthBackend {
	return &SimulatedAuthBackend{
		pending:    cache.New(challengeTTL, challengeTTL),
		maxResends: maxResends,
		cost:       bcrypt.DefaultCost,
		accounts:   make(map[string][]byte),
		logger:     logging.Logger.Named("auth_backend"),
	}
}

// WithPasswordCheck makes login refuse a password that differs from the one
// the identifier signed up with
func (b *SimulatedAuthBackend) WithPasswordCheck() *SimulatedAuthBackend {
	b.mu.Lock()
	b.checkPasswords = true
	b.mu.Unlock()
	return b
}

// SendOTP records a pending challenge for identifier
func (b *SimulatedAuthBackend) SendOTP(ctx context.Context, flow models.AuthFlow, identifier, password string) error {
	_, span, cleanup := utils.TraceExternalService(ctx, "auth_backend", "send_otp")
	defer cleanup()

	id := utils.NormalizeIdentifier(identifier)

	if flow == models.AuthFlowLogin {
		b.mu.RLock()
		hash, known := b.accounts[id]
		check := b.checkPasswords
		b.mu.RUnlock()
		if check && known && bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
			utils.RecordErrorInSpan(span, models.ErrInvalidCredentials, nil)
			observability.OTPEvents.WithLabelValues("rejected_credentials").Inc()
			return models.ErrInvalidCredentials
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.pending.Set(id, pendingChallenge{flow: flow, passwordHash: hash}, cache.DefaultExpiration)
	b.mu.Unlock()

	observability.OTPEvents.WithLabelValues("sent").Inc()
	b.logger.Info("otp sent",
		zap.String("flow", string(flow)),
		zap.String("identifier", observability.MaskIdentifier(id)))
	return nil
}

// VerifyOTP accepts any six-digit code
func (b *SimulatedAuthBackend) VerifyOTP(ctx context.Context, identifier, code string) (bool, error) {
	_, _, cleanup := utils.TraceExternalService(ctx, "auth_backend", "verify_otp")
	defer cleanup()

	if !isSixDigits(code) {
		observability.OTPEvents.WithLabelValues("rejected").Inc()
		return false, nil
	}

	id := utils.NormalizeIdentifier(identifier)
	b.mu.Lock()
	if v, ok := b.pending.Get(id); ok {
		challenge := v.(pendingChallenge)
		if challenge.flow == models.AuthFlowSignup {
			b.accounts[id] = challenge.passwordHash
		}
		b.pending.Delete(id)
	}
	b.mu.Unlock()

	observability.OTPEvents.WithLabelValues("verified").Inc()
	return true, nil
}

// ResendOTP counts a resend against the pending challenge. A challenge that
// already expired is started again, since the code entry on screen outlives it.
func (b *SimulatedAuthBackend) ResendOTP(ctx context.Context, identifier string) error {
	_, _, cleanup := utils.TraceExternalService(ctx, "auth_backend", "resend_otp")
	defer cleanup()

	id := utils.NormalizeIdentifier(identifier)

	b.mu.Lock()
	var challenge pendingChallenge
	if v, ok := b.pending.Get(id); ok {
		challenge = v.(pendingChallenge)
	} else {
		b.logger.Debug("resending for an expired challenge",
			zap.String("identifier", observability.MaskIdentifier(id)))
	}
	if challenge.resends >= b.maxResends {
		b.mu.Unlock()
		return models.ErrResendLimitReached
	}
	challenge.resends++
	b.pending.Set(id, challenge, cache.DefaultExpiration)
	b.mu.Unlock()

	observability.OTPEvents.WithLabelValues("resent").Inc()
	b.logger.Info("otp resent",
		zap.String("identifier", observability.MaskIdentifier(id)),
		zap.Int("attempt", challenge.resends))
	return nil
}

func isSixDigits(code string) bool {
	if len(code) != models.OTPCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
