package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestSimulatedBackend(maxResends int) *SimulatedAuthBackend {
	b := NewSimulatedAuthBackend(maxResends, time.Minute)
	b.cost = bcrypt.MinCost
	return b
}

func TestSimulatedAuthBackend_VerifyAcceptsAnySixDigits(t *testing.T) {
	b := newTestSimulatedBackend(3)
	ctx := context.Background()

	require.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "9876543210", "Secret@123"))

	tests := []struct {
		code string
		want bool
	}{
		{"000000", true},
		{"482913", true},
		{"12345", false},
		{"1234567", false},
		{"12a456", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ok, err := b.VerifyOTP(ctx, "9876543210", tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSimulatedAuthBackend_SignupRemembersPassword(t *testing.T) {
	b := newTestSimulatedBackend(3).WithPasswordCheck()
	ctx := context.Background()

	require.NoError(t, b.SendOTP(ctx, models.AuthFlowSignup, "user@example.com", "Secret@123"))
	ok, err := b.VerifyOTP(ctx, "User@Example.com", "111111")
	require.NoError(t, err)
	require.True(t, ok)

	err = b.SendOTP(ctx, models.AuthFlowLogin, "user@example.com", "Other@1234")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	assert.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "user@example.com", "Secret@123"))
}

func TestSimulatedAuthBackend_AnyPasswordAcceptedByDefault(t *testing.T) {
	b := newTestSimulatedBackend(3)
	ctx := context.Background()

	require.NoError(t, b.SendOTP(ctx, models.AuthFlowSignup, "user@example.com", "Secret@123"))
	_, err := b.VerifyOTP(ctx, "user@example.com", "111111")
	require.NoError(t, err)

	assert.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "user@example.com", "Other@1234"))
}

func TestSimulatedAuthBackend_UnknownLoginAccepted(t *testing.T) {
	b := newTestSimulatedBackend(3)

	assert.NoError(t, b.SendOTP(context.Background(), models.AuthFlowLogin, "someone@example.com", "Whatever@1"))
}

func TestSimulatedAuthBackend_Resend(t *testing.T) {
	b := newTestSimulatedBackend(2)
	ctx := context.Background()

	require.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "9876543210", "Secret@123"))
	assert.NoError(t, b.ResendOTP(ctx, "9876543210"))
	assert.NoError(t, b.ResendOTP(ctx, "9876543210"))
	assert.ErrorIs(t, b.ResendOTP(ctx, "9876543210"), models.ErrResendLimitReached)
}

func TestSimulatedAuthBackend_VerifyClearsChallenge(t *testing.T) {
	b := newTestSimulatedBackend(3)
	ctx := context.Background()

	require.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "9876543210", "Secret@123"))
	_, err := b.VerifyOTP(ctx, "9876543210", "123456")
	require.NoError(t, err)

	_, pending := b.pending.Get("9876543210")
	assert.False(t, pending)
}

func TestSimulatedAuthBackend_ResendAfterExpiry(t *testing.T) {
	b := NewSimulatedAuthBackend(3, 50*time.Millisecond)
	b.cost = bcrypt.MinCost
	ctx := context.Background()

	require.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "9876543210", "Secret@123"))
	time.Sleep(120 * time.Millisecond)

	require.NoError(t, b.ResendOTP(ctx, "9876543210"))
	v, ok := b.pending.Get("9876543210")
	require.True(t, ok)
	assert.Equal(t, 1, v.(pendingChallenge).resends)
}

func TestSimulatedAuthBackend_ConcurrentResends(t *testing.T) {
	const (
		workers = 8
		calls   = 50
		limit   = 100
	)
	b := newTestSimulatedBackend(limit)
	ctx := context.Background()
	require.NoError(t, b.SendOTP(ctx, models.AuthFlowLogin, "9876543210", "Secret@123"))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < calls; j++ {
				if b.ResendOTP(ctx, "9876543210") == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	// every accepted resend is counted once and the limit holds
	assert.Equal(t, limit, accepted)
	v, ok := b.pending.Get("9876543210")
	require.True(t, ok)
	assert.Equal(t, limit, v.(pendingChallenge).resends)
}

func TestIsSixDigits(t *testing.T) {
	assert.True(t, isSixDigits("012345"))
	assert.False(t, isSixDigits("01234"))
	assert.False(t, isSixDigits("０１２３４５"))
}

func newAuthServer(t *testing.T, handler http.HandlerFunc) *HTTPAuthBackend {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPAuthBackend(server.URL, 2*time.Second)
}

func TestHTTPAuthBackend_SendOTP(t *testing.T) {
	var got sendOTPBody
	b := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/otp/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	})

	err := b.SendOTP(context.Background(), models.AuthFlowSignup, " User@Example.com ", "Secret@123")

	require.NoError(t, err)
	assert.Equal(t, models.AuthFlowSignup, got.Flow)
	assert.Equal(t, "user@example.com", got.Identifier)
	assert.Equal(t, "Secret@123", got.Password)
}

func TestHTTPAuthBackend_VerifyOTP(t *testing.T) {
	b := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body verifyOTPBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(verifyOTPResult{Valid: body.Code == "123456"})
	})

	ok, err := b.VerifyOTP(context.Background(), "9876543210", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.VerifyOTP(context.Background(), "9876543210", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPAuthBackend_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, models.ErrInvalidCredentials},
		{"too many requests", http.StatusTooManyRequests, models.ErrResendLimitReached},
		{"not found", http.StatusNotFound, models.ErrNoChallenge},
		{"server error", http.StatusInternalServerError, models.ErrAuthBackendUnavailable},
		{"bad request", http.StatusBadRequest, models.ErrAuthBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAuthServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			assert.ErrorIs(t, b.ResendOTP(context.Background(), "9876543210"), tt.want)
		})
	}
}

func TestHTTPAuthBackend_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	b := NewHTTPAuthBackend(url, time.Second)
	err := b.SendOTP(context.Background(), models.AuthFlowLogin, "9876543210", "Secret@123")

	assert.ErrorIs(t, err, models.ErrAuthBackendUnavailable)
}
