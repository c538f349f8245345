// Package screens implements the user actions of every screen. Each action
// runs inside one session dispatch: it validates input, calls the external
// collaborator it needs and then mutates the session and navigates.
package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/otp"
	"github.com/myarea/app-myarea/internal/services"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/myarea/app-myarea/internal/utils"
	"go.uber.org/zap"
)

// Deps are the collaborators the screens call out to
type Deps struct {
	Auth     services.AuthBackend
	Profiles services.ProfileStore
	Help     services.HelpStore
	SOS      services.SOSDispatcher
	Clock    clock.Clock
	OTP      otp.Config
	// CallbackTimeout bounds backend calls made from timer callbacks, which
	// have no request context.
	CallbackTimeout time.Duration
}

// App runs screen actions against sessions
type App struct {
	deps   Deps
	logger *zap.Logger
}

// NewApp creates an App. Missing collaborators are replaced by the in-process
// implementations.
func NewApp(deps Deps) *App {
	if deps.OTP == (otp.Config{}) {
		deps.OTP = otp.DefaultConfig()
	}
	if deps.Auth == nil {
		deps.Auth = services.NewSimulatedAuthBackend(deps.OTP.MaxResends, 10*time.Minute)
	}
	if deps.Profiles == nil {
		deps.Profiles = services.NewMemoryProfileStore()
	}
	if deps.Help == nil {
		deps.Help = services.NewMemoryHelpStore()
	}
	if deps.SOS == nil {
		deps.SOS = services.NewLoggingSOSDispatcher()
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.CallbackTimeout <= 0 {
		deps.CallbackTimeout = 10 * time.Second
	}
	return &App{deps: deps, logger: logging.Logger.Named("screens")}
}

// ValidationError carries the per-field message keys of a rejected form
type ValidationError struct {
	Form   string
	Result *utils.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid fields", e.Form, len(e.Result.Errors))
}

func (e *ValidationError) Unwrap() error {
	return models.ErrValidationFailed
}

func invalid(form string, result *utils.ValidationResult) error {
	observability.ValidationFailures.WithLabelValues(form).Inc()
	return &ValidationError{Form: form, Result: result}
}

// IsValidationError extracts the validation result from err
func IsValidationError(err error) (*utils.ValidationResult, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Result, true
	}
	return nil, false
}

// requireScreen fails unless one of screens is current
func requireScreen(tx *session.Tx, screens ...models.Screen) error {
	current := tx.CurrentScreen()
	for _, s := range screens {
		if current == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", models.ErrWrongScreen, current)
}

// Navigate moves the session to screen. This is the generic entry point
// behind every link and tab that needs no further logic.
func (a *App) Navigate(ctx context.Context, st *session.State, screen models.Screen, params models.NavigationParams) error {
	_, _, cleanup := utils.TraceScreenAction(ctx, string(screen), "navigate")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		tx.NavigateTo(screen, params)
		return nil
	})
}

// Back moves the session to the fixed predecessor of its screen
func (a *App) Back(ctx context.Context, st *session.State) error {
	_, _, cleanup := utils.TraceScreenAction(ctx, "", "back")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		return tx.Back()
	})
}
