package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/myarea/app-myarea/internal/i18n"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/otp"
	"github.com/myarea/app-myarea/internal/session"
	"github.com/myarea/app-myarea/internal/utils"
	"go.uber.org/zap"
)

const authScopeKey = "auth"

// authFlow is the state of the login or signup screen. It lives in the
// screen scope, so leaving the screen closes its timers.
type authFlow struct {
	flow       models.AuthFlow
	method     models.InputMethod
	identifier string
	password   *models.PasswordCheckResponse
	challenge  *otp.Challenge
	runner     *otp.Runner
	notice     string
}

// Close stops the OTP timers
func (f *authFlow) Close() error {
	return f.discardChallenge()
}

func (f *authFlow) discardChallenge() error {
	var err error
	if f.runner != nil {
		err = f.runner.Close()
	}
	f.runner = nil
	f.challenge = nil
	return err
}

// authFlowFor returns the flow of the current credential screen, creating it
// on first use
func authFlowFor(tx *session.Tx) (*authFlow, error) {
	if err := requireScreen(tx, models.ScreenLogin, models.ScreenSignup); err != nil {
		return nil, err
	}
	if v, ok := tx.Scope().Value(authScopeKey); ok {
		return v.(*authFlow), nil
	}
	flow := &authFlow{
		flow:   models.FlowForScreen(tx.CurrentScreen()),
		method: models.InputMethodPhone,
	}
	tx.Scope().Set(authScopeKey, flow)
	return flow, nil
}

// challengeFor returns the flow and its challenge, failing when no code was sent
func challengeFor(tx *session.Tx) (*authFlow, error) {
	flow, err := authFlowFor(tx)
	if err != nil {
		return nil, err
	}
	if flow.challenge == nil {
		return nil, models.ErrNoChallenge
	}
	return flow, nil
}

// PasswordFeedback evaluates pwd for the live checklist under the password field
func PasswordFeedback(lang models.Language, pwd, identifier string) models.PasswordCheckResponse {
	validation := utils.CheckPassword(pwd)
	resp := models.PasswordCheckResponse{
		Validation: validation,
		Strength:   utils.StrengthOf(validation),
	}
	if key := utils.ValidatePassword(pwd, identifier); key != "" {
		resp.Message = i18n.T(lang, key)
	} else {
		resp.Valid = true
	}
	return resp
}

// ChooseAuth leaves the auth choice screen for login or signup
func (a *App) ChooseAuth(ctx context.Context, st *session.State, flow models.AuthFlow) error {
	return st.Dispatch(func(tx *session.Tx) error {
		if err := requireScreen(tx, models.ScreenAuthChoice); err != nil {
			return err
		}
		switch flow {
		case models.AuthFlowLogin:
			tx.NavigateTo(models.ScreenLogin, models.NavigationParams{})
		case models.AuthFlowSignup:
			tx.NavigateTo(models.ScreenSignup, models.NavigationParams{})
		default:
			return models.ErrInvalidScreen
		}
		return nil
	})
}

// SetInputMethod switches the credential form between phone and email
func (a *App) SetInputMethod(ctx context.Context, st *session.State, method models.InputMethod) error {
	if !method.IsValid() {
		return models.ErrInvalidInputMethod
	}
	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := authFlowFor(tx)
		if err != nil {
			return err
		}
		if flow.challenge != nil {
			return models.ErrChallengeState
		}
		if flow.method != method {
			flow.method = method
			flow.identifier = ""
			flow.password = nil
		}
		return nil
	})
}

// UpdatePassword records the password being typed and returns its checklist
func (a *App) UpdatePassword(ctx context.Context, st *session.State, req models.PasswordCheckRequest) (models.PasswordCheckResponse, error) {
	var resp models.PasswordCheckResponse
	err := st.Dispatch(func(tx *session.Tx) error {
		flow, err := authFlowFor(tx)
		if err != nil {
			return err
		}
		resp = PasswordFeedback(tx.Language(), req.Password, req.Identifier)
		flow.identifier = req.Identifier
		flow.password = &resp
		return nil
	})
	return resp, err
}

// SendOTP validates the credentials, asks the backend for a code and starts
// the challenge with its countdown
func (a *App) SendOTP(ctx context.Context, st *session.State, req models.SendOTPRequest) error {
	ctx, span, cleanup := utils.TraceScreenAction(ctx, "auth", "send_otp")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := authFlowFor(tx)
		if err != nil {
			return err
		}
		if flow.challenge != nil {
			return models.ErrChallengeState
		}

		method := req.InputMethod
		if method == "" {
			method = flow.method
		}
		if !method.IsValid() {
			return models.ErrInvalidInputMethod
		}

		if result := utils.ValidateCredentials(method, req.Identifier, req.Password); !result.IsValid {
			return invalid("credentials", result)
		}

		if err := a.deps.Auth.SendOTP(ctx, flow.flow, req.Identifier, req.Password); err != nil {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"flow": string(flow.flow)})
			return fmt.Errorf("send otp: %w", err)
		}

		flow.method = method
		flow.identifier = req.Identifier
		flow.password = nil
		a.startChallenge(st, flow)
		tx.Touch()

		a.logger.Info("otp challenge started",
			zap.String("session_id", tx.SessionID()),
			zap.String("flow", string(flow.flow)),
			zap.String("identifier", observability.MaskIdentifier(req.Identifier)))
		return nil
	})
}

func (a *App) startChallenge(st *session.State, flow *authFlow) {
	challenge := otp.NewChallenge(a.deps.OTP)
	_ = challenge.Start()

	var runner *otp.Runner
	runner = otp.NewRunner(a.deps.Clock, a.deps.OTP.AutoSubmitDelay,
		func() { a.onTick(st, flow, runner) },
		func() { a.onAutoSubmit(st, flow, runner) },
	)
	flow.challenge = challenge
	flow.runner = runner
	flow.notice = "otp.sent"
	runner.ArmCountdown()
}

// live reports whether runner still drives the challenge shown on screen
func live(tx *session.Tx, flow *authFlow, runner *otp.Runner) bool {
	v, ok := tx.Scope().Value(authScopeKey)
	return ok && v == flow && flow.runner == runner && !runner.Closed()
}

func (a *App) onTick(st *session.State, flow *authFlow, runner *otp.Runner) {
	err := st.Dispatch(func(tx *session.Tx) error {
		if !live(tx, flow, runner) {
			return nil
		}
		flow.challenge.Tick()
		if flow.challenge.Counting() {
			runner.ArmCountdown()
		}
		return nil
	})
	if err != nil && !errors.Is(err, models.ErrSessionClosed) {
		a.logger.Warn("otp countdown tick failed", zap.String("session_id", st.ID()), zap.Error(err))
	}
}

func (a *App) onAutoSubmit(st *session.State, flow *authFlow, runner *otp.Runner) {
	ctx, cancel := context.WithTimeout(context.Background(), a.deps.CallbackTimeout)
	defer cancel()

	err := st.Dispatch(func(tx *session.Tx) error {
		if !live(tx, flow, runner) || flow.challenge.State() != models.OTPStateAwaitingCode {
			return nil
		}
		return a.verify(ctx, tx, flow)
	})
	switch {
	case err == nil, errors.Is(err, models.ErrSessionClosed):
	case errors.Is(err, models.ErrInvalidCode), errors.Is(err, models.ErrIncompleteCode):
		a.logger.Info("otp auto-submit rejected", zap.String("session_id", st.ID()), zap.Error(err))
	default:
		a.logger.Error("otp auto-submit failed", zap.String("session_id", st.ID()), zap.Error(err))
	}
}

// verify checks the entered code. Success records the identity and leaves
// the screen: signup continues to profile completion, login is verified and
// goes home. Failure returns the challenge to code entry.
func (a *App) verify(ctx context.Context, tx *session.Tx, flow *authFlow) error {
	code, err := flow.challenge.BeginVerify()
	if err != nil {
		return err
	}
	flow.runner.CancelAutoSubmit()

	ok, err := a.deps.Auth.VerifyOTP(ctx, flow.identifier, code)
	if err != nil {
		flow.challenge.Finish(false)
		flow.notice = "common.error"
		return fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		flow.challenge.Finish(false)
		flow.notice = "otp.invalid"
		return models.ErrInvalidCode
	}

	flow.challenge.Finish(true)
	tx.SetIdentity(utils.NormalizeIdentifier(flow.identifier))

	a.logger.Info("otp verified",
		zap.String("session_id", tx.SessionID()),
		zap.String("flow", string(flow.flow)))

	switch flow.flow {
	case models.AuthFlowSignup:
		tx.NavigateTo(models.ScreenProfileCompletion, models.NavigationParams{})
	default:
		tx.SetIsVerified(true)
		tx.NavigateTo(models.ScreenHome, models.NavigationParams{})
	}
	return nil
}

// EnterDigit fills one code cell. Filling the sixth cell of a complete code
// schedules the auto-submit.
func (a *App) EnterDigit(ctx context.Context, st *session.State, index int, value string) error {
	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := challengeFor(tx)
		if err != nil {
			return err
		}
		complete, err := flow.challenge.EnterDigit(index, value)
		if err != nil {
			return err
		}
		switch {
		case complete:
			flow.runner.ArmAutoSubmit()
		case value == "":
			flow.runner.CancelAutoSubmit()
		}
		return nil
	})
}

// Backspace moves focus back from an empty cell
func (a *App) Backspace(ctx context.Context, st *session.State, index int) error {
	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := challengeFor(tx)
		if err != nil {
			return err
		}
		return flow.challenge.Backspace(index)
	})
}

// ResendOTP asks the backend for a new code once the countdown is over.
// A refused resend leaves the challenge untouched.
func (a *App) ResendOTP(ctx context.Context, st *session.State) error {
	ctx, span, cleanup := utils.TraceScreenAction(ctx, "auth", "resend_otp")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := challengeFor(tx)
		if err != nil {
			return err
		}
		if err := flow.challenge.ResendError(); err != nil {
			if errors.Is(err, models.ErrResendLimitReached) {
				flow.notice = "otp.maxResendReached"
				observability.OTPEvents.WithLabelValues("resend_limit").Inc()
			}
			return err
		}

		if err := a.deps.Auth.ResendOTP(ctx, flow.identifier); err != nil {
			utils.RecordErrorInSpan(span, err, nil)
			return fmt.Errorf("resend otp: %w", err)
		}

		if err := flow.challenge.Resend(); err != nil {
			return err
		}
		flow.runner.CancelAutoSubmit()
		flow.runner.ArmCountdown()
		flow.notice = "otp.resent"
		return nil
	})
}

// VerifyOTP submits the code without waiting for the auto-submit
func (a *App) VerifyOTP(ctx context.Context, st *session.State) error {
	ctx, _, cleanup := utils.TraceScreenAction(ctx, "auth", "verify_otp")
	defer cleanup()

	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := challengeFor(tx)
		if err != nil {
			return err
		}
		return a.verify(ctx, tx, flow)
	})
}

// CancelOTP leaves the code entry and returns to the credential form
func (a *App) CancelOTP(ctx context.Context, st *session.State) error {
	return st.Dispatch(func(tx *session.Tx) error {
		flow, err := challengeFor(tx)
		if err != nil {
			return err
		}
		flow.notice = ""
		return flow.discardChallenge()
	})
}
