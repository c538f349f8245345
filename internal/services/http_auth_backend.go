package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/utils"
)

// HTTPAuthBackend talks to a remote authentication service
type HTTPAuthBackend struct {
	client *resty.Client
}

type sendOTPBody struct {
	Flow       models.AuthFlow `json:"flow"`
	Identifier string          `json:"identifier"`
	Password   string          `json:"password"`
}

type verifyOTPBody struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

type verifyOTPResult struct {
	Valid bool `json:"valid"`
}

type resendOTPBody struct {
	Identifier string `json:"identifier"`
}

// NewHTTPAuthBackend creates a client for the service at baseURL
func NewHTTPAuthBackend(baseURL string, timeout time.Duration) *HTTPAuthBackend {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPAuthBackend{client: c}
}

// SendOTP asks the service to deliver a code
func (b *HTTPAuthBackend) SendOTP(ctx context.Context, flow models.AuthFlow, identifier, password string) error {
	ctx, span, cleanup := utils.TraceExternalService(ctx, "auth_backend", "send_otp")
	defer cleanup()

	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(sendOTPBody{Flow: flow, Identifier: utils.NormalizeIdentifier(identifier), Password: password}).
		Post("/otp/send")
	if err = checkResponse(resp, err); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return err
	}
	observability.OTPEvents.WithLabelValues("sent").Inc()
	return nil
}

// VerifyOTP checks code with the service
func (b *HTTPAuthBackend) VerifyOTP(ctx context.Context, identifier, code string) (bool, error) {
	ctx, span, cleanup := utils.TraceExternalService(ctx, "auth_backend", "verify_otp")
	defer cleanup()

	var result verifyOTPResult
	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(verifyOTPBody{Identifier: utils.NormalizeIdentifier(identifier), Code: code}).
		SetResult(&result).
		Post("/otp/verify")
	if err = checkResponse(resp, err); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return false, err
	}

	event := "rejected"
	if result.Valid {
		event = "verified"
	}
	observability.OTPEvents.WithLabelValues(event).Inc()
	return result.Valid, nil
}

// ResendOTP asks the service to deliver a new code
func (b *HTTPAuthBackend) ResendOTP(ctx context.Context, identifier string) error {
	ctx, span, cleanup := utils.TraceExternalService(ctx, "auth_backend", "resend_otp")
	defer cleanup()

	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(resendOTPBody{Identifier: utils.NormalizeIdentifier(identifier)}).
		Post("/otp/resend")
	if err = checkResponse(resp, err); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return err
	}
	observability.OTPEvents.WithLabelValues("resent").Inc()
	return nil
}

// checkResponse maps transport failures and error statuses to sentinel errors
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrAuthBackendUnavailable, err)
	}
	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized:
		return models.ErrInvalidCredentials
	case status == http.StatusTooManyRequests:
		return models.ErrResendLimitReached
	case status == http.StatusNotFound:
		return models.ErrNoChallenge
	case resp.IsError():
		return fmt.Errorf("%w: status %d", models.ErrAuthBackendUnavailable, status)
	}
	return nil
}
