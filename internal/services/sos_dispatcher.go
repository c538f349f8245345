package services

import (
	"context"
	"time"

	"github.com/myarea/app-myarea/internal/logging"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/observability"
	"github.com/myarea/app-myarea/internal/utils"
	"go.uber.org/zap"
)

// SOSDispatcher forwards emergency alerts to responders
type SOSDispatcher interface {
	SendSOS(ctx context.Context, alert models.SOSAlert) error
}

// LoggingSOSDispatcher records alerts in the log. No responder is contacted.
type LoggingSOSDispatcher struct {
	logger *zap.Logger
}

// NewLoggingSOSDispatcher creates the dispatcher
func NewLoggingSOSDispatcher() *LoggingSOSDispatcher {
	return &LoggingSOSDispatcher{logger: logging.Logger.Named("sos")}
}

// SendSOS logs alert with masked contact numbers
func (d *LoggingSOSDispatcher) SendSOS(ctx context.Context, alert models.SOSAlert) error {
	_, _, cleanup := utils.TraceExternalService(ctx, "sos", "dispatch")
	defer cleanup()

	if alert.ID == "" {
		alert.ID = utils.GenerateUUID()
	}
	if alert.RaisedAt.IsZero() {
		alert.RaisedAt = time.Now().UTC()
	}

	contacts := make([]string, 0, len(alert.EmergencyContacts))
	for _, c := range alert.EmergencyContacts {
		contacts = append(contacts, observability.MaskPhone(c.Phone))
	}
	fields := []zap.Field{
		zap.String("alert_id", alert.ID),
		zap.String("session_id", alert.SessionID),
		zap.String("identifier", observability.MaskIdentifier(alert.Identifier)),
		zap.Strings("emergency_contacts", contacts),
		zap.Time("raised_at", alert.RaisedAt),
	}
	if alert.Address != nil {
		fields = append(fields, zap.String("ward", alert.Address.Ward), zap.String("pincode", alert.Address.Pincode))
	}

	d.logger.Warn("sos alert raised", fields...)
	observability.SOSDispatches.WithLabelValues("success").Inc()
	return nil
}
