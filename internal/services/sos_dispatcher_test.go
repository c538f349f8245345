package services

import (
	"context"
	"testing"

	"github.com/myarea/app-myarea/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingSOSDispatcher_MasksContacts(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := &LoggingSOSDispatcher{logger: zap.New(core)}

	err := d.SendSOS(context.Background(), models.SOSAlert{
		SessionID:         "s-1",
		Identifier:        "9876543210",
		Address:           &models.Address{Ward: "Ward 80", Pincode: "560038"},
		EmergencyContacts: []models.EmergencyContact{{Name: "Ravi", Relation: "Sibling", Phone: "9123456789"}},
	})

	assert.NoError(t, err)
	entries := logs.FilterMessage("sos alert raised").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.NotEmpty(t, fields["alert_id"])
		assert.Equal(t, "Ward 80", fields["ward"])
		assert.Equal(t, []interface{}{"******6789"}, fields["emergency_contacts"])
	}
}

func TestNewLoggingSOSDispatcher(t *testing.T) {
	assert.NoError(t, NewLoggingSOSDispatcher().SendSOS(context.Background(), models.SOSAlert{}))
}
