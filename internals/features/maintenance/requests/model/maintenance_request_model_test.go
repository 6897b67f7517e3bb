package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to MaintenanceStatus }{
		{MaintenanceStatusOpen, MaintenanceStatusInProgress},
		{MaintenanceStatusOpen, MaintenanceStatusResolved},
		{MaintenanceStatusOpen, MaintenanceStatusClosed},
		{MaintenanceStatusInProgress, MaintenanceStatusResolved},
		{MaintenanceStatusInProgress, MaintenanceStatusClosed},
		{MaintenanceStatusResolved, MaintenanceStatusClosed},
	}
	for _, c := range allowed {
		assert.True(t, c.from.CanTransitionTo(c.to), "%s → %s harus boleh", c.from, c.to)
	}

	forbidden := []struct{ from, to MaintenanceStatus }{
		{MaintenanceStatusInProgress, MaintenanceStatusOpen},
		{MaintenanceStatusResolved, MaintenanceStatusOpen},
		{MaintenanceStatusResolved, MaintenanceStatusInProgress},
		{MaintenanceStatusClosed, MaintenanceStatusOpen},
		{MaintenanceStatusClosed, MaintenanceStatusInProgress},
		{MaintenanceStatusClosed, MaintenanceStatusResolved},
		{MaintenanceStatusOpen, MaintenanceStatusOpen},
	}
	for _, c := range forbidden {
		assert.False(t, c.from.CanTransitionTo(c.to), "%s → %s harus ditolak", c.from, c.to)
	}
}

func TestMaintenanceStatusValid(t *testing.T) {
	for _, s := range []MaintenanceStatus{
		MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusResolved, MaintenanceStatusClosed,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, MaintenanceStatus("pending").Valid())
	assert.False(t, MaintenanceStatus("").Valid())
}
