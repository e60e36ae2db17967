package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/rentium-api/internal/models"
)

func TestLeaseFSM_ActivateFromDraft(t *testing.T) {
	lease := &models.Lease{Status: models.LeaseStatusDraft}
	lfsm := NewLeaseFSM(lease)

	require.True(t, lfsm.Can("activate"))
	require.NoError(t, lfsm.Activate(context.Background()))
	assert.Equal(t, models.LeaseStatusActive, lease.Status)
	assert.Equal(t, models.LeaseStatusActive, lfsm.Current())
}

func TestLeaseFSM_EndFromActive(t *testing.T) {
	lease := &models.Lease{Status: models.LeaseStatusActive}
	lfsm := NewLeaseFSM(lease)

	require.NoError(t, lfsm.End(context.Background()))
	assert.Equal(t, models.LeaseStatusEnded, lease.Status)
}

func TestLeaseFSM_TerminateFromActive(t *testing.T) {
	lease := &models.Lease{Status: models.LeaseStatusActive}
	lfsm := NewLeaseFSM(lease)

	require.NoError(t, lfsm.Terminate(context.Background()))
	assert.Equal(t, models.LeaseStatusTerminated, lease.Status)
}

func TestLeaseFSM_InvalidTransitions(t *testing.T) {
	ended := &models.Lease{Status: models.LeaseStatusEnded}
	assert.Error(t, NewLeaseFSM(ended).Activate(context.Background()))
	assert.Error(t, NewLeaseFSM(ended).Terminate(context.Background()))

	draft := &models.Lease{Status: models.LeaseStatusDraft}
	assert.Error(t, NewLeaseFSM(draft).End(context.Background()))
	assert.Equal(t, models.LeaseStatusDraft, draft.Status)
}
