package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/avasquez/rentium-api/internal/models"
)

// LeaseFSM wraps a lease with its state machine
type LeaseFSM struct {
	lease *models.Lease
	fsm   *fsm.FSM
}

// NewLeaseFSM creates a new lease state machine
func NewLeaseFSM(lease *models.Lease) *LeaseFSM {
	lfsm := &LeaseFSM{
		lease: lease,
	}

	lfsm.fsm = fsm.NewFSM(
		lease.Status,
		fsm.Events{
			// draft → active
			{Name: "activate", Src: []string{models.LeaseStatusDraft}, Dst: models.LeaseStatusActive},

			// active → ended (natural expiry)
			{Name: "end", Src: []string{models.LeaseStatusActive}, Dst: models.LeaseStatusEnded},

			// active → terminated (early break)
			{Name: "terminate", Src: []string{models.LeaseStatusActive}, Dst: models.LeaseStatusTerminated},
		},
		fsm.Callbacks{},
	)

	return lfsm
}

// Activate transitions lease to active state
func (l *LeaseFSM) Activate(ctx context.Context) error {
	if !l.lease.MayActivate() {
		return fmt.Errorf("lease cannot be activated in current state: %s", l.lease.Status)
	}

	if err := l.fsm.Event(ctx, "activate"); err != nil {
		return fmt.Errorf("failed to activate lease: %w", err)
	}

	l.lease.Status = l.fsm.Current()
	return nil
}

// End transitions lease to ended state
func (l *LeaseFSM) End(ctx context.Context) error {
	if !l.lease.MayEnd() {
		return fmt.Errorf("lease cannot be ended in current state: %s", l.lease.Status)
	}

	if err := l.fsm.Event(ctx, "end"); err != nil {
		return fmt.Errorf("failed to end lease: %w", err)
	}

	l.lease.Status = l.fsm.Current()
	return nil
}

// Terminate transitions lease to terminated state
func (l *LeaseFSM) Terminate(ctx context.Context) error {
	if !l.lease.MayTerminate() {
		return fmt.Errorf("lease cannot be terminated in current state: %s", l.lease.Status)
	}

	if err := l.fsm.Event(ctx, "terminate"); err != nil {
		return fmt.Errorf("failed to terminate lease: %w", err)
	}

	l.lease.Status = l.fsm.Current()
	return nil
}

// Current returns the current state
func (l *LeaseFSM) Current() string {
	return l.fsm.Current()
}

// Can checks if a transition is possible
func (l *LeaseFSM) Can(event string) bool {
	return l.fsm.Can(event)
}
