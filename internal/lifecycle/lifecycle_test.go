package lifecycle

import (
	"testing"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		event   Event
		want    Status
		wantErr bool
	}{
		{"active expires", StatusActive, EventExpire, StatusExpired, false},
		{"active termination requested", StatusActive, EventRequestTermination, StatusTerminationPending, false},
		{"expired termination requested", StatusExpired, EventRequestTermination, StatusTerminationPending, false},
		{"active extend stays active", StatusActive, EventExtend, StatusActive, false},
		{"expired extend reinstates", StatusExpired, EventExtend, StatusActive, false},
		{"pending finalize terminates", StatusTerminationPending, EventFinalize, StatusTerminated, false},
		{"active finalize terminates", StatusActive, EventFinalize, StatusTerminated, false},
		{"expired finalize terminates", StatusExpired, EventFinalize, StatusTerminated, false},
		{"pending cancel reinstates", StatusTerminationPending, EventCancelTermination, StatusActive, false},
		{"active cancel rejected", StatusActive, EventCancelTermination, "", true},
		{"expired cancel rejected", StatusExpired, EventCancelTermination, "", true},
		{"expired cannot expire again", StatusExpired, EventExpire, "", true},
		{"pending cannot extend", StatusTerminationPending, EventExtend, "", true},
		{"terminated is terminal for finalize", StatusTerminated, EventFinalize, "", true},
		{"terminated is terminal for extend", StatusTerminated, EventExtend, "", true},
		{"terminated is terminal for expire", StatusTerminated, EventExpire, "", true},
		{"unknown status rejected", Status("Draft"), EventExpire, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.current, tt.event)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperr.IsStateConflict(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminatedIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusTerminated))
	for _, s := range []Status{StatusActive, StatusExpired, StatusTerminationPending} {
		assert.False(t, IsTerminal(s), string(s))
	}
}

func TestStatusLabels(t *testing.T) {
	// Display labels are part of the API surface; the pending label carries
	// an en dash, not a hyphen.
	assert.Equal(t, "Termination Pending – Documents Required", string(StatusTerminationPending))
	assert.True(t, Valid(StatusActive))
	assert.False(t, Valid(Status("Pending")))
}

func TestClassify(t *testing.T) {
	pendingTerminateNoDoc := &ReviewState{
		Status:   constant.UpdateStatusPendingReview,
		Decision: constant.DecisionTerminate,
	}

	t.Run("terminate without document bypasses admin queue", func(t *testing.T) {
		got := Classify(StatusActive, pendingTerminateNoDoc)
		assert.Equal(t, StageAwaitingTerminationDocument, got)
		assert.NotEqual(t, StagePendingAdminReview, got)
	})

	t.Run("extend decision reaches admin queue", func(t *testing.T) {
		got := Classify(StatusActive, &ReviewState{
			Status:   constant.UpdateStatusPendingReview,
			Decision: constant.DecisionExtend,
		})
		assert.Equal(t, StagePendingAdminReview, got)
	})

	t.Run("renew decision reaches admin queue", func(t *testing.T) {
		got := Classify(StatusExpired, &ReviewState{
			Status:   constant.UpdateStatusPendingReview,
			Decision: constant.DecisionRenew,
		})
		assert.Equal(t, StagePendingAdminReview, got)
	})

	t.Run("terminate with document reaches admin queue", func(t *testing.T) {
		got := Classify(StatusActive, &ReviewState{
			Status:      constant.UpdateStatusPendingReview,
			Decision:    constant.DecisionTerminate,
			HasDocument: true,
		})
		assert.Equal(t, StagePendingAdminReview, got)
	})

	t.Run("returned submission leaves the admin queue", func(t *testing.T) {
		got := Classify(StatusActive, &ReviewState{
			Status:   constant.UpdateStatusPendingReview,
			Decision: constant.DecisionExtend,
			Returned: true,
		})
		assert.Equal(t, StageNone, got)
	})

	t.Run("draft submissions classify to none", func(t *testing.T) {
		got := Classify(StatusActive, &ReviewState{
			Status:   constant.UpdateStatusDraft,
			Decision: constant.DecisionExtend,
		})
		assert.Equal(t, StageNone, got)
	})

	t.Run("no submission classifies to none", func(t *testing.T) {
		assert.Equal(t, StageNone, Classify(StatusActive, nil))
	})

	t.Run("terminated contracts classify to terminated", func(t *testing.T) {
		assert.Equal(t, StageTerminated, Classify(StatusTerminated, pendingTerminateNoDoc))
	})

	t.Run("stages are mutually exclusive", func(t *testing.T) {
		// Every (status, review-state) pair lands in exactly one stage by
		// construction; spot-check the combination the queues both touch.
		for _, hasDoc := range []bool{true, false} {
			for _, returned := range []bool{true, false} {
				stage := Classify(StatusExpired, &ReviewState{
					Status:      constant.UpdateStatusPendingReview,
					Decision:    constant.DecisionTerminate,
					HasDocument: hasDoc,
					Returned:    returned,
				})
				if !hasDoc {
					assert.Equal(t, StageAwaitingTerminationDocument, stage)
				} else if returned {
					assert.Equal(t, StageNone, stage)
				} else {
					assert.Equal(t, StagePendingAdminReview, stage)
				}
			}
		}
	})
}
