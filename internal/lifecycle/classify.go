// FILE: internal/lifecycle/classify.go
package lifecycle

import "contractdesk-be/internal/constant"

// Stage is the workbasket a contract belongs to, derived from its status and
// its latest review submission. Deriving it in one place keeps the queue
// queries disjoint by construction.
type Stage string

const (
	// StageNone: no worklist wants this contract right now.
	StageNone Stage = "none"
	// StagePendingAdminReview: a first-time submission awaits an admin.
	StagePendingAdminReview Stage = "pending_admin_review"
	// StageAwaitingTerminationDocument: a Terminate decision lacks its
	// supporting document and bypasses the admin queue.
	StageAwaitingTerminationDocument Stage = "awaiting_termination_document"
	// StageTerminated: historical log of terminated contracts.
	StageTerminated Stage = "terminated"
)

// ReviewState is the slice of a ContractUpdate row that classification
// depends on. Returned reports whether the submission was ever sent back by
// an admin (returned_date set).
type ReviewState struct {
	Status      string
	Decision    string
	HasDocument bool
	Returned    bool
}

// Classify maps (contract status, latest review submission) to a workflow
// stage. A nil latest means the contract has no submission history.
func Classify(status Status, latest *ReviewState) Stage {
	if status == StatusTerminated {
		return StageTerminated
	}

	if latest == nil || latest.Status != constant.UpdateStatusPendingReview {
		return StageNone
	}

	// Terminate decisions without a document are handled before the admin
	// ever sees them: the manager still owes the termination paperwork.
	if latest.Decision == constant.DecisionTerminate && !latest.HasDocument {
		return StageAwaitingTerminationDocument
	}

	// Only first-time submissions of eligible contracts reach the admin
	// queue; returned submissions travel the resubmission path instead.
	if latest.Returned {
		return StageNone
	}
	if status != StatusActive && status != StatusExpired {
		return StageNone
	}
	if latest.Decision == constant.DecisionExtend || latest.Decision == constant.DecisionRenew || latest.HasDocument {
		return StagePendingAdminReview
	}

	return StageNone
}
