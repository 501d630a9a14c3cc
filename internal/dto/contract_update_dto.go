package dto

import "time"

type SubmitUpdateRequest struct {
	ContractId       uint
	Decision         string  `json:"decision" validate:"required,oneof=Extend Renew Terminate"`
	DecisionComments *string `json:"decision_comments"`
}

type ReturnUpdateRequest struct {
	UpdateId       uint
	ReturnedReason string  `json:"returned_reason" validate:"required"`
	AdminComments  *string `json:"admin_comments"`
}

type ResubmitUpdateRequest struct {
	UpdateId         uint
	Decision         string  `json:"decision" validate:"required,oneof=Extend Renew Terminate"`
	DecisionComments *string `json:"decision_comments"`
}

type ContractUpdateResponse struct {
	Id                       uint       `json:"id"`
	ContractId               uint       `json:"contract_id"`
	Status                   string     `json:"status"`
	ResponseProvidedByUserId *uint      `json:"response_provided_by_user_id"`
	ResponseDate             *time.Time `json:"response_date"`
	HasDocument              bool       `json:"has_document"`
	Decision                 *string    `json:"decision"`
	DecisionComments         *string    `json:"decision_comments"`
	AdminComments            *string    `json:"admin_comments"`
	ReturnedReason           *string    `json:"returned_reason"`
	ReturnedDate             *time.Time `json:"returned_date"`
	PreviousUpdateId         *uint      `json:"previous_update_id"`
	CorrectionDate           *time.Time `json:"correction_date"`
	CreatedAt                time.Time  `json:"created_at"`
}

type WorkflowStageResponse struct {
	ContractID string `json:"contract_id"`
	Stage      string `json:"stage"`
}
