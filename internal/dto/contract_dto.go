package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	VendorId                  uint            `json:"vendor_id" validate:"required,gt=0"`
	ContractDescription       string          `json:"contract_description" validate:"required,max=100"`
	ContractType              string          `json:"contract_type" validate:"required"`
	StartDate                 time.Time       `json:"start_date" validate:"required"`
	EndDate                   time.Time       `json:"end_date" validate:"required"`
	AutomaticRenewal          string          `json:"automatic_renewal" validate:"required,oneof=Yes No"`
	RenewalPeriod             *string         `json:"renewal_period"`
	Department                string          `json:"department" validate:"required"`
	ContractAmount            decimal.Decimal `json:"contract_amount" validate:"required"`
	ContractCurrency          string          `json:"contract_currency" validate:"required"`
	PaymentMethod             string          `json:"payment_method" validate:"required"`
	TerminationNoticePeriod   string          `json:"termination_notice_period" validate:"required"`
	ExpirationNoticeFrequency string          `json:"expiration_notice_frequency" validate:"required"`
	ContractOwnerId           uint            `json:"contract_owner_id" validate:"required,gt=0"`
	ContractOwnerBackupId     uint            `json:"contract_owner_backup_id" validate:"required,gt=0"`
	ContractOwnerManagerId    uint            `json:"contract_owner_manager_id" validate:"required,gt=0"`
}

type UpdateContractRequest struct {
	Id                        uint
	ContractDescription       string          `json:"contract_description" validate:"required,max=100"`
	ContractType              string          `json:"contract_type" validate:"required"`
	StartDate                 time.Time       `json:"start_date" validate:"required"`
	EndDate                   time.Time       `json:"end_date" validate:"required"`
	AutomaticRenewal          string          `json:"automatic_renewal" validate:"required,oneof=Yes No"`
	RenewalPeriod             *string         `json:"renewal_period"`
	Department                string          `json:"department" validate:"required"`
	ContractAmount            decimal.Decimal `json:"contract_amount" validate:"required"`
	ContractCurrency          string          `json:"contract_currency" validate:"required"`
	PaymentMethod             string          `json:"payment_method" validate:"required"`
	TerminationNoticePeriod   string          `json:"termination_notice_period" validate:"required"`
	ExpirationNoticeFrequency string          `json:"expiration_notice_frequency" validate:"required"`
	ContractOwnerId           uint            `json:"contract_owner_id" validate:"required,gt=0"`
	ContractOwnerBackupId     uint            `json:"contract_owner_backup_id" validate:"required,gt=0"`
	ContractOwnerManagerId    uint            `json:"contract_owner_manager_id" validate:"required,gt=0"`
}

type ContractResponse struct {
	Id                        uint            `json:"id"`
	ContractID                string          `json:"contract_id"`
	VendorId                  uint            `json:"vendor_id"`
	VendorName                string          `json:"vendor_name,omitempty"`
	ContractDescription       string          `json:"contract_description"`
	ContractType              string          `json:"contract_type"`
	StartDate                 time.Time       `json:"start_date"`
	EndDate                   time.Time       `json:"end_date"`
	AutomaticRenewal          string          `json:"automatic_renewal"`
	RenewalPeriod             *string         `json:"renewal_period"`
	Department                string          `json:"department"`
	ContractAmount            decimal.Decimal `json:"contract_amount"`
	ContractCurrency          string          `json:"contract_currency"`
	PaymentMethod             string          `json:"payment_method"`
	TerminationNoticePeriod   string          `json:"termination_notice_period"`
	ExpirationNoticeFrequency string          `json:"expiration_notice_frequency"`
	ContractOwnerId           uint            `json:"contract_owner_id"`
	ContractOwnerBackupId     uint            `json:"contract_owner_backup_id"`
	ContractOwnerManagerId    uint            `json:"contract_owner_manager_id"`
	Status                    string          `json:"status"`
	Termination               *string         `json:"termination"`
	TerminationDate           *time.Time      `json:"termination_date"`
	LastModifiedBy            *string         `json:"last_modified_by"`
	LastModifiedDate          *time.Time      `json:"last_modified_date"`
	Version                   int64           `json:"version"`
	CreatedAt                 time.Time       `json:"created_at"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

type ContractListResponse struct {
	Items []*ContractResponse `json:"items"`
	Total int64               `json:"total"`
}

type ContractFilterRequest struct {
	Status     *string `query:"status"`
	Department *string `query:"department"`
	VendorId   *uint   `query:"vendor_id"`
	OwnerId    *uint   `query:"owner_id"`
	Search     *string `query:"search"`
	Skip       int     `query:"skip"`
	Limit      int     `query:"limit"`
}

type ExtendContractRequest struct {
	Id         uint
	NewEndDate time.Time `json:"new_end_date" validate:"required"`
}

type SavePendingTerminationRequest struct {
	Id              uint
	TerminationDate time.Time `json:"termination_date" validate:"required"`
}

type TerminateContractRequest struct {
	Id              uint
	TerminationDate *time.Time `json:"termination_date"`
}

type ExpirySweepResponse struct {
	Transitioned int64    `json:"transitioned"`
	ContractIDs  []string `json:"contract_ids"`
}
