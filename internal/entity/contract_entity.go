package entity

import (
	"time"

	"contractdesk-be/internal/lifecycle"

	"github.com/shopspring/decimal"
)

// Contract is the aggregate root of the register. Status moves only
// through the lifecycle transition table, and Version backs the
// optimistic write check in the repository.
type Contract struct {
	Id         uint
	ContractID string

	VendorId    uint
	Description string
	Type        string

	StartDate time.Time
	EndDate   time.Time

	AutomaticRenewal string
	RenewalPeriod    *string

	Department    string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod string

	TerminationNoticePeriod   string
	ExpirationNoticeFrequency string

	OwnerId   uint
	BackupId  uint
	ManagerId uint

	Status          lifecycle.Status
	Termination     *string
	TerminationDate *time.Time

	TerminationLetterPath *string
	FinalInvoicePath      *string

	LastModifiedBy   *string
	LastModifiedDate *time.Time

	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
