package entity

import "time"

// ContractUpdate is one round of the manager/admin review workflow for a
// contract. A resubmission after a return is a fresh row pointing back at
// the returned one through PreviousUpdateId.
type ContractUpdate struct {
	Id         uint
	ContractId uint

	Status string

	ResponseProvidedByUserId *uint
	ResponseDate             *time.Time
	HasDocument              bool

	Decision         *string
	DecisionComments *string

	AdminComments  *string
	ReturnedReason *string
	ReturnedDate   *time.Time

	PreviousUpdateId *uint
	CorrectionDate   *time.Time

	InitialVendorName     *string
	InitialContractType   *string
	InitialDescription    *string
	InitialExpirationDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
