package entity

import "time"

type Vendor struct {
	Id       uint
	VendorID string

	VendorName          string
	VendorContactPerson string
	VendorCountry       string

	MaterialOutsourcingArrangement string

	BankCustomer string
	CIF          *string

	DueDiligenceRequired                    string
	LastDueDiligenceDate                    *time.Time
	NextRequiredDueDiligenceDate            *time.Time
	NextRequiredDueDiligenceAlertFrequency  *string

	Status string

	LastModifiedBy   *string
	LastModifiedDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
