package model

import "time"

type Vendor struct {
	Id       uint   `gorm:"primaryKey;autoIncrement"`
	VendorID string `gorm:"type:varchar(10);uniqueIndex;not null"`

	VendorName          string `gorm:"type:varchar(255);not null"`
	VendorContactPerson string `gorm:"type:varchar(255);not null"`
	VendorCountry       string `gorm:"type:varchar(100);not null"`

	MaterialOutsourcingArrangement string `gorm:"type:varchar(10);not null"`

	BankCustomer string  `gorm:"type:varchar(20);not null"`
	CIF          *string `gorm:"type:varchar(6)"`

	DueDiligenceRequired                   string `gorm:"type:varchar(10);not null"`
	LastDueDiligenceDate                   *time.Time
	NextRequiredDueDiligenceDate           *time.Time
	NextRequiredDueDiligenceAlertFrequency *string `gorm:"type:varchar(20)"`

	Status string `gorm:"type:varchar(20);not null;default:'Active'"`

	LastModifiedBy   *string `gorm:"type:varchar(255)"`
	LastModifiedDate *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Vendor) TableName() string {
	return "vendors"
}
