package model

import "time"

type ContractUpdate struct {
	Id         uint `gorm:"primaryKey;autoIncrement"`
	ContractId uint `gorm:"not null;index"`

	Status string `gorm:"type:varchar(20);not null;index"`

	ResponseProvidedByUserId *uint
	ResponseDate             *time.Time
	HasDocument              bool `gorm:"default:false"`

	Decision         *string `gorm:"type:varchar(50)"`
	DecisionComments *string `gorm:"type:text"`

	AdminComments  *string `gorm:"type:text"`
	ReturnedReason *string `gorm:"type:text"`
	ReturnedDate   *time.Time

	PreviousUpdateId *uint
	CorrectionDate   *time.Time

	InitialVendorName     *string `gorm:"type:varchar(255)"`
	InitialContractType   *string `gorm:"type:varchar(100)"`
	InitialDescription    *string `gorm:"type:text"`
	InitialExpirationDate *time.Time `gorm:"type:date"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ContractUpdate) TableName() string {
	return "contract_updates"
}
