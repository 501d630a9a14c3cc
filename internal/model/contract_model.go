package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contract struct {
	Id         uint   `gorm:"primaryKey;autoIncrement"`
	ContractID string `gorm:"type:varchar(20);uniqueIndex;not null"`

	VendorId            uint   `gorm:"not null;index"`
	ContractDescription string `gorm:"type:varchar(100);not null"`
	ContractType        string `gorm:"type:varchar(50);not null"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null;index"`

	AutomaticRenewal string  `gorm:"type:varchar(10);not null"`
	RenewalPeriod    *string `gorm:"type:varchar(20)"`

	Department       string          `gorm:"type:varchar(50);not null;index"`
	ContractAmount   decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	ContractCurrency string          `gorm:"type:varchar(5);not null"`
	PaymentMethod    string          `gorm:"type:varchar(50);not null"`

	TerminationNoticePeriod     string `gorm:"type:varchar(20);not null"`
	ExpirationNoticeFrequency   string `gorm:"type:varchar(20);not null"`

	ContractOwnerId        uint `gorm:"not null;index"`
	ContractOwnerBackupId  uint `gorm:"not null"`
	ContractOwnerManagerId uint `gorm:"not null"`

	Status          string     `gorm:"type:varchar(60);not null;index"`
	Termination     *string    `gorm:"type:varchar(10)"`
	TerminationDate *time.Time `gorm:"type:date"`

	TerminationLetterPath *string `gorm:"type:varchar(500)"`
	FinalInvoicePath      *string `gorm:"type:varchar(500)"`

	LastModifiedBy   *string    `gorm:"type:varchar(255)"`
	LastModifiedDate *time.Time

	Version int64 `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Contract) TableName() string {
	return "contracts"
}
