package model

import "time"

type ContractDocument struct {
	Id                 uint      `gorm:"primaryKey;autoIncrement"`
	ContractId         uint      `gorm:"not null;index"`
	FileName           string    `gorm:"type:varchar(255);not null"`
	CustomDocumentName string    `gorm:"type:varchar(255);not null"`
	DocumentSignedDate time.Time `gorm:"type:date;not null"`
	FilePath           string    `gorm:"type:varchar(500);not null"`
	FileSize           int64     `gorm:"not null"`
	ContentType        string    `gorm:"type:varchar(100);not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (ContractDocument) TableName() string {
	return "contract_documents"
}

type TerminationDocument struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	ContractId   uint      `gorm:"not null;index"`
	FileName     string    `gorm:"type:varchar(255);not null"`
	DocumentName string    `gorm:"type:varchar(255);not null"`
	DocumentDate time.Time `gorm:"type:date;not null"`
	FilePath     string    `gorm:"type:varchar(500);not null"`
	FileSize     int64     `gorm:"not null"`
	ContentType  string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (TerminationDocument) TableName() string {
	return "termination_documents"
}
