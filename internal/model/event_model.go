package model

import (
	"time"

	"gorm.io/datatypes"
)

type ContractEvent struct {
	Id         uint           `gorm:"primaryKey;autoIncrement"`
	EventType  string         `gorm:"type:varchar(50);not null;index"`
	ContractID string         `gorm:"type:varchar(20);not null;index"`
	Payload    datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt time.Time      `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (ContractEvent) TableName() string {
	return "contract_events"
}
