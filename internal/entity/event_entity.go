package entity

import "time"

// ContractEvent is a persisted copy of a message published on the
// contract events topic, kept for the activity feed.
type ContractEvent struct {
	Id         uint
	EventType  string
	ContractID string
	Payload    []byte
	OccurredAt time.Time
	CreatedAt  time.Time
}
