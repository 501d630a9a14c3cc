package dto

import "time"

// ContractEventMessage is the wire payload published on the contract
// events topic and fanned out to websocket clients.
type ContractEventMessage struct {
	Type       string    `json:"type"`
	ContractID string    `json:"contract_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ContractEventResponse is one row of the activity feed.
type ContractEventResponse struct {
	Id         uint      `json:"id"`
	Type       string    `json:"type"`
	ContractID string    `json:"contract_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
