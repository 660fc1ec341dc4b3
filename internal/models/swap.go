package models

// Статусы предложения обмена
const (
	SwapStatusPending  = "pending"
	SwapStatusAccepted = "accepted"
)

// SwapRequest представляет предложение об обмене навыками
type SwapRequest struct {
	ID             string  `json:"_id"`
	Requester      UserRef `json:"requesterId"`
	Recipient      UserRef `json:"recipientId"`
	RequesterSkill string  `json:"requesterSkill"`
	DesiredSkill   string  `json:"desiredSkill"`
	Message        string  `json:"message"`
	Status         string  `json:"status"` // pending, accepted
}
