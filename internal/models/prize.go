package models

// PrizeDefinition is a reward unlocked at a progress threshold.
// IsHidden suppresses the threshold from employee-facing views.
type PrizeDefinition struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	UnlockAmount int    `json:"unlockAmount"`
	IsHidden     bool   `json:"isHidden"`
	Active       bool   `json:"active"`
	CreatedAt    int64  `json:"createdAt"`
}

// EmployeePrize binds one prize definition to one owning account.
// At most one award exists per (prize, owner) pair. A pending gift
// carries GiftedToAccountID + DeliveryAt until the delivery sweep
// flips ownership and sets Delivered.
type EmployeePrize struct {
	ID                string `json:"id"`
	PrizeID           string `json:"prizeId"`
	OwnerAccountID    string `json:"ownerAccountId"`
	UnlockedAt        int64  `json:"unlockedAt"`
	GiftedToAccountID string `json:"giftedToAccountId,omitempty"`
	DeliveryAt        int64  `json:"deliveryAt,omitempty"`
	Delivered         bool   `json:"delivered,omitempty"`
}
