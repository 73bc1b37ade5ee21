package models

// ItemCategory groups inventory items by shop area.
type ItemCategory string

// Item categories
const (
	CategoryStore          ItemCategory = "Store"
	CategoryGeneralService ItemCategory = "General Service"
	CategoryDiag           ItemCategory = "Diag"
	CategoryAlignments     ItemCategory = "Alignments"
	CategoryElectrical     ItemCategory = "Electrical"
	CategoryMechanic       ItemCategory = "Mechanic"
)

// Item is an inventory unit. InitialStock doubles as the max-stock
// threshold the low/medium/full bands are derived from.
type Item struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	Category           ItemCategory `json:"category"`
	InitialStock       int          `json:"initialStock"`
	CurrentStock       int          `json:"currentStock"`
	ImageURI           string       `json:"imageUri,omitempty"`
	CreatedByAccountID string       `json:"createdByAccountId,omitempty"`
	CreatedAt          int64        `json:"createdAt"`
	UpdatedAt          int64        `json:"updatedAt"`
}
