package models

// Message is a unidirectional note between two accounts. ReadAt is set
// once, the first time the recipient views it.
type Message struct {
	ID            string `json:"id"`
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Content       string `json:"content"`
	CreatedAt     int64  `json:"createdAt"`
	ReadAt        int64  `json:"readAt,omitempty"`
}
