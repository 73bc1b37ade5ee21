package models

// SafetyVerification records one compliance check. Verifications are
// append-only; there is no edit or delete.
type SafetyVerification struct {
	ID           string `json:"id"`
	ByAccountID  string `json:"byAccountId"`
	ForAccountID string `json:"forAccountId"`
	Note         string `json:"note,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

// SafetyRequirement is a rule created by Safety Personal targeting a
// role, with its verification history embedded.
type SafetyRequirement struct {
	ID                 string               `json:"id"`
	Title              string               `json:"title"`
	Description        string               `json:"description,omitempty"`
	CreatedByAccountID string               `json:"createdByAccountId"`
	TargetRole         Role                 `json:"targetRole"`
	Active             bool                 `json:"active"`
	CreatedAt          int64                `json:"createdAt"`
	Verifications      []SafetyVerification `json:"verifications"`
}
