package types

// SearchRequest asks for a catalog reconciliation by keyword
type SearchRequest struct {
	Keyword string `json:"keyword" binding:"required" example:"thmanyah"`
}
