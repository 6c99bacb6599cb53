package domain

// Project groups tasks. Rows are created through the API and never updated
// or deleted afterwards.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateProjectInput is the body accepted by project creation.
type CreateProjectInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
