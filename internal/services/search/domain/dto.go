// Package domain holds DTOs for search http and service contracts
package domain

// Repository is a discovered repository record returned by search
type Repository struct {
	Name          string  `json:"name" example:"tensorflow"`
	FullName      string  `json:"full_name" example:"tensorflow/tensorflow"`
	Description   string  `json:"description" example:"An open source machine learning framework"`
	Stars         int     `json:"stars" example:"191000"`
	Language      string  `json:"language" example:"C++"`
	URL           string  `json:"url" example:"https://github.com/tensorflow/tensorflow"`
	ReadmeContent *string `json:"readme_content,omitempty"`
}

// SearchRequest is the POST /search payload
type SearchRequest struct {
	Domain string `json:"domain" validate:"required,min=1,max=200" example:"machine learning"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"5"`
}

// SearchResult is the search response body
type SearchResult struct {
	Domain       string       `json:"domain" example:"machine learning"`
	Repositories []Repository `json:"repositories"`
	TotalCount   int          `json:"total_count" example:"5"`
}
