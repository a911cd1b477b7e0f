// Package domain holds DTOs for stats http and service contracts
package domain

// DomainCount is one entry of the most-searched ranking
type DomainCount struct {
	Domain string `json:"domain" example:"machine learning"`
	Count  int    `json:"count" example:"12"`
}

// Usage is the cumulative usage counters payload
// Counters start at zero on process start and are lost on restart
type Usage struct {
	TotalSearches                int           `json:"total_searches" example:"42"`
	TotalRepositoriesFound       int           `json:"total_repositories_found" example:"210"`
	AverageRepositoriesPerSearch float64       `json:"average_repositories_per_search" example:"5.0"`
	MostSearchedDomains          []DomainCount `json:"most_searched_domains"`
}
