package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Search runs the star-ranked repository search without README enrichment
	Search(ctx context.Context, domain string, limit int) (SearchResult, error)
	// SearchWithReadmes runs Search and enriches each hit with its decoded README
	SearchWithReadmes(ctx context.Context, domain string, limit int) (SearchResult, error)
}

// Recorder is provided by the stats module and fed by every search request
type Recorder interface {
	Record(ctx context.Context, domain string, repositories int)
}
