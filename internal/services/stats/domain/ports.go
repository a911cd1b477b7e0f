package domain

import "context"

// RecorderPort is fed by the search module on every completed search
type RecorderPort interface {
	Record(ctx context.Context, domain string, repositories int)
}

// ReaderPort serves the stats endpoint
type ReaderPort interface {
	Usage(ctx context.Context) Usage
}
