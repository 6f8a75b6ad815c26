package project

import (
	"context"
)

// VectorIndex is the chunk record store, scoped deletes only.
type VectorIndex interface {
	DeleteByFile(ctx context.Context, projectID, filename string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

// BlobStore holds the raw uploaded files.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Ingestor runs the ingestion pipeline for one uploaded document.
type Ingestor interface {
	ProcessDocument(ctx context.Context, projectID, filename string, content []byte) error
}
