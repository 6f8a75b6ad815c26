package document

import "context"

// VectorIndex is the chunk record store, file-scoped deletes.
type VectorIndex interface {
	DeleteByFile(ctx context.Context, projectID, filename string) error
}

// BlobStore holds the raw uploaded files.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Extractor turns stored bytes back into text.
type Extractor interface {
	Extract(ctx context.Context, filename string, content []byte) (string, error)
}

// Summarizer produces a document summary, never failing.
type Summarizer interface {
	Summarize(ctx context.Context, filename, text string) string
}
