package vectorindex

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/NielsFilter/learnai/internal/entity"
)

// MemoryIndex is an in-process vector index used when mocks are enabled and in
// tests. It ranks by cosine similarity over brute-force scans, which is fine
// at mock scale.
type MemoryIndex struct {
	mu      sync.RWMutex
	records map[string][]entity.Chunk // projectID -> chunks
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		records: make(map[string][]entity.Chunk),
	}
}

func (m *MemoryIndex) Upsert(ctx context.Context, chunks []entity.Chunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ch := range chunks {
		existing := m.records[ch.ProjectID]
		replaced := false
		for i, old := range existing {
			if old.Filename == ch.Filename && old.ChunkIndex == ch.ChunkIndex {
				existing[i] = ch
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, ch)
		}
		m.records[ch.ProjectID] = existing
	}
	return nil
}

func (m *MemoryIndex) Query(ctx context.Context, projectID string, queryVector []float32, topK int) ([]entity.ScoredChunk, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var scored []entity.ScoredChunk
	for _, ch := range m.records[projectID] {
		scored = append(scored, entity.ScoredChunk{
			Text:   ch.Text,
			Source: ch.Filename,
			Score:  cosine(queryVector, ch.Vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

func (m *MemoryIndex) DeleteByFile(ctx context.Context, projectID, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[projectID][:0]
	for _, ch := range m.records[projectID] {
		if ch.Filename != filename {
			kept = append(kept, ch)
		}
	}
	m.records[projectID] = kept
	return nil
}

func (m *MemoryIndex) DeleteByProject(ctx context.Context, projectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, projectID)
	return nil
}

// Count reports how many chunks a project holds. Test helper.
func (m *MemoryIndex) Count(projectID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records[projectID])
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
