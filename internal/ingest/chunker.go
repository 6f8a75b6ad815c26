package ingest

import "strings"

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
)

var defaultSeparators = []string{"\n\n", "\n", ". ", " "}

// Chunker splits text into overlapping windows. It prefers splitting on the
// coarsest separator that produces pieces small enough, falling back to finer
// separators and finally to a hard cut. Pure: same text in, same chunks out.
type Chunker struct {
	size       int
	overlap    int
	separators []string
}

func NewChunker() *Chunker {
	return &Chunker{
		size:       defaultChunkSize,
		overlap:    defaultChunkOverlap,
		separators: defaultSeparators,
	}
}

func NewChunkerWithSize(size, overlap int) *Chunker {
	return &Chunker{
		size:       size,
		overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split returns the chunks of text in document order, each trimmed, none
// blank, each at most the configured size.
func (c *Chunker) Split(text string) []string {
	raw := c.split(text, c.separators)

	chunks := make([]string, 0, len(raw))
	for _, chunk := range raw {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

func (c *Chunker) split(text string, separators []string) []string {
	if len(text) <= c.size {
		return []string{text}
	}
	if len(separators) == 0 {
		return c.hardCut(text)
	}

	sep := separators[0]
	parts := strings.Split(text, sep)
	if len(parts) == 1 {
		return c.split(text, separators[1:])
	}

	// Pieces that are individually oversized get split on finer separators
	// before merging.
	var pieces []string
	for _, part := range parts {
		if len(part) > c.size {
			pieces = append(pieces, c.split(part, separators[1:])...)
		} else {
			pieces = append(pieces, part)
		}
	}

	return c.merge(pieces, sep)
}

// merge greedily packs pieces into chunks up to size, carrying a tail of up to
// overlap characters into the next chunk.
func (c *Chunker) merge(pieces []string, sep string) []string {
	sepLen := len(sep)

	var chunks []string
	var window []string
	total := 0

	for _, piece := range pieces {
		extra := 0
		if len(window) > 0 {
			extra = sepLen
		}

		if total+len(piece)+extra > c.size && len(window) > 0 {
			chunks = append(chunks, strings.Join(window, sep))

			for len(window) > 0 && (total > c.overlap || (total+len(piece)+sepLen > c.size && total > 0)) {
				drop := len(window[0])
				if len(window) > 1 {
					drop += sepLen
				}
				total -= drop
				window = window[1:]
			}
		}

		if len(window) > 0 {
			total += sepLen
		}
		window = append(window, piece)
		total += len(piece)
	}

	if len(window) > 0 {
		chunks = append(chunks, strings.Join(window, sep))
	}
	return chunks
}

// hardCut slices by runes so multi-byte characters never straddle a boundary.
func (c *Chunker) hardCut(text string) []string {
	runes := []rune(text)
	step := c.size - c.overlap
	if step <= 0 {
		step = c.size
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
