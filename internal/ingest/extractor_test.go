package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLayout struct {
	text        string
	err         error
	gotType     string
	gotContents []byte
}

func (f *fakeLayout) AnalyzeDocument(ctx context.Context, content []byte, contentType string) (string, error) {
	f.gotType = contentType
	f.gotContents = content
	return f.text, f.err
}

func TestExtractor_PlainTextUTF8(t *testing.T) {
	e := NewExtractor(&fakeLayout{})

	text, err := e.Extract(context.Background(), "notes.txt", []byte("héllo wörld"))

	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", text)
}

func TestExtractor_PlainTextLatin1Fallback(t *testing.T) {
	e := NewExtractor(&fakeLayout{})

	// 0xE9 is é in Latin-1 but invalid as a standalone UTF-8 byte
	text, err := e.Extract(context.Background(), "notes.txt", []byte{'c', 'a', 'f', 0xE9})

	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestExtractor_EmptyDocument(t *testing.T) {
	e := NewExtractor(&fakeLayout{})

	_, err := e.Extract(context.Background(), "blank.txt", []byte("   \n  "))

	assert.ErrorIs(t, err, entity.ErrEmptyDocument)
}

func TestExtractor_BinaryFormatsGoThroughLayout(t *testing.T) {
	layout := &fakeLayout{text: "analyzed text"}
	e := NewExtractor(layout)

	text, err := e.Extract(context.Background(), "slides.pdf", []byte{0x25, 0x50, 0x44, 0x46})

	require.NoError(t, err)
	assert.Equal(t, "analyzed text", text)
	assert.Equal(t, "application/pdf", layout.gotType)
	assert.Equal(t, []byte{0x25, 0x50, 0x44, 0x46}, layout.gotContents)
}

func TestExtractor_LayoutBlankResultIsEmptyDocument(t *testing.T) {
	e := NewExtractor(&fakeLayout{text: "  \n "})

	_, err := e.Extract(context.Background(), "scan.png", []byte{1, 2, 3})

	assert.ErrorIs(t, err, entity.ErrEmptyDocument)
}

func TestExtractor_LayoutFailurePropagates(t *testing.T) {
	wantErr := errors.New("service down")
	e := NewExtractor(&fakeLayout{err: wantErr})

	_, err := e.Extract(context.Background(), "deck.pptx", []byte{1})

	assert.ErrorIs(t, err, wantErr)
}
