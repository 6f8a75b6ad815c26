package validator

import (
	"testing"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/stretchr/testify/assert"
)

func newTestValidator() *Validator {
	return NewFileValidator(config.FileUploadConfig{
		MaxFileSize:   1024,
		MaxUploadSize: 4096,
	})
}

func TestValidateUpload_AllowedExtensions(t *testing.T) {
	v := newTestValidator()

	for _, name := range []string{"notes.txt", "slides.PDF", "deck.pptx", "doc.docx", "scan.png", "photo.JPG", "photo.jpeg"} {
		assert.NoError(t, v.ValidateUpload(name, 100), "file %q should be accepted", name)
	}
}

func TestValidateUpload_RejectedExtensions(t *testing.T) {
	v := newTestValidator()

	for _, name := range []string{"archive.zip", "video.mp4", "script.sh", "noextension"} {
		assert.ErrorIs(t, v.ValidateUpload(name, 100), entity.ErrInvalidExtension, "file %q should be rejected", name)
	}
}

func TestValidateUpload_EmptyFilename(t *testing.T) {
	v := newTestValidator()

	assert.ErrorIs(t, v.ValidateUpload("", 100), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateUpload("   ", 100), entity.ErrMissingField)
}

func TestValidateUpload_SizeLimits(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.ValidateUpload("notes.txt", 1024))
	assert.ErrorIs(t, v.ValidateUpload("notes.txt", 1025), entity.ErrFileTooLarge)
	assert.ErrorIs(t, v.ValidateUpload("notes.txt", 0), entity.ErrInvalidFile)
	assert.ErrorIs(t, v.ValidateUpload("notes.txt", -1), entity.ErrInvalidFile)
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"notes.txt":                "notes.txt",
		"my lecture notes.pdf":     "my_lecture_notes.pdf",
		"../../../etc/passwd":      "passwd",
		"dir/sub/file.txt":         "file.txt",
		"weird#name?.txt":          "weird_name_.txt",
		"back\\slash.txt":          "back_slash.txt",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}
}
