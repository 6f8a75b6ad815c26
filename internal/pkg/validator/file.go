package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
)

// AllowedExtensions lists the upload types the pipeline can turn into text:
// .txt is decoded directly, everything else goes through layout analysis.
var AllowedExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
	".pptx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Validator validates file uploads
type Validator struct {
	cfg config.FileUploadConfig
}

func NewFileValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateUpload checks a single uploaded file's name and size.
func (v *Validator) ValidateUpload(filename string, size int64) error {
	if strings.TrimSpace(filename) == "" {
		return fmt.Errorf("%w: filename", entity.ErrMissingField)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedExtensions[ext] {
		return fmt.Errorf("%w: %s", entity.ErrInvalidExtension, ext)
	}

	if size <= 0 {
		return fmt.Errorf("%w: empty upload", entity.ErrInvalidFile)
	}
	if size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, filename, size, v.cfg.MaxFileSize)
	}

	return nil
}

// SanitizeFilename strips path components and characters that would break
// blob keys of the form "{projectId}/{filename}".
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		"#", "_",
		"?", "_",
	)
	return replacer.Replace(filename)
}
