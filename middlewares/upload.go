package middlewares

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"nagaralert-be/apperrors"
	"nagaralert-be/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const (
	uploadsKey       = "uploads"
	multipartMemory  = 32 << 20
	genericMediaType = "application/octet-stream"
)

type fileRule struct {
	extensions []string
	mimeTypes  []string
	maxSize    int64
	// family is the MIME prefix sniffed content must share; empty skips the check.
	family string
}

var fileRules = map[models.MediaKind]fileRule{
	models.MediaImage: {
		extensions: []string{".jpg", ".jpeg", ".png", ".webp", ".gif"},
		mimeTypes:  []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		maxSize:    5 << 20,
		family:     "image/",
	},
	models.MediaVideo: {
		extensions: []string{".mp4", ".avi", ".mov", ".mkv", ".webm"},
		mimeTypes:  []string{"video/mp4", "video/avi", "video/x-msvideo", "video/quicktime", "video/x-matroska", "video/webm"},
		maxSize:    50 << 20,
		family:     "video/",
	},
	models.MediaDocument: {
		extensions: []string{".pdf", ".doc", ".docx", ".txt"},
		mimeTypes: []string{
			"application/pdf", "application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "text/plain",
		},
		maxSize: 10 << 20,
	},
}

// UploadField declares one multipart file field a route accepts.
type UploadField struct {
	Name     string
	Kind     models.MediaKind
	MaxCount int
}

// Upload parses multipart bodies, validates the declared file fields and
// spools accepted files to tempDir. Temp files are removed once the request
// finishes. Non-multipart requests pass through untouched.
func Upload(tempDir string, fields ...UploadField) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}
		if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
			abortWithError(c, apperrors.NewValidation("Invalid multipart form"))
			return
		}
		defer c.Request.MultipartForm.RemoveAll()

		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			abortWithError(c, apperrors.NewInternal("Failed to prepare upload directory", err))
			return
		}

		uploads := make(map[string][]models.MediaFile)
		var spooled []string
		defer func() {
			for _, path := range spooled {
				_ = os.Remove(path)
			}
		}()

		for _, field := range fields {
			headers := c.Request.MultipartForm.File[field.Name]
			if field.MaxCount > 0 && len(headers) > field.MaxCount {
				abortWithError(c, apperrors.NewValidation(fmt.Sprintf("At most %d file(s) allowed for %s", field.MaxCount, field.Name)))
				return
			}
			for _, fh := range headers {
				file, err := spool(tempDir, field, fh)
				if file != nil {
					spooled = append(spooled, file.Path)
				}
				if err != nil {
					abortWithError(c, err)
					return
				}
				uploads[field.Name] = append(uploads[field.Name], *file)
			}
		}

		c.Set(uploadsKey, uploads)
		c.Next()
	}
}

// spool validates fh against its field's rule and copies it to disk. The
// returned file is non-nil whenever something was written, even on error.
func spool(tempDir string, field UploadField, fh *multipart.FileHeader) (*models.MediaFile, error) {
	rule := fileRules[field.Kind]
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !contains(rule.extensions, ext) {
		return nil, unsupported(field, fh.Filename, ext)
	}
	if fh.Size > rule.maxSize {
		return nil, apperrors.NewValidation(fmt.Sprintf("File %s exceeds the %dMB limit for %s files", fh.Filename, rule.maxSize>>20, field.Kind))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.NewValidation("Could not read uploaded file " + fh.Filename)
	}
	defer src.Close()

	dst, err := os.CreateTemp(tempDir, "upload-*"+ext)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to store upload", err)
	}
	file := &models.MediaFile{Field: field.Name, Filename: fh.Filename, Path: dst.Name(), Size: fh.Size, Kind: field.Kind}
	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		return file, apperrors.NewInternal("Failed to store upload", fmt.Errorf("copy: %v, close: %v", copyErr, closeErr))
	}

	sniffed, err := mimetype.DetectFile(file.Path)
	if err != nil {
		return file, apperrors.NewInternal("Failed to inspect upload", err)
	}
	declared := baseMediaType(fh.Header.Get("Content-Type"))
	if declared == "" || declared == genericMediaType {
		declared = baseMediaType(sniffed.String())
	}
	if !contains(rule.mimeTypes, declared) {
		return file, unsupported(field, fh.Filename, declared)
	}
	if rule.family != "" && !strings.HasPrefix(sniffed.String(), rule.family) {
		return file, apperrors.NewValidation(fmt.Sprintf("File %s content does not match its declared type", fh.Filename))
	}
	file.ContentType = declared
	return file, nil
}

func unsupported(field UploadField, filename, got string) error {
	return apperrors.NewValidation(fmt.Sprintf("File type not supported. Allowed: %s. Your file: %s (%s)", field.Kind, filename, got))
}

func baseMediaType(value string) string {
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = value[:i]
	}
	return strings.ToLower(strings.TrimSpace(value))
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// UploadedFiles returns the accepted files of field.
func UploadedFiles(c *gin.Context, field string) []models.MediaFile {
	value, ok := c.Get(uploadsKey)
	if !ok {
		return nil
	}
	uploads, _ := value.(map[string][]models.MediaFile)
	return uploads[field]
}

// UploadedFile returns the first accepted file of field, or nil.
func UploadedFile(c *gin.Context, field string) *models.MediaFile {
	files := UploadedFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}
