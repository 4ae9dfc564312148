// Package storage handles media uploads for the admin dashboard.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader persists an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectKey builds a collision-resistant object key for an uploaded
// file, keeping the original extension and a sanitized base name.
func ObjectKey(prefix, filename string) string {
	base := unsafeNameChars.ReplaceAllString(path.Base(filename), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "upload"
	}
	key := fmt.Sprintf("%d-%s-%s", time.Now().Unix(), uuid.NewString(), base)
	if prefix == "" {
		return key
	}
	return path.Join(prefix, key)
}
