package avatar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Store writes uploaded avatars to a local directory that is served back
// under urlPrefix. Replaced avatars are not garbage-collected.
type Store struct {
	dir       string
	urlPrefix string
}

func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

// Save persists the upload under a collision-resistant name built from a
// timestamp, a random suffix and the original extension, and returns the
// public URL of the stored file.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		// No usable extension on the upload; sniff one from the content.
		ext = mimetype.Detect(data).Extension()
	}

	name := fmt.Sprintf("avatar_%d_%s%s", time.Now().UnixNano(), shortID(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
