package convert

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

const tempMarker = ".tmp"

// storage reads the source and writes the output through afs.
type storage struct {
	fs afs.Service
}

func newStorage() *storage {
	return &storage{fs: afs.New()}
}

// location turns a local path into an absolute one; URLs are kept.
func location(p string) string {
	if strings.Contains(p, "://") {
		return p
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}

	return abs
}

func (s *storage) read(ctx context.Context, URL string) ([]byte, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, URL, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, URL)
	}

	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, URL, err)
	}

	return data, nil
}

// tempLocation names the sibling of URL the output is staged in. The
// staged name keeps URL's extension so afs moves it onto URL itself.
func tempLocation(URL string) string {
	ext := path.Ext(URL)
	if ext == "" {
		return URL + "_tmp"
	}

	return strings.TrimSuffix(URL, ext) + tempMarker + ext
}

// write uploads data to a temporary sibling of URL and moves it into place.
func (s *storage) write(ctx context.Context, URL string, data []byte) error {
	tmp := tempLocation(URL)

	if err := s.fs.Upload(ctx, tmp, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, tmp, err)
	}

	if err := s.fs.Move(ctx, tmp, URL); err != nil {
		_ = s.fs.Delete(ctx, tmp)
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, URL, err)
	}

	return nil
}
