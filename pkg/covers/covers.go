// Package covers copies cover images into the media directory and returns
// the reference stored in an entry's coverImagePath.
package covers

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

// SupportedExtensions lists the image types accepted for import.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// Supported reports whether name has a supported image extension.
func Supported(name string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// Importer copies images under <root>/images.
type Importer struct {
	root   string
	logger *zerolog.Logger
}

// Option is a function that configures an Importer.
type Option func(*Importer)

// WithLogger configures the importer's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(im *Importer) {
		if logger != nil {
			im.logger = logger
		}
	}
}

// NewImporter creates an importer rooted at mediaRoot.
func NewImporter(mediaRoot string, opts ...Option) *Importer {
	if mediaRoot == "" {
		mediaRoot = constants.DefaultMediaRoot
	}
	im := &Importer{root: mediaRoot, logger: logging.Default()}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import copies src to images/<uuid><ext> under the media root and returns
// that slash-separated reference.
func (im *Importer) Import(src string) (string, error) {
	if !Supported(src) {
		return "", errors.NewValidationError("cover", src, "unsupported image type, want one of "+strings.Join(SupportedExtensions, ", "))
	}

	in, err := os.Open(src)
	if err != nil {
		return "", errors.NewIOError("open", src, err)
	}
	defer func() { _ = in.Close() }()

	dir := filepath.Join(im.root, constants.DefaultImagesDir)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", errors.NewIOError("create", dir, err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(src))
	dst := filepath.Join(dir, name)
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return "", errors.NewIOError("create", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", errors.NewIOError("copy", dst, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", errors.NewIOError("close", dst, err)
	}

	ref := path.Join(constants.DefaultImagesDir, name)
	im.logger.Debug().Str("source", src).Str("cover", ref).Msg("Cover imported")
	return ref, nil
}

// Resolve returns the filesystem path of a stored reference.
func (im *Importer) Resolve(ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(im.root, filepath.FromSlash(ref))
}

// Exists reports whether a stored reference points at an existing file.
func (im *Importer) Exists(ref string) bool {
	if ref == "" {
		return false
	}
	info, err := os.Stat(im.Resolve(ref))
	return err == nil && !info.IsDir()
}
