package cms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// FileSource reads content from a YAML file holding one document per
// locale. The file is read on every call, so wrap it in a CachedSource
// when serving traffic
type FileSource struct {
	path string
}

var _ Source = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Content returns the document whose locale matches
func (s *FileSource) Content(
	_ context.Context, locale string,
) (*api.Content, error) {
	if locale == "" {
		return nil, ErrLocaleRequired
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	res, err := DecodeContent(f, locale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	res.FetchedAt = info.ModTime().UTC()
	return res, nil
}

// DecodeContent scans a YAML stream for the document of the given locale
func DecodeContent(r io.Reader, locale string) (*api.Content, error) {
	dec := yaml.NewDecoder(r)
	for {
		var doc api.Content
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, locale)
		}
		if err != nil {
			return nil, err
		}
		if doc.Locale == locale {
			return &doc, nil
		}
	}
}

// EncodeContent writes content as a single YAML document
func EncodeContent(w io.Writer, c *api.Content) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
