package archive

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"

	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type (
	// Archive stores rendered PDF documents in a gocloud.dev/blob bucket,
	// supporting S3, GCS, Azure Blob Storage, local files and memory
	Archive struct {
		bucket *blob.Bucket
		prefix string
	}

	// RenderFunc produces a document when the archive has no current copy
	RenderFunc func() ([]byte, error)
)

const (
	contentTypePDF = "application/pdf"
	stampKey       = "stamp"

	factsheetsDir = "factsheets/"
	sessionsDir   = "sessions/"
)

var ErrDocumentNotFound = errors.New("document not found")

// Open connects to the bucket at bucketURL. All keys are placed under
// prefix
func Open(ctx context.Context, bucketURL, prefix string) (*Archive, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	return &Archive{bucket: bucket, prefix: prefix}, nil
}

// FactsheetKey names the factsheet of a solution in a locale
func FactsheetKey(locale string, id api.SolutionID) string {
	return path.Join(factsheetsDir, locale, string(id)+".pdf")
}

// SummaryKey names the summary document of a session
func SummaryKey(id api.SessionID) string {
	return path.Join(sessionsDir, string(id), "summary.pdf")
}

func (a *Archive) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := a.bucket.ReadAll(ctx, a.prefix+key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put stores a document along with the stamp that identifies the input it
// was rendered from
func (a *Archive) Put(
	ctx context.Context, key, stamp string, data []byte,
) error {
	return a.bucket.WriteAll(ctx, a.prefix+key, data, &blob.WriterOptions{
		ContentType: contentTypePDF,
		Metadata:    map[string]string{stampKey: stamp},
	})
}

// Delete removes a document. Missing documents are not an error
func (a *Archive) Delete(ctx context.Context, key string) error {
	err := a.bucket.Delete(ctx, a.prefix+key)
	if err != nil && gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}
	return err
}

// Stamp returns the stamp stored with a document
func (a *Archive) Stamp(ctx context.Context, key string) (string, error) {
	attrs, err := a.bucket.Attributes(ctx, a.prefix+key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", ErrDocumentNotFound
		}
		return "", err
	}
	return attrs.Metadata[stampKey], nil
}

// Fetch returns the stored document when its stamp matches, and otherwise
// renders, stores and returns a fresh one. A failed write is logged and the
// fresh document is still returned
func (a *Archive) Fetch(
	ctx context.Context, key, stamp string, render RenderFunc,
) ([]byte, error) {
	if current, err := a.Stamp(ctx, key); err == nil && current == stamp {
		data, err := a.Get(ctx, key)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrDocumentNotFound) {
			return nil, err
		}
	} else if err != nil && !errors.Is(err, ErrDocumentNotFound) {
		return nil, err
	}

	data, err := render()
	if err != nil {
		return nil, err
	}
	if err := a.Put(ctx, key, stamp, data); err != nil {
		slog.Warn("Failed to store document",
			log.DocumentKey(key),
			log.Error(err))
	}
	return data, nil
}

// PurgeSession deletes every document stored for a session
func (a *Archive) PurgeSession(ctx context.Context, id api.SessionID) error {
	return a.purge(ctx, path.Join(sessionsDir, string(id))+"/")
}

// PurgeFactsheets deletes the factsheets of the given locales, or of every
// locale when none are named
func (a *Archive) PurgeFactsheets(ctx context.Context, locales ...string) error {
	if len(locales) == 0 {
		return a.purge(ctx, factsheetsDir)
	}
	for _, l := range locales {
		if err := a.purge(ctx, path.Join(factsheetsDir, l)+"/"); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archive) purge(ctx context.Context, dir string) error {
	iter := a.bucket.List(&blob.ListOptions{Prefix: a.prefix + dir})
	count := 0
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		key := strings.TrimPrefix(obj.Key, a.prefix)
		if err := a.Delete(ctx, key); err != nil {
			return err
		}
		count++
	}
	slog.Debug("Purged documents",
		slog.String("dir", dir),
		slog.Int("count", count))
	return nil
}

func (a *Archive) Close() error {
	return a.bucket.Close()
}
