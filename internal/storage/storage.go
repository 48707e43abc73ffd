package storage

import (
	"context"
	"errors"
	"mime/multipart"
)

var (
	// ErrNotConnected is returned by the transfer backend when an upload is
	// attempted while its connection is down. Uploads are never queued.
	ErrNotConnected = errors.New("file store is not connected")

	// ErrUploadFailed wraps any backend failure to store a file.
	ErrUploadFailed = errors.New("failed to upload file")
)

// FileStore hosts uploaded documents and returns publicly resolvable URLs.
// Two interchangeable backends exist: object storage (OSSStore) and a
// persistent-connection FTP server (FTPStore).
type FileStore interface {
	// Upload stores the file under the given target name and returns its
	// public URL.
	Upload(ctx context.Context, file *multipart.FileHeader, name string) (string, error)

	// Delete removes the object a public URL points at. Callers treat
	// failures as best-effort: log and move on.
	Delete(ctx context.Context, fileURL string) error
}
