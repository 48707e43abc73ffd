package storage

import (
	"context"
	"fmt"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// uploadFolder is the fixed namespace all documents live under.
const uploadFolder = "travellaneconnect/uploads"

// OSSStore is the object-storage implementation of FileStore. Every call is
// stateless; the SDK client manages its own HTTP connections.
type OSSStore struct {
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
	folder     string
}

// NewOSSStoreFromEnv builds an OSSStore from OSS_ENDPOINT, OSS_ACCESS_KEY,
// OSS_SECRET_KEY and OSS_BUCKET.
func NewOSSStoreFromEnv() (*OSSStore, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	accessKey := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY"))
	secretKey := strings.TrimSpace(os.Getenv("OSS_SECRET_KEY"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSStore{
		bucket:     bucket,
		endpoint:   endpoint,
		bucketName: bucketName,
		folder:     uploadFolder,
	}, nil
}

func (s *OSSStore) Upload(ctx context.Context, file *multipart.FileHeader, name string) (string, error) {
	if file == nil {
		return "", fmt.Errorf("%w: nil file header", ErrUploadFailed)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrUploadFailed, file.Filename, err)
	}
	defer src.Close()

	key := s.objectKey(name)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(detectContentType(file)),
		oss.ContentDisposition("inline"),
	}
	if err := s.bucket.PutObject(key, src, opts...); err != nil {
		return "", fmt.Errorf("%w: put %s: %v", ErrUploadFailed, key, err)
	}

	return s.publicURL(key), nil
}

func (s *OSSStore) Delete(ctx context.Context, fileURL string) error {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *OSSStore) objectKey(name string) string {
	return path.Join(s.folder, name)
}

func (s *OSSStore) publicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	escaped := (&url.URL{Path: key}).EscapedPath()
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, host, strings.TrimPrefix(escaped, "/"))
}

func (s *OSSStore) keyFromURL(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("parse file url %q: %w", fileURL, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("file url %q has no object key", fileURL)
	}
	return key, nil
}

// detectContentType sniffs the first 512 bytes and falls back to the filename
// extension, then octet-stream.
func detectContentType(file *multipart.FileHeader) string {
	if src, err := file.Open(); err == nil {
		defer src.Close()
		head := make([]byte, 512)
		if n, err := src.Read(head); err == nil && n > 0 {
			if ct := http.DetectContentType(head[:n]); ct != "application/octet-stream" {
				return ct
			}
		}
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Filename))); ct != "" {
		return ct
	}
	log.Printf("storage: could not detect content type for %s, defaulting", file.Filename)
	return "application/octet-stream"
}
