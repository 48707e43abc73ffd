package storage

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/jlaffaye/ftp"
)

const (
	ftpDialTimeout   = 15 * time.Second
	reconnectDelay   = 5 * time.Second
	keepaliveEvery   = 10 * time.Minute
	defaultFTPPort   = "21"
	defaultFTPFolder = "uploads"
)

// FTPStore is the persistent-connection implementation of FileStore. One
// connection is shared by every call; while it is down, uploads fail fast with
// ErrNotConnected and a background loop redials every five seconds.
type FTPStore struct {
	mu   sync.Mutex
	conn *ftp.ServerConn
	up   bool

	addr     string
	user     string
	password string
	basePath string
	// publicBase is the domain the FTP document root is served from, e.g.
	// "https://files.travellaneconnect.com".
	publicBase string

	stop chan struct{}
}

// NewFTPStoreFromEnv dials and logs in using FTP_HOST, FTP_USER, FTP_PASSWORD,
// FTP_BASE_PATH and FTP_PUBLIC_BASE_URL, then starts the keepalive loop.
func NewFTPStoreFromEnv() (*FTPStore, error) {
	host := strings.TrimSpace(os.Getenv("FTP_HOST"))
	user := strings.TrimSpace(os.Getenv("FTP_USER"))
	password := os.Getenv("FTP_PASSWORD")
	publicBase := strings.TrimRight(strings.TrimSpace(os.Getenv("FTP_PUBLIC_BASE_URL")), "/")
	if host == "" || user == "" || password == "" || publicBase == "" {
		return nil, fmt.Errorf("missing env: FTP_HOST/FTP_USER/FTP_PASSWORD/FTP_PUBLIC_BASE_URL")
	}

	basePath := strings.Trim(os.Getenv("FTP_BASE_PATH"), "/")
	if basePath == "" {
		basePath = defaultFTPFolder
	}
	if !strings.Contains(host, ":") {
		host += ":" + defaultFTPPort
	}

	s := &FTPStore{
		addr:       host,
		user:       user,
		password:   password,
		basePath:   basePath,
		publicBase: publicBase,
		stop:       make(chan struct{}),
	}

	if err := s.connect(); err != nil {
		return nil, err
	}
	go s.keepalive()
	return s, nil
}

func (s *FTPStore) Upload(ctx context.Context, file *multipart.FileHeader, name string) (string, error) {
	if file == nil {
		return "", fmt.Errorf("%w: nil file header", ErrUploadFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.up {
		return "", ErrNotConnected
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrUploadFailed, file.Filename, err)
	}
	defer src.Close()

	remote := s.remotePath(name)
	if err := s.conn.Stor(remote, src); err != nil {
		s.markDownLocked(err)
		return "", fmt.Errorf("%w: stor %s: %v", ErrUploadFailed, remote, err)
	}

	// The public URL mirrors the exact remote path so the two can never
	// diverge.
	return s.publicBase + remote, nil
}

func (s *FTPStore) Delete(ctx context.Context, fileURL string) error {
	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("parse file url %q: %w", fileURL, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.up {
		return ErrNotConnected
	}
	if err := s.conn.Delete(u.Path); err != nil {
		return fmt.Errorf("delete %s: %w", u.Path, err)
	}
	return nil
}

// Close stops the keepalive loop and quits the connection.
func (s *FTPStore) Close() error {
	close(s.stop)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.up {
		s.up = false
		return s.conn.Quit()
	}
	return nil
}

// remotePath is the single source of truth for where a named file lives on
// the server; Upload's returned URL is derived from it.
func (s *FTPStore) remotePath(name string) string {
	return path.Join("/", s.basePath, name)
}

func (s *FTPStore) connect() error {
	conn, err := ftp.Dial(s.addr, ftp.DialWithTimeout(ftpDialTimeout))
	if err != nil {
		return fmt.Errorf("ftp dial %s: %w", s.addr, err)
	}
	if err := conn.Login(s.user, s.password); err != nil {
		conn.Quit()
		return fmt.Errorf("ftp login: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.up = true
	s.mu.Unlock()
	log.Println("FTP client connected")
	return nil
}

// markDownLocked flags the connection as dead and kicks off the reconnect
// loop. Caller must hold s.mu.
func (s *FTPStore) markDownLocked(cause error) {
	if !s.up {
		return
	}
	s.up = false
	log.Printf("FTP connection lost (%v), reconnecting...", cause)
	go s.reconnect()
}

// reconnect retries every reconnectDelay until a connection is established,
// with no attempt limit.
func (s *FTPStore) reconnect() {
	for {
		select {
		case <-s.stop:
			return
		case <-time.After(reconnectDelay):
		}
		err := s.connect()
		if err == nil {
			return
		}
		log.Printf("FTP reconnect failed: %v", err)
	}
}

// keepalive sends a NOOP on an idle connection; an error there is how a
// silently closed connection gets detected.
func (s *FTPStore) keepalive() {
	ticker := time.NewTicker(keepaliveEvery)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		}
		s.mu.Lock()
		if s.up {
			if err := s.conn.NoOp(); err != nil {
				s.markDownLocked(err)
			}
		}
		s.mu.Unlock()
	}
}
