package app

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

const blobScheme = "blob:"

// Artifact describes a received archive held in memory.
type Artifact struct {
	URL      string // blob:<uuid>
	Filename string
	Size     int64
	Digest   string // BLAKE2b-256, hex
}

type storedArtifact struct {
	Artifact
	data  []byte
	timer *time.Timer
}

// Digest returns the hex BLAKE2b-256 of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactStore owns received archives until they are released. Every
// artifact is released after the store's delay whether or not it was
// ever opened.
type ArtifactStore struct {
	mu     sync.Mutex
	items  map[string]*storedArtifact
	delay  time.Duration
	closed bool
}

// NewArtifactStore creates a store releasing artifacts after delay.
func NewArtifactStore(delay time.Duration) *ArtifactStore {
	return &ArtifactStore{
		items: make(map[string]*storedArtifact),
		delay: delay,
	}
}

// Put stores data under a fresh blob URL and schedules its release.
func (s *ArtifactStore) Put(filename string, data []byte) Artifact {
	a := &storedArtifact{
		Artifact: Artifact{
			URL:      blobScheme + uuid.NewString(),
			Filename: filename,
			Size:     int64(len(data)),
			Digest:   Digest(data),
		},
		data: data,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Nothing can be opened after Close; hand back the metadata only.
		return a.Artifact
	}
	url := a.URL
	a.timer = time.AfterFunc(s.delay, func() { s.Release(url) })
	s.items[url] = a

	log.Debug("artifact stored",
		log.String("url", url),
		log.String("filename", filename),
		log.Int64("size", a.Size))
	return a.Artifact
}

// Open returns the artifact at url and its content.
func (s *ArtifactStore) Open(url string) (Artifact, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[url]
	if !ok {
		return Artifact{}, nil, errors.ErrArtifactReleased
	}
	return a.Artifact, a.data, nil
}

// Release drops the artifact at url. Releasing twice is a no-op.
func (s *ArtifactStore) Release(url string) {
	s.mu.Lock()
	a, ok := s.items[url]
	if ok {
		delete(s.items, url)
		a.timer.Stop()
	}
	s.mu.Unlock()

	if ok {
		log.Debug("artifact released", log.String("url", url))
	}
}

// Len returns the number of live artifacts.
func (s *ArtifactStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close releases every artifact and stops all pending timers.
func (s *ArtifactStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for url, a := range s.items {
		a.timer.Stop()
		delete(s.items, url)
	}
	s.closed = true
}
