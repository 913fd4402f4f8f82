package app

import (
	"strings"
	"sync"
	"time"
)

// LogKind classifies transcript entries and status lines.
type LogKind int

const (
	LogInfo LogKind = iota
	LogSuccess
	LogError
	LogLink
)

func (k LogKind) String() string {
	switch k {
	case LogInfo:
		return "info"
	case LogSuccess:
		return "success"
	case LogError:
		return "error"
	case LogLink:
		return "link"
	default:
		return "unknown"
	}
}

// Link is a download affordance. Artifact links carry a blob: URL owned by
// an ArtifactStore; decrypt links carry a server URL plus the session and
// member they address.
type Link struct {
	Label     string
	URL       string
	SessionID string
	Member    string
}

// IsArtifact reports whether the link points into an ArtifactStore.
func (l Link) IsArtifact() bool {
	return strings.HasPrefix(l.URL, blobScheme)
}

// LogEntry is one transcript line.
type LogEntry struct {
	Time time.Time
	Kind LogKind
	Text string
	Link *Link
}

// String renders the entry text. Errors carry a distinct prefix.
func (e LogEntry) String() string {
	switch e.Kind {
	case LogError:
		return "Error: " + e.Text
	case LogLink:
		if e.Link != nil {
			return "Download: " + e.Link.Label
		}
	}
	return e.Text
}

// Transcript records a tab's log and forwards each entry to its view.
type Transcript struct {
	mu      sync.Mutex
	entries []LogEntry
	view    LogView
	now     func() time.Time
}

// NewTranscript creates a transcript forwarding to view, which may be nil.
func NewTranscript(view LogView) *Transcript {
	return &Transcript{view: view, now: time.Now}
}

func (t *Transcript) append(e LogEntry) {
	t.mu.Lock()
	e.Time = t.now()
	t.entries = append(t.entries, e)
	view := t.view
	t.mu.Unlock()

	if view != nil {
		view.AppendLog(e)
	}
}

// Info appends a neutral line.
func (t *Transcript) Info(text string) {
	t.append(LogEntry{Kind: LogInfo, Text: text})
}

// Success appends a success line.
func (t *Transcript) Success(text string) {
	t.append(LogEntry{Kind: LogSuccess, Text: text})
}

// Error appends an error line.
func (t *Transcript) Error(text string) {
	t.append(LogEntry{Kind: LogError, Text: text})
}

// AddLink appends a download link.
func (t *Transcript) AddLink(l Link) {
	t.append(LogEntry{Kind: LogLink, Text: l.Label, Link: &l})
}

// Entries returns a snapshot of all entries.
func (t *Transcript) Entries() []LogEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	cp := make([]LogEntry, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Links returns every link entry in order.
func (t *Transcript) Links() []Link {
	t.mu.Lock()
	defer t.mu.Unlock()
	var links []Link
	for _, e := range t.entries {
		if e.Link != nil {
			links = append(links, *e.Link)
		}
	}
	return links
}
