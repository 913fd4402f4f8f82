package api

import "io"

// Fallback archive names used when a response carries no usable
// Content-Disposition filename.
const (
	EncryptFallbackName  = "encrypted_outputs.zip"
	CompareFallbackName  = "ai_priority_outputs.zip"
	DownloadFallbackName = "download.bin"
)

// Cipher modes and scheduling policies accepted by the server. The first
// entry of each is the server default.
var (
	Modes    = []string{"gcm", "ctr"}
	Policies = []string{"priority", "fifo"}
)

const (
	DefaultMode   = "gcm"
	DefaultPolicy = "priority"
)

// Upload is one file part of a multipart request. Open is called once,
// while the request body is being written.
type Upload struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// EncryptRequest is the form of POST /api/encrypt.
type EncryptRequest struct {
	Password string
	Mode     string
	Policy   string
	Files    []Upload
}

// CompareRequest is the form of POST /api/compare.
type CompareRequest struct {
	Password string
	Mode     string
	Files    []Upload
}

// DecryptRequest is the form of POST /api/decrypt.
type DecryptRequest struct {
	Password string
	File     Upload
}

// Settings is the body of GET /api/settings.
type Settings struct {
	Workers int `json:"workers"`
	ChunkMB int `json:"chunk_mb"`
}

// Archive is a binary response body with its resolved filename.
type Archive struct {
	Filename string
	Data     []byte
}

// EncryptResult is a successful encrypt response.
type EncryptResult struct {
	Archive
	Elapsed float64
}

// CompareResult is a successful compare response. The archive is the
// output of the AI-Priority run.
type CompareResult struct {
	Archive
	FIFO float64
	AI   float64
}

// DecryptResult is a successful decrypt response.
type DecryptResult struct {
	SessionID string   `json:"session_id"`
	Files     []string `json:"files"`
}

// errorBody is the JSON shape of a failed response.
type errorBody struct {
	Error string `json:"error"`
}
