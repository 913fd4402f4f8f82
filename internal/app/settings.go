package app

import (
	"context"
	"strconv"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

// Labels shown when the server's settings cannot be fetched.
const (
	DefaultWorkersLabel = "4 (Default)"
	DefaultChunkLabel   = "8 (Default)"
)

// SettingsSource provides the server's tuned defaults.
type SettingsSource interface {
	Settings(ctx context.Context) (*api.Settings, error)
}

// FetchSettings fetches the display-only worker and chunk values and pushes
// them to every view. Any failure falls back to the default labels; no
// error is returned.
func FetchSettings(ctx context.Context, src SettingsSource, views ...SettingsView) (workers, chunkMB string) {
	workers, chunkMB = DefaultWorkersLabel, DefaultChunkLabel

	s, err := src.Settings(ctx)
	if err == nil && s == nil {
		err = errors.ErrEmptySettings
	}
	if err != nil {
		log.Warn("settings unavailable, using defaults", log.Err(err))
	} else {
		workers, chunkMB = strconv.Itoa(s.Workers), strconv.Itoa(s.ChunkMB)
	}

	for _, v := range views {
		if v != nil {
			v.SetSettings(workers, chunkMB)
		}
	}
	return workers, chunkMB
}
