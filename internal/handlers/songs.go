package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"serverless-examples/internal/config"
	"serverless-examples/internal/payload"
	"serverless-examples/internal/songs"
)

// SongFinder looks songs up by artist
type SongFinder interface {
	ByArtist(ctx context.Context, artist string) ([]songs.Song, error)
}

// SongsHandler answers artist lookups from a generic payload
type SongsHandler struct {
	finder SongFinder
	policy config.QueryErrorPolicy
	logger logrus.FieldLogger
}

// NewSongsHandler creates a songs handler applying policy to query failures
func NewSongsHandler(finder SongFinder, policy config.QueryErrorPolicy, logger logrus.FieldLogger) *SongsHandler {
	return &SongsHandler{
		finder: finder,
		policy: policy,
		logger: logger,
	}
}

// Handle returns the artist's songs. A missing artist yields an empty list; a query failure
// yields an empty list or an invocation error depending on the policy.
func (h *SongsHandler) Handle(ctx context.Context, event payload.Payload) ([]songs.Song, error) {
	log := invocationLogger(ctx, h.logger, "songs")

	artist, ok := payload.String(event, "artist")
	if !ok {
		log.Debug("artist missing, returning empty result")
		return []songs.Song{}, nil
	}

	found, err := h.finder.ByArtist(ctx, artist)
	if err != nil {
		if h.policy == config.QueryErrorFail {
			log.WithError(err).Error("Song query failed")
			return nil, err
		}
		log.WithError(err).Warn("Song query failed, returning empty result")
		return []songs.Song{}, nil
	}

	log.WithFields(logrus.Fields{
		"artist": artist,
		"count":  len(found),
	}).Info("Songs found")

	return found, nil
}
