package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"serverless-examples/internal/adapters/storage"
	"serverless-examples/internal/payload"
)

// UploadHandler writes the invocation event to a fixed object key
type UploadHandler struct {
	store  storage.ObjectStorage
	key    string
	logger logrus.FieldLogger
}

// NewUploadHandler creates an upload handler writing to key
func NewUploadHandler(store storage.ObjectStorage, key string, logger logrus.FieldLogger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Handle serializes the event and stores it. Any failure aborts the invocation.
func (h *UploadHandler) Handle(ctx context.Context, event payload.Payload) (StatusResponse, error) {
	log := invocationLogger(ctx, h.logger, "upload")

	data, err := json.Marshal(event)
	if err != nil {
		return StatusResponse{}, fmt.Errorf("failed to encode event: %w", err)
	}

	err = h.store.Store(ctx, h.key, data, &storage.StoreOptions{
		ContentType: "application/json",
		Overwrite:   true,
	})
	if err != nil {
		log.WithError(err).Error("Upload failed")
		return StatusResponse{}, err
	}

	log.WithFields(logrus.Fields{
		"key":   h.key,
		"bytes": len(data),
	}).Info("Event uploaded")

	return StatusResponse{Status: "uploaded"}, nil
}
