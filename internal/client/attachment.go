package client

import (
	"encoding/base64"
	"fmt"

	"study-tracker/internal/model"
)

// MaxAttachmentSize caps a single attachment payload. Enforced here
// before encoding; the server accepts whatever it is sent.
const MaxAttachmentSize = 5 * 1024 * 1024

// NewAttachment encodes a file into the stored attachment shape: the
// payload becomes a self-describing data URI.
func NewAttachment(name, mediaType string, data []byte) (*model.Attachment, error) {
	if len(data) > MaxAttachmentSize {
		return nil, fmt.Errorf("attachment %q exceeds %d byte limit", name, MaxAttachmentSize)
	}
	return &model.Attachment{
		Name: name,
		Data: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Type: mediaType,
		Size: int64(len(data)),
	}, nil
}
