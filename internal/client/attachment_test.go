package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachment(t *testing.T) {
	att, err := NewAttachment("notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", att.Name)
	assert.Equal(t, "application/pdf", att.Type)
	assert.Equal(t, int64(8), att.Size)
	assert.True(t, strings.HasPrefix(att.Data, "data:application/pdf;base64,"))
}

func TestNewAttachmentSizeCap(t *testing.T) {
	atLimit := bytes.Repeat([]byte{0xAB}, MaxAttachmentSize)
	_, err := NewAttachment("big.png", "image/png", atLimit)
	assert.NoError(t, err)

	over := append(atLimit, 0xAB)
	_, err = NewAttachment("big.png", "image/png", over)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "big.png")
}
