package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/pkg/apperror"
)

const uploadField = "file"

type receiptUploader struct {
	client *api.Client
}

// NewReceiptUploader creates an uploader for laporan receipt photos
func NewReceiptUploader(client *api.Client) domainRepo.ReceiptUploader {
	return &receiptUploader{client: client}
}

// Upload sends the file and returns the stored URL. The server answers
// either {"url": ...} or {"data": {"url": ...}}.
func (u *receiptUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", apperror.NewRequiredError("filename")
	}
	if r == nil {
		return "", apperror.NewRequiredError("file")
	}

	raw, err := u.client.Upload(ctx, "/laporan/upload", uploadField, filename, r)
	if err != nil {
		return "", err
	}

	var body struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
		URL     string `json:"url"`
		Data    *struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", apperror.NewUnreadableResponseError(0, err)
	}
	if body.Success != nil && !*body.Success {
		return "", apperror.NewServerError(0, body.Message)
	}

	switch {
	case body.URL != "":
		return body.URL, nil
	case body.Data != nil && body.Data.URL != "":
		return body.Data.URL, nil
	default:
		return "", apperror.NewUnreadableResponseError(0, errors.New("upload response has no url"))
	}
}
