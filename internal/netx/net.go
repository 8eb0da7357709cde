// Package netx holds small HTTP helpers used by the API client.
package netx

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// MultipartFile encodes r as a single-file multipart/form-data body under
// field. It returns the body and the Content-Type header value (boundary
// included) to send with it.
func MultipartFile(field, filename string, r io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copy %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
