package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gleam_backend/internal/config"
	"gleam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeaderFor(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func contentServiceWithLocalStorage(t *testing.T) (*ContentService, string) {
	t.Helper()
	dir := t.TempDir()
	storage := &StorageService{
		Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}},
	}
	return &ContentService{Storage: storage}, dir
}

func TestUploadFileRejectsNonImageNonPDF(t *testing.T) {
	svc, dir := contentServiceWithLocalStorage(t)

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"executable", "payload.exe", "application/octet-stream"},
		{"executable claiming image type", "payload.exe", "image/png"},
		{"image type with html extension", "page.html", "image/png"},
		{"pdf type with exe extension", "payload.exe", "application/pdf"},
		{"script", "run.sh", "text/x-shellscript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := fileHeaderFor(t, tt.filename, tt.contentType, []byte("MZcontent"))
			_, err := svc.UploadFile(context.Background(), file)
			assert.ErrorIs(t, err, util.ErrInvalidUploadType)
		})
	}

	// Nothing may reach storage on refusal.
	entries, err := os.ReadDir(filepath.Join(dir, "materials"))
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestUploadFileAcceptsImageAndPDF(t *testing.T) {
	svc, dir := contentServiceWithLocalStorage(t)

	tests := []struct {
		name        string
		filename    string
		contentType string
		wantExt     string
	}{
		{"png image", "foto.png", "image/png", ".png"},
		{"jpeg image", "foto.JPG", "image/jpeg", ".jpg"},
		{"pdf document", "materi.pdf", "application/pdf", ".pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := fileHeaderFor(t, tt.filename, tt.contentType, []byte("content"))
			url, err := svc.UploadFile(context.Background(), file)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(url, tt.wantExt), "url %q should end in %s", url, tt.wantExt)
		})
	}

	entries, err := os.ReadDir(filepath.Join(dir, "materials"))
	require.NoError(t, err)
	assert.Len(t, entries, len(tests))
}
