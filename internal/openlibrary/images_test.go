package openlibrary

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveJPEG(t *testing.T, width, height int) *httptest.Server {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(buf.Bytes())
	}))
}

func TestDownloadCoverResizesWideImages(t *testing.T) {
	server := serveJPEG(t, 1200, 800)
	defer server.Close()

	client := testClient(server.URL)
	savePath := filepath.Join(t.TempDir(), "covers", "test.jpg")

	require.NoError(t, client.DownloadCover(context.Background(), server.URL, savePath, 600))

	saved, err := imaging.Open(savePath)
	require.NoError(t, err)
	assert.Equal(t, 600, saved.Bounds().Dx())
}

func TestDownloadCoverKeepsSmallImages(t *testing.T) {
	server := serveJPEG(t, 300, 450)
	defer server.Close()

	client := testClient(server.URL)
	savePath := filepath.Join(t.TempDir(), "test.jpg")

	require.NoError(t, client.DownloadCover(context.Background(), server.URL, savePath, 600))

	saved, err := imaging.Open(savePath)
	require.NoError(t, err)
	assert.Equal(t, 300, saved.Bounds().Dx())
	assert.Equal(t, 450, saved.Bounds().Dy())
}

func TestDownloadCoverStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(server.URL)
	err := client.DownloadCover(context.Background(), server.URL, filepath.Join(t.TempDir(), "x.jpg"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
