package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	aws := &S3Store{cfg: Config{Bucket: "salon", Region: "sa-east-1"}}
	assert.Equal(t, "https://salon.s3.sa-east-1.amazonaws.com/products/p1.webp", aws.URL("products/p1.webp"))

	minio := &S3Store{cfg: Config{Bucket: "salon", Endpoint: "http://localhost:9000/"}}
	assert.Equal(t, "http://localhost:9000/salon/products/p1.webp", minio.URL("products/p1.webp"))
}

func TestNewS3RequiresBucket(t *testing.T) {
	_, err := NewS3(Config{})
	assert.Error(t, err)
}

func TestPutAgainstCompatibleServer(t *testing.T) {
	var (
		gotPath        string
		gotContentType string
		gotBody        []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewS3(Config{
		Bucket:          "salon",
		Endpoint:        srv.URL,
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		PathStyle:       true,
	})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "products/p1.webp", []byte("webp-bytes"), "image/webp")
	require.NoError(t, err)

	assert.Equal(t, "/salon/products/p1.webp", gotPath)
	assert.Equal(t, "image/webp", gotContentType)
	assert.Contains(t, string(gotBody), "webp-bytes")
	assert.Equal(t, srv.URL+"/salon/products/p1.webp", url)
}
