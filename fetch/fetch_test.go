package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><body><div class="courseblock">CS 171</div><p>` + r.Header.Get("User-Agent") + `</p></body></html>`))
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 5 * time.Second, UserAgent: "drexel-api-test"})

	document, err := client.Document(context.Background(), server.URL+"/catalog")
	require.NoError(t, err)
	require.Equal(t, "CS 171", document.Find("div.courseblock").Text())
	require.Equal(t, "drexel-api-test", document.Find("p").Text())

	_, err = client.Document(context.Background(), server.URL+"/missing")
	require.ErrorContains(t, err, "404")
}

func TestDocumentCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(Options{}).Document(ctx, server.URL)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubs.html")
	require.NoError(t, os.WriteFile(path, []byte(`<p>Chess Club</p>`), 0o644))

	document, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Chess Club", document.Find("p").Text())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.html"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
