package release

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name": "` + tag + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckReportsNewerVersion(t *testing.T) {
	srv := feed(t, "v1.4.0")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.3.2"})
	require.NoError(t, err)

	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.4.0", res.LatestVersion)
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := feed(t, "v1.3.2")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.3.2"})
	require.NoError(t, err)

	assert.False(t, res.UpdateAvailable)
}

func TestCheckNormalizesBareTags(t *testing.T) {
	srv := feed(t, "1.5.0")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "1.4.9"})
	require.NoError(t, err)

	assert.True(t, res.UpdateAvailable)
}

func TestCheckRejectsDevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.True(t, errors.Is(err, ErrDevBuild))
}

func TestCheckFailsOnBadTag(t *testing.T) {
	srv := feed(t, "nightly")
	c := NewChecker(WithBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCheckFailsOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURL(srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
