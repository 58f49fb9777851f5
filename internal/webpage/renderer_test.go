package webpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/unfurler/internal/scratch"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return NewRenderer(newTestFetcher(t), NewConverter("/nonexistent/converter", zerolog.Nop()), zerolog.Nop())
}

func newTestScratch(t *testing.T) *scratch.Dir {
	t.Helper()
	dir, err := scratch.New(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(dir.Cleanup)
	return dir
}

func TestRenderer_Render_WithImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer server.Close()

	renderer := newTestRenderer(t)
	info := PageInfo{
		Title:       "Dashboard",
		URL:         "http://10.0.0.5/status",
		Description: "Internal service dashboard",
		ImageURL:    server.URL + "/banner.png",
	}

	p, err := renderer.Render(context.Background(), info, newTestScratch(t), 0)
	require.NoError(t, err)

	assert.Equal(t, "Dashboard", p.Title)
	assert.Equal(t, "http://10.0.0.5/status", p.URL)
	assert.Equal(t, "Internal service dashboard", p.Description)
	require.NotNil(t, p.Attachment)
	assert.False(t, p.Attachment.Thumbnail)
	assert.Equal(t, "image-0.png", p.Attachment.Filename)
}

func TestRenderer_Render_ImageFailureOmitsVisualOnly(t *testing.T) {
	renderer := newTestRenderer(t)
	info := PageInfo{
		Title:    "Dashboard",
		URL:      "http://10.0.0.5/status",
		ImageURL: "http://127.0.0.1:1/banner.png",
	}

	p, err := renderer.Render(context.Background(), info, newTestScratch(t), 0)
	require.NoError(t, err)

	assert.Equal(t, "Dashboard", p.Title)
	assert.Nil(t, p.Attachment)
}

func TestRenderer_Render_FaviconConversionFailureOmitsVisualOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0x00, 0x00, 0x01, 0x00})
	}))
	defer server.Close()

	renderer := newTestRenderer(t)
	info := PageInfo{
		Title:      "Wiki",
		URL:        "http://10.0.0.5/wiki",
		FaviconURL: server.URL + "/favicon.ico",
	}

	p, err := renderer.Render(context.Background(), info, newTestScratch(t), 1)
	require.NoError(t, err)

	assert.Equal(t, "Wiki", p.Title)
	assert.Nil(t, p.Attachment)
}

func TestRenderer_Render_LongDescriptionPassesThrough(t *testing.T) {
	renderer := newTestRenderer(t)
	description := strings.Repeat("x", 300)
	info := PageInfo{
		Title:       "Long",
		URL:         "http://10.0.0.5/long",
		Description: description,
	}

	p, err := renderer.Render(context.Background(), info, newTestScratch(t), 0)
	require.NoError(t, err)

	assert.Equal(t, description, p.Description, "page descriptions are posted as extracted")
}

func TestImageExtension(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{"http://10.0.0.5/banner.png", ".png"},
		{"http://10.0.0.5/photo.jpeg?size=large", ".jpeg"},
		{"http://10.0.0.5/image", ".png"},
		{"http://10.0.0.5/weird.verylongext", ".png"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, imageExtension(tc.url), tc.url)
	}
}
