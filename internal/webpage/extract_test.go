package webpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInfo_OpenGraphTakesPrecedence(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Dashboard"/>
		<title>Ignored Title</title>
		<meta property="og:description" content="Internal service dashboard"/>
		<meta property="og:image" content="http://10.0.0.5/banner.png"/>
	</head><body></body></html>`

	info := ExtractInfo(Page{URL: "http://10.0.0.5/status", HTML: []byte(html)})

	assert.Equal(t, "Dashboard", info.Title)
	assert.Equal(t, "Internal service dashboard", info.Description)
	assert.Equal(t, "http://10.0.0.5/banner.png", info.ImageURL)
	assert.Empty(t, info.FaviconURL, "favicon should not be derived when og:image exists")
}

func TestExtractInfo_FallsBackToTitleTag(t *testing.T) {
	html := `<html><head><title> Build Status </title></head><body></body></html>`

	info := ExtractInfo(Page{URL: "http://10.0.0.5/ci", HTML: []byte(html)})

	assert.Equal(t, "Build Status", info.Title)
	assert.Empty(t, info.Description)
}

func TestExtractInfo_FallsBackToURLWithoutScheme(t *testing.T) {
	info := ExtractInfo(Page{URL: "http://10.0.0.5:8080/raw", HTML: []byte("<html></html>")})

	assert.Equal(t, "10.0.0.5:8080/raw", info.Title)
}

func TestExtractInfo_DerivesFaviconWhenNoImage(t *testing.T) {
	html := `<html><head><title>Wiki</title></head><body></body></html>`

	info := ExtractInfo(Page{URL: "http://10.0.0.5:3000/wiki/Home", HTML: []byte(html)})

	assert.Equal(t, "http://10.0.0.5:3000/favicon.ico", info.FaviconURL)
}

func TestExtractInfo_IgnoresNonOpenGraphMeta(t *testing.T) {
	html := `<html><head>
		<title>Plain</title>
		<meta name="description" content="Not an og description"/>
	</head></html>`

	info := ExtractInfo(Page{URL: "http://10.0.0.5/", HTML: []byte(html)})

	assert.Equal(t, "Plain", info.Title)
	assert.Empty(t, info.Description)
}

func TestExtractInfo_MalformedHTMLStillProducesTitle(t *testing.T) {
	info := ExtractInfo(Page{URL: "http://10.0.0.5/broken", HTML: []byte("<<<not html")})

	assert.Equal(t, "10.0.0.5/broken", info.Title)
}
