package webpage

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractInfo parses a fetched page into its metadata. Title precedence is
// og:title, then the title tag, then the URL with its scheme stripped.
// The description comes from og:description only, the image from og:image
// only. A favicon URL is derived only when the page has no og:image.
func ExtractInfo(page Page) PageInfo {
	info := PageInfo{
		URL:   page.URL,
		Title: stripScheme(page.URL),
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.HTML))
	if err == nil {
		if title, ok := metaProperty(doc, "og:title"); ok {
			info.Title = title
		} else if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			info.Title = title
		}

		if description, ok := metaProperty(doc, "og:description"); ok {
			info.Description = description
		}

		if image, ok := metaProperty(doc, "og:image"); ok {
			info.ImageURL = image
		}
	}

	if info.ImageURL == "" {
		info.FaviconURL = deriveFaviconURL(page.URL)
	}

	return info
}

// metaProperty reads the content attribute of a meta tag by property name
func metaProperty(doc *goquery.Document, property string) (string, bool) {
	selection := doc.Find(`meta[property="` + property + `"]`).First()
	if selection.Length() == 0 {
		return "", false
	}
	return selection.AttrOr("content", ""), true
}

// stripScheme drops the scheme prefix from a URL for use as a title
func stripScheme(rawURL string) string {
	if idx := strings.Index(rawURL, "://"); idx >= 0 {
		return rawURL[idx+len("://"):]
	}
	return rawURL
}

// deriveFaviconURL points at the conventional favicon location of the host
func deriveFaviconURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host + "/favicon.ico"
}
