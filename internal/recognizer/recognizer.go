package recognizer

import (
	"regexp"

	"github.com/rs/zerolog"
)

// urlTail matches the characters allowed after the host portion of a link.
const urlTail = `[-\w./()?%&=!~#]*`

// Recognizer scans free text for links belonging to the two source
// families: the code forge instance and generic internal pages. The two
// families never share URLs; a forge link is excluded from the page family.
type Recognizer struct {
	forgePattern *regexp.Regexp
	pagePattern  *regexp.Regexp
	logger       zerolog.Logger
}

// NewRecognizer creates a recognizer for the given forge host.
// The page family covers the whole internal 10.0.0.0/8 range.
func NewRecognizer(scheme, forgeHost string, logger zerolog.Logger) *Recognizer {
	forgePattern := regexp.MustCompile(scheme + `://` + regexp.QuoteMeta(forgeHost) + `/` + urlTail)
	pagePattern := regexp.MustCompile(`http://10\.\d{1,3}\.\d{1,3}\.\d{1,3}(?::\d+)?` + urlTail)

	return &Recognizer{
		forgePattern: forgePattern,
		pagePattern:  pagePattern,
		logger:       logger.With().Str("module", "Recognizer").Logger(),
	}
}

// ForgeURLs returns all forge links in text, in order of appearance,
// duplicates included.
func (r *Recognizer) ForgeURLs(text string) []string {
	return r.forgePattern.FindAllString(text, -1)
}

// PageURLs returns all generic internal page links in text, in order of
// appearance, duplicates included. Links that belong to the forge family
// are skipped so each URL is handled by exactly one family.
func (r *Recognizer) PageURLs(text string) []string {
	matches := r.pagePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	var urls []string
	for _, match := range matches {
		if r.forgePattern.MatchString(match) {
			continue
		}
		urls = append(urls, match)
	}
	return urls
}
