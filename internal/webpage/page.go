package webpage

// Page holds the raw bytes of a fetched HTML response, parsed once into a
// PageInfo and then discarded.
type Page struct {
	URL  string
	HTML []byte
}

// PageInfo is the metadata extracted from one page. Title is always set;
// the remaining fields may be empty.
type PageInfo struct {
	Title       string
	URL         string
	Description string
	ImageURL    string
	FaviconURL  string
}
