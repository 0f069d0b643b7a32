package models

// SearchQuery is either a FingerprintQuery or a ShowQuery
type SearchQuery interface {
	searchQuery()
	// QueryLanguage is the language the caller wants subtitles for
	QueryLanguage() string
}

// FingerprintQuery searches the catalog by file fingerprint
type FingerprintQuery struct {
	Hash     string
	Size     uint64
	Language string
}

// ShowQuery searches the catalog by show title and episode
type ShowQuery struct {
	Title    string
	Season   int
	Episode  int
	Language string
}

func (FingerprintQuery) searchQuery() {}
func (ShowQuery) searchQuery() {}

func (q FingerprintQuery) QueryLanguage() string { return q.Language }
func (q ShowQuery) QueryLanguage() string { return q.Language }
