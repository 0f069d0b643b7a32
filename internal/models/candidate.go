package models

// Candidate is one subtitle record returned by a catalog search
type Candidate struct {
	LanguageCode string // ISO 639-1 code, from ISO639
	DownloadURL  string // Gzip-compressed subtitle, from SubDownloadLink
	FileName     string // Optional, from SubFileName
	Format       string // Optional, from SubFormat (e.g., "srt")
}

// Status is the parsed "<code> <text>" status string of a catalog response
type Status struct {
	Code    int
	Message string // Whole original status string
}

// Success reports whether the catalog accepted the call
func (s Status) Success() bool {
	return s.Code == 200
}
