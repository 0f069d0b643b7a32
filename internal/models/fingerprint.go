package models

// Fingerprint identifies a media file in the catalog
type Fingerprint struct {
	Hash string // Head/tail checksum as lowercase hex, not zero-padded
	Size uint64 // File size in bytes
}
