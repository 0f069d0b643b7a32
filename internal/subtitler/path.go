package subtitler

import (
	"path/filepath"
	"strings"
)

// SubtitlesPath returns the sibling .srt path of a media file: the extension is
// replaced, or ".srt" appended when the file name has none.
func SubtitlesPath(mediaPath string) string {
	base := filepath.Base(mediaPath)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return mediaPath + ".srt"
	}
	return strings.TrimSuffix(mediaPath, ext) + ".srt"
}
