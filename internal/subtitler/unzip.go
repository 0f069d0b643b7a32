package subtitler

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"

	"github.com/Belphemur/Subtitler/internal/apperrors"
)

// maxSubtitleSize bounds the decompressed subtitle; real subtitles are a few hundred KiB.
const maxSubtitleSize = 64 << 20

var gzipMagic = []byte{0x1f, 0x8b}

// gunzip decompresses a single-file gzip payload fully into memory.
func gunzip(payload []byte) ([]byte, error) {
	if !bytes.HasPrefix(payload, gzipMagic) {
		return nil, &apperrors.ErrUnzip{
			Reason: fmt.Sprintf("payload is %s, not gzip", mimetype.Detect(payload).String()),
		}
	}

	zr, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, &apperrors.ErrUnzip{Reason: "invalid gzip header", Err: err}
	}
	defer zr.Close()

	content, err := io.ReadAll(io.LimitReader(zr, maxSubtitleSize+1))
	if err != nil {
		return nil, &apperrors.ErrUnzip{Reason: "corrupt gzip stream", Err: err}
	}
	if len(content) > maxSubtitleSize {
		return nil, &apperrors.ErrUnzip{Reason: fmt.Sprintf("decompressed subtitle exceeds %d bytes", maxSubtitleSize)}
	}
	return content, nil
}
