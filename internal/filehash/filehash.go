// Package filehash computes the head/tail checksum the catalog indexes media files by.
//
// The checksum is the file size plus the wrapping sum of every little-endian
// uint64 in the first and the last 64 KiB of the file. Only two chunks are
// read, whatever the size of the file.
package filehash

import (
	"encoding/binary"
	"errors"
	"io"
	"strconv"

	"github.com/spf13/afero"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/models"
)

// ChunkSize is the number of bytes read from each end of the file.
const ChunkSize = 65536

// ComputeFile fingerprints a file on the OS filesystem.
func ComputeFile(path string) (models.Fingerprint, error) {
	return Compute(afero.NewOsFs(), path)
}

// Compute fingerprints path on fs.
// Files between ChunkSize and 2*ChunkSize bytes have overlapping head and tail chunks; both are summed.
func Compute(fs afero.Fs, path string) (models.Fingerprint, error) {
	f, err := fs.Open(path)
	if err != nil {
		return models.Fingerprint{}, &apperrors.ErrUnreadable{Path: path, Err: err}
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return models.Fingerprint{}, &apperrors.ErrUnreadable{Path: path, Err: err}
	}
	if size < ChunkSize {
		return models.Fingerprint{}, &apperrors.ErrFileTooSmall{Path: path, Size: size, Min: ChunkSize}
	}

	buf := make([]byte, ChunkSize)
	sum := uint64(size)
	for _, offset := range []int64{0, size - ChunkSize} {
		if err := readChunk(f, buf, offset); err != nil {
			return models.Fingerprint{}, &apperrors.ErrUnreadable{Path: path, Err: err}
		}
		sum = applyChunk(sum, buf)
	}

	fp := models.Fingerprint{
		Hash: strconv.FormatUint(sum, 16),
		Size: uint64(size),
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("path", path).
		Str("hash", fp.Hash).
		Uint64("size", fp.Size).
		Msg("Computed file fingerprint")

	return fp, nil
}

func readChunk(r io.ReaderAt, buf []byte, offset int64) error {
	n, err := r.ReadAt(buf, offset)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// applyChunk adds every little-endian uint64 of chunk to sum, wrapping on overflow.
func applyChunk(sum uint64, chunk []byte) uint64 {
	for i := 0; i+8 <= len(chunk); i += 8 {
		sum += binary.LittleEndian.Uint64(chunk[i:])
	}
	return sum
}
