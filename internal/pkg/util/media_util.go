package util

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// GetSafeContentType 按文件头识别 MIME，读取后将 reader 复位
func GetSafeContentType(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}
