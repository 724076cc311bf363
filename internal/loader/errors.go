package loader

import "errors"

var (
	ErrInvalidInput       = errors.New("loader: invalid input")
	ErrFileNotFound       = errors.New("loader: batch file not found")
	ErrFileDownloadFailed = errors.New("loader: batch file download failed")
	ErrFileParseFailed    = errors.New("loader: batch file parse failed")
	ErrWrongBucket        = errors.New("loader: file url names a different bucket")
	ErrEmptyRecord        = errors.New("loader: record has no text and no vectors")
	ErrSparseMismatch     = errors.New("loader: sparse indices and values differ in length")
)
