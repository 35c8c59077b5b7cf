package services

import (
	"errors"
	"fmt"
)

// ErrEmptyStore is returned by any store operation attempted before an image is loaded.
var ErrEmptyStore = errors.New("no image loaded")

var errNoPixels = errors.New("image has no pixels")

// ErrUnsupportedFormat marks a path whose extension has no encoder or decoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DecodeError reports an unreadable, corrupt or unsupported input file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failed export: bad extension, permissions or write failure.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
