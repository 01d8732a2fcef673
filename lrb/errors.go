package lrb

import (
	"errors"
	"fmt"
)

var (
	ErrIo                     = errors.New("lrb: io error")
	ErrInvalidData            = errors.New("lrb: invalid data")
	ErrUnsupportedRequiredMod = errors.New("lrb: unsupported required mod")
	ErrBuild                  = errors.New("lrb: track build failed")
)

// IoError is a truncated or unreadable stream while reading Field
type IoError struct {
	Field string
	Err   error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Field, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

func (e *IoError) Is(target error) bool {
	return target == ErrIo
}

func ioError(field string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Field: field, Err: err}
}

type InvalidDataError struct {
	Name  string
	Value string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid value for `%s`: %s", e.Name, e.Value)
}

func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalidData
}

type UnsupportedRequiredModError struct {
	Name    string
	Version uint16
}

func (e *UnsupportedRequiredModError) Error() string {
	return fmt.Sprintf("required mod not supported: %s v%d", e.Name, e.Version)
}

func (e *UnsupportedRequiredModError) Is(target error) bool {
	return target == ErrUnsupportedRequiredMod
}

// BuildError wraps the track builder failure that ended a decode
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building track: %v", e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func (e *BuildError) Is(target error) bool {
	return target == ErrBuild
}
