package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConfigDir is returned when the platform has no per-user config directory
	ErrNoConfigDir = errors.New("config directory not found")

	// ErrInvalidConfigDir is returned when the config directory path exists but is not a directory
	ErrInvalidConfigDir = errors.New("config directory exists but is not a directory")

	// ErrInvalidConfigFile is returned when the config file path exists but is not a regular file
	ErrInvalidConfigFile = errors.New("config file exists but is not a regular file")

	// ErrEmptyName is returned when adding an app without a name
	ErrEmptyName = errors.New("app name must not be empty")

	// ErrEmptyExe is returned when adding an app without an executable
	ErrEmptyExe = errors.New("app executable must not be empty")
)

// AppNotFoundError is returned when no app with the given name is registered
type AppNotFoundError struct {
	Name string
}

func (e *AppNotFoundError) Error() string {
	return fmt.Sprintf("no app with this name found: %s", e.Name)
}

// AppExistsError is returned when adding an app whose name is already taken
type AppExistsError struct {
	Name string
}

func (e *AppExistsError) Error() string {
	return fmt.Sprintf("an app with this name already exists: %s", e.Name)
}

// StorageError represents errors accessing the config file or directory
type StorageError struct {
	Path string
	Op   string // "stat", "mkdir", "read", "write", "rename"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// DecodeError represents a malformed config file
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding config %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError represents a failure to serialize the config
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("error encoding config: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// TimeError represents a span or timestamp that could not be computed,
// parsed or encoded
type TimeError struct {
	Op  string // "add", "round", "convert", "parse", "encode"
	Err error
}

func (e *TimeError) Error() string {
	return fmt.Sprintf("time-related error [%s]: %v", e.Op, e.Err)
}

func (e *TimeError) Unwrap() error {
	return e.Err
}

// LaunchError represents a failure to spawn an app's executable
type LaunchError struct {
	Exe string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Exe, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
