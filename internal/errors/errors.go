// Package errors contains the generator's error taxonomy and helpers for
// wrapping errors with stack traces and mapping them to process exit codes.
package errors

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrInvalidName is returned when the requested name is not a valid class identifier.
	ErrInvalidName = errors.New("invalid name")

	// ErrPrerequisiteMissing is returned when a required base scaffold file is absent.
	ErrPrerequisiteMissing = errors.New("prerequisite missing")

	// ErrModelNotFound is returned when the model is absent from the models root and its groups.
	ErrModelNotFound = errors.New("model not found")

	// ErrAmbiguousModel is returned when the model exists in more than one group.
	ErrAmbiguousModel = errors.New("ambiguous model")

	// ErrTemplateNotFound is returned when a stub is missing from the templates directory.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrWriteFailure is returned when an artifact or the registration file cannot be written.
	ErrWriteFailure = errors.New("write failure")

	// ErrPatchAnchorNotFound is returned when the registration file lacks an insertion anchor.
	ErrPatchAnchorNotFound = errors.New("patch anchor not found")
)

// PrerequisiteMissingError names the missing scaffold file.
type PrerequisiteMissingError struct {
	Path string
	Hint string
}

func (err PrerequisiteMissingError) Error() string {
	if err.Hint == "" {
		return fmt.Sprintf("%s does not exist", err.Path)
	}

	return fmt.Sprintf("%s does not exist. %s", err.Path, err.Hint)
}

func (err PrerequisiteMissingError) Unwrap() error {
	return ErrPrerequisiteMissing
}

// InvalidNameError names the rejected input.
type InvalidNameError struct {
	Name string
}

func (err InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: expected a class name such as User or Blog\\Post", err.Name)
}

func (err InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

// ModelNotFoundError names the model that could not be located.
type ModelNotFoundError struct {
	Name string
}

func (err ModelNotFoundError) Error() string {
	return fmt.Sprintf("model [%s] not found", err.Name)
}

func (err ModelNotFoundError) Unwrap() error {
	return ErrModelNotFound
}

// AmbiguousModelError lists every group that contains the model, in sorted order.
type AmbiguousModelError struct {
	Name   string
	Groups []string
}

func (err AmbiguousModelError) Error() string {
	return fmt.Sprintf("model [%s] exists in more than one group: %s", err.Name, strings.Join(err.Groups, ", "))
}

func (err AmbiguousModelError) Unwrap() error {
	return ErrAmbiguousModel
}

// TemplateNotFoundError names the missing stub.
type TemplateNotFoundError struct {
	TemplateID string
	Path       string
}

func (err TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %s not found at %s", err.TemplateID, err.Path)
}

func (err TemplateNotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}

// WriteError carries the underlying storage error of a failed write.
type WriteError struct {
	Path string
	Err  error
}

func (err WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", err.Path, err.Err)
}

// Unwrap exposes both the sentinel and the storage error to errors.Is.
func (err WriteError) Unwrap() []error {
	return []error{ErrWriteFailure, err.Err}
}

// AnchorNotFoundError names the anchor missing from the registration file.
type AnchorNotFoundError struct {
	Path   string
	Anchor string
}

func (err AnchorNotFoundError) Error() string {
	return fmt.Sprintf("anchor [%s] not found in %s", err.Anchor, err.Path)
}

func (err AnchorNotFoundError) Unwrap() error {
	return ErrPatchAnchorNotFound
}

// ErrorWithExitCode is a custom error that is used to specify the app exit code.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// Errorf creates a new error and wraps in an Error type that contains the stack trace.
func Errorf(message string, args ...any) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already has
// a stack trace, it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// ErrorStack returns the error message followed by the call stack, if one was recorded.
func ErrorStack(err error) string {
	if err == nil {
		return ""
	}

	var goerr *goerrors.Error
	if errors.As(err, &goerr) {
		return goerr.ErrorStack()
	}

	return err.Error()
}

// ExitCode returns the process exit code for err: 0 for nil, the code of an
// ErrorWithExitCode anywhere in the chain, and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var withCode ErrorWithExitCode
	if errors.As(err, &withCode) {
		return withCode.ExitCode
	}

	return 1
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
