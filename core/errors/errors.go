// Package errors provides the error taxonomy for UDDF parsing and reference resolution.
//
// Parse failures and duplicate identifiers are fail-fast errors. Unresolved
// references are collected by the resolver and only become an error when a
// caller asks for it (see logbook.ParseAndResolve). Validation findings are
// never errors; they are returned as data by the validate package.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates malformed or structurally invalid input
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateID indicates two elements share the same identifier
	ErrDuplicateID = errors.New("duplicate identifier")
	// ErrUnresolvedReference indicates a reference names no known identifier
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "document", "job", "element")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ParseError represents a decoding failure: malformed XML, a missing
// required element, a type mismatch or an invalid version string.
type ParseError struct {
	Format  string // Format being parsed (e.g., "UDDF", "XML", "version")
	Path    string // File path or element path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

// Unwrap matches ErrInvalidInput as well as the underlying error.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidInput, e.Err}
	}
	return []error{ErrInvalidInput}
}

// DuplicateIDError reports an identifier registered twice in one document.
type DuplicateIDError struct {
	ID        string // The offending identifier
	Path      string // Location of the second occurrence
	FirstPath string // Location of the first occurrence
}

func (e *DuplicateIDError) Error() string {
	if e.Path != "" && e.FirstPath != "" {
		return fmt.Sprintf("duplicate identifier %q at %s (first defined at %s)", e.ID, e.Path, e.FirstPath)
	}
	return fmt.Sprintf("duplicate identifier %q", e.ID)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// UnresolvedReferenceError aggregates every dangling reference of a document.
type UnresolvedReferenceError struct {
	Refs     []string // Dangling reference strings, in document order
	Messages []string // One human-readable message per dangling reference
}

func (e *UnresolvedReferenceError) Error() string {
	switch len(e.Messages) {
	case 0:
		return "unresolved reference"
	case 1:
		return "unresolved reference: " + e.Messages[0]
	}
	return fmt.Sprintf("%d unresolved references: %s", len(e.Messages), strings.Join(e.Messages, "; "))
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewDuplicateID creates a DuplicateIDError
func NewDuplicateID(id, path, firstPath string) *DuplicateIDError {
	return &DuplicateIDError{
		ID:        id,
		Path:      path,
		FirstPath: firstPath,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
