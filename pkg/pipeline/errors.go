package pipeline

import (
	"errors"
	"fmt"
)

// Category classifies a failure so callers can react without inspecting messages.
type Category int

const (
	// CategoryUnknown is used for errors that were never classified.
	CategoryUnknown Category = iota
	// CategoryArgument covers a wrong argument count or input extension.
	CategoryArgument
	// CategoryInput covers a missing or corrupt input, or missing stream info.
	CategoryInput
	// CategoryResource covers buffer and context allocation failures.
	CategoryResource
	// CategoryEncode covers per-frame encode and output failures.
	CategoryEncode
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryArgument:
		return "argument"
	case CategoryInput:
		return "input"
	case CategoryResource:
		return "resource"
	case CategoryEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit status used for the category.
func (c Category) ExitCode() int {
	switch c {
	case CategoryArgument:
		return 2
	case CategoryInput:
		return 3
	case CategoryResource:
		return 4
	case CategoryEncode:
		return 5
	default:
		return 1
	}
}

// Error is a categorized pipeline failure.
type Error struct {
	Category Category
	Op       string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a category and operation name.
func NewError(category Category, op string, err error) *Error {
	return &Error{Category: category, Op: op, Err: err}
}

// ArgumentError wraps err as CategoryArgument.
func ArgumentError(op string, err error) error { return NewError(CategoryArgument, op, err) }

// InputError wraps err as CategoryInput.
func InputError(op string, err error) error { return NewError(CategoryInput, op, err) }

// ResourceError wraps err as CategoryResource.
func ResourceError(op string, err error) error { return NewError(CategoryResource, op, err) }

// EncodeError wraps err as CategoryEncode.
func EncodeError(op string, err error) error { return NewError(CategoryEncode, op, err) }

// CategoryOf returns the category of the outermost *Error in err's chain.
func CategoryOf(err error) Category {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Category
	}
	return CategoryUnknown
}
