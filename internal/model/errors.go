package model

import "fmt"

// ReadError indicates the task file exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError indicates the task file is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError indicates valid JSON that does not have the shape of a task list.
type SchemaError struct {
	Index   int    // element index, or -1 for the top-level value
	Field   string // offending field, empty for the top-level value
	Message string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return "JSON " + e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("task %d: invalid %s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("task %d: %s", e.Index, e.Message)
}

// SerializeError indicates the task list could not be encoded.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("failed to serialize tasks: %v", e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }

// WriteError indicates the encoded task list could not be written to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
