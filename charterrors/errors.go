package charterrors

import (
	"errors"
	"strings"
)

// Results (R) Errors
var (
	ErrMissingInput   = errors.New("R1|MissingInput: no file found")
	ErrMalformedRow   = errors.New("R2|MalformedRow: Row does not match the table schema.")
	ErrEmptyTable     = errors.New("R3|EmptyTable: Results file holds no data rows.")
	ErrBadHeader      = errors.New("R4|BadHeader: Header must name the line count column and at least one series.")
	ErrUnknownVariant = errors.New("R5|UnknownVariant: Results file variant is not header or headerless.")
)

// Chart (C) Errors
var (
	ErrUnknownFormat = errors.New("C1|UnknownFormat: Output format is not one of png, svg, pdf, jpg, html.")
	ErrRenderFailed  = errors.New("C2|RenderFailed: Chart could not be encoded or written.")
	ErrBadSize       = errors.New("C3|BadSize: Chart width and height must be positive.")
)

// Benchmark (B) Errors
var (
	ErrUnknownHasher  = errors.New("B1|UnknownHasher: No hasher registered under that name.")
	ErrEmptyCorpus    = errors.New("B2|EmptyCorpus: Corpus file has no lines.")
	ErrNotRegularFile = errors.New("B3|NotRegularFile: Corpus path must be a regular file.")
)

var all = []error{
	ErrMissingInput, ErrMalformedRow, ErrEmptyTable, ErrBadHeader, ErrUnknownVariant,
	ErrUnknownFormat, ErrRenderFailed, ErrBadSize,
	ErrUnknownHasher, ErrEmptyCorpus, ErrNotRegularFile,
}

// Classify returns the sentinel err wraps, or nil when it wraps none of them.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range all {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}

// GetErrorName extracts the error name from the error message.
func GetErrorName(err error) string {
	if err == nil {
		return "No Error"
	}
	if sentinel := Classify(err); sentinel != nil {
		err = sentinel
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") || !strings.Contains(errStr, ":") {
		return errStr
	}
	parts := strings.SplitN(errStr, "|", 2)
	nameDesc := parts[1]
	// Split on ':' to separate the error name from its description.
	nameParts := strings.SplitN(nameDesc, ":", 2)
	return strings.TrimSpace(nameParts[0])
}

// GetErrorCode extracts the error code from the error message.
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	if sentinel := Classify(err); sentinel != nil {
		err = sentinel
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") {
		return ""
	}
	parts := strings.SplitN(errStr, "|", 2)
	return strings.TrimSpace(parts[0])
}

// GetErrorDesc extracts the error description from the error message.
func GetErrorDesc(err error) string {
	if err == nil {
		return ""
	}
	if sentinel := Classify(err); sentinel != nil {
		err = sentinel
	}
	parts := strings.SplitN(err.Error(), ":", 2)
	if len(parts) < 2 {
		return "DESC NOT SET"
	}
	return strings.TrimSpace(parts[1])
}
