package errors

import (
	"errors"
	"fmt"
)

// ErrorType identifies the category of a processing error. The data-shape
// types are fatal to the single file being processed but never to the
// batch; the driver records the file as failed and moves on.
type ErrorType string

const (
	// Data-shape errors raised by the processing pipeline.
	ErrTypeInvalidMonthIndex           ErrorType = "INVALID_MONTH_INDEX"
	ErrTypeUnrecognizedAdjustmentLabel ErrorType = "UNRECOGNIZED_ADJUSTMENT_LABEL"
	ErrTypeIllegalGroupName            ErrorType = "ILLEGAL_GROUP_NAME"
	ErrTypeMalformedYoyRow             ErrorType = "MALFORMED_YOY_ROW"
	ErrTypeUnknownSeriesColumn         ErrorType = "UNKNOWN_SERIES_COLUMN"
	ErrTypeUnknownFileType             ErrorType = "UNKNOWN_FILE_TYPE"
	ErrTypeUnknownVariableName         ErrorType = "UNKNOWN_VARIABLE_NAME"
	ErrTypeUnknownFIPSCode             ErrorType = "UNKNOWN_FIPS_CODE"

	// Ambient error types.
	ErrTypeParsing ErrorType = "PARSING"
	ErrTypeStorage ErrorType = "STORAGE"
	ErrTypeConfig  ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new application error
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of err if it is (or wraps) an AppError,
// and "" otherwise.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}

// Helper constructors for the pipeline error types. Each carries the source
// filename and, where relevant, the offending row so the driver can log a
// useful failure record.

// NewInvalidMonthIndex reports a negative month index.
func NewInvalidMonthIndex(month int) *AppError {
	return New(ErrTypeInvalidMonthIndex,
		fmt.Sprintf("month index %d is negative", month), nil)
}

// NewUnrecognizedAdjustmentLabel reports a data row whose free-text label
// matches neither the seasonally-adjusted nor the unadjusted vocabulary.
func NewUnrecognizedAdjustmentLabel(source string, row []string) *AppError {
	return New(ErrTypeUnrecognizedAdjustmentLabel,
		fmt.Sprintf("data row does not specify seasonal adjustment in %s", source), nil).
		WithContext("source", source).
		WithContext("row", row)
}

// NewIllegalGroupName reports a group label outside the legal set for the
// file type.
func NewIllegalGroupName(source string, group string, row []string) *AppError {
	return New(ErrTypeIllegalGroupName,
		fmt.Sprintf("data row contains illegal group name %q in %s", group, source), nil).
		WithContext("source", source).
		WithContext("row", row)
}

// NewMalformedYoyRow reports an improperly formatted YOY summary row.
func NewMalformedYoyRow(source string, row []string) *AppError {
	return New(ErrTypeMalformedYoyRow,
		fmt.Sprintf("YOY summary data row improperly formatted in %s", source), nil).
		WithContext("source", source).
		WithContext("row", row)
}

// NewUnknownSeriesColumn reports a chart value column that does not resolve
// to a known internal series key.
func NewUnknownSeriesColumn(key string, known []string) *AppError {
	return New(ErrTypeUnknownSeriesColumn,
		fmt.Sprintf("series key %q does not exist in %v", key, known), nil)
}

// NewUnknownFileType reports a filename prefix with no registered pipeline.
func NewUnknownFileType(prefix string) *AppError {
	return New(ErrTypeUnknownFileType,
		fmt.Sprintf("no pipeline registered for file prefix %q", prefix), nil)
}

// NewUnknownVariableName reports a snapshot row with an unrecognized
// variable name.
func NewUnknownVariableName(source string, varName string, row []string) *AppError {
	return New(ErrTypeUnknownVariableName,
		fmt.Sprintf("data snapshot row contains unknown variable name %q in %s", varName, source), nil).
		WithContext("source", source).
		WithContext("row", row)
}

// NewUnknownFIPSCode reports a map row whose state code has no known
// abbreviation.
func NewUnknownFIPSCode(source string, code string) *AppError {
	return New(ErrTypeUnknownFIPSCode,
		fmt.Sprintf("unsupported FIPS code %q in %s", code, source), nil).
		WithContext("source", source)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return New(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return New(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause)
}
