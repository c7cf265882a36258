package schedule

import "fmt"

// Error codes surfaced by the scheduling engine.
const (
	CodeStoreRead  = "storeReadError"
	CodeStoreWrite = "storeWriteError"
	CodeValidation = "validationError"
)

// EngineError is a typed engine failure. The engine never retries; every
// failure propagates to the caller carrying one of the codes above.
type EngineError struct {
	Code    string
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func NewStoreReadError(msg string, err error) error {
	return &EngineError{Code: CodeStoreRead, Message: msg, Err: err}
}

func NewStoreWriteError(msg string, err error) error {
	return &EngineError{Code: CodeStoreWrite, Message: msg, Err: err}
}

func NewValidationError(msg string) error {
	return &EngineError{Code: CodeValidation, Message: msg}
}

// IsValidation reports whether err is an engine validation failure.
func IsValidation(err error) bool {
	if ee, ok := err.(*EngineError); ok {
		return ee.Code == CodeValidation
	}
	return false
}
