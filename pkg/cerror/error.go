package cerror

import (
	"go.uber.org/zap/zapcore"
)

// NewError builds an error-level CustomError. Client errors usually downgrade
// it with SetSeverity.
func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

// WithFields returns a copy so the shared errors in constants.go stay untouched.
func (cerr *CustomError) WithFields(logFields ...zapcore.Field) *CustomError {
	copied := *cerr
	copied.LogFields = append(append([]zapcore.Field{}, cerr.LogFields...), logFields...)
	return &copied
}
