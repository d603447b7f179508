package errors

// ErrorCode is a string identifier for a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeValidation    ErrorCode = "COMMON_003"
	ErrCodeTimeout       ErrorCode = "COMMON_004"
	ErrCodeSerialization ErrorCode = "COMMON_005"
)

// Structure parsing error codes.
const (
	ErrCodeStructureUnreadable ErrorCode = "STRUCT_001"
	ErrCodeStructureMalformed  ErrorCode = "STRUCT_002"
	ErrCodeStructureEmpty      ErrorCode = "STRUCT_003"
)

// Graph construction and artifact error codes.
const (
	ErrCodeGraphEncodeFailed   ErrorCode = "GRAPH_001"
	ErrCodeArtifactWriteFailed ErrorCode = "GRAPH_002"
)

// Batch orchestration error codes.
const (
	ErrCodeGlobInvalid   ErrorCode = "BATCH_001"
	ErrCodeCutoffInvalid ErrorCode = "BATCH_002"
	ErrCodeBatchAborted  ErrorCode = "BATCH_003"
)

// Aliases used throughout the codebase.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// fatalCodes lists the codes that invalidate an entire batch run before any
// per-file work can proceed.  Every other code is recoverable at the
// per-file pipeline boundary.
var fatalCodes = map[ErrorCode]bool{
	ErrCodeGlobInvalid:   true,
	ErrCodeCutoffInvalid: true,
	ErrCodeBadRequest:    true,
	ErrCodeValidation:    true,
}

// IsFatal reports whether code aborts the whole run rather than a single
// file's pipeline.
func IsFatal(code ErrorCode) bool {
	return fatalCodes[code]
}
