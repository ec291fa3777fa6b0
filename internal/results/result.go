// internal/results/result.go
package results

// ResultStatus is the coarse classification every caller maps to a
// transport status. The set is closed; finer-grained tags go in ErrorType.
type ResultStatus string

const (
	StatusSuccess         ResultStatus = "Success"
	StatusValidationError ResultStatus = "ValidationError"
	StatusNotFound        ResultStatus = "NotFound"
	StatusFailed          ResultStatus = "Failed"
	StatusInternalError   ResultStatus = "InternalServerError"
)

// Common ErrorType tags. ErrorType is a free-text tag, not a closed enum;
// handlers may introduce operation-specific tags (e.g. "AddToCartFailed").
const (
	ErrTypeValidation     = "ValidationError"
	ErrTypeNotFound       = "NotFound"
	ErrTypeAlreadyExists  = "AlreadyExists"
	ErrTypeAlreadyDeleted = "AlreadyDeleted"
	ErrTypeUnauthorized   = "Unauthorized"
	ErrTypeFailed         = "Failed"
	ErrTypeInternal       = "InternalServerError"
)

// Result is the uniform envelope returned by every handler. Handlers never
// let an error escape; failures are folded into the envelope.
type Result[T any] struct {
	Success   bool         `json:"success"`
	Data      T            `json:"data,omitempty"`
	Message   string       `json:"message,omitempty"`
	ErrorType string       `json:"error_type,omitempty"`
	Status    ResultStatus `json:"status"`
	Err       error        `json:"-"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data, Status: StatusSuccess}
}

func OkMsg[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message, Status: StatusSuccess}
}

func Validation[T any](message string) Result[T] {
	return Result[T]{Message: message, ErrorType: ErrTypeValidation, Status: StatusValidationError}
}

func NotFound[T any](message string) Result[T] {
	return Result[T]{Message: message, ErrorType: ErrTypeNotFound, Status: StatusNotFound}
}

// Fail builds a generic failure with an operation-specific tag.
func Fail[T any](errorType, message string, err error) Result[T] {
	return Result[T]{Message: message, ErrorType: errorType, Status: StatusFailed, Err: err}
}

func Internal[T any](message string, err error) Result[T] {
	return Result[T]{Message: message, ErrorType: ErrTypeInternal, Status: StatusInternalError, Err: err}
}

// PaginatedResult is the envelope used uniformly by list queries.
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

func Paginate[T any](data []T, page, size int, total int64) PaginatedResult[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	if data == nil {
		data = []T{}
	}
	return PaginatedResult[T]{
		Data:       data,
		PageNumber: page,
		PageSize:   size,
		TotalCount: total,
		TotalPages: pages,
	}
}
