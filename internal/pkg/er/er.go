package er

import "fmt"

type ErrorCode int

const (
	BadRequestCode      ErrorCode = 400
	UnauthenticatedCode ErrorCode = 401
	UnauthorizedCode    ErrorCode = 403
	NotFoundCode        ErrorCode = 404
	ConflictCode        ErrorCode = 409
	InvalidArgumentCode ErrorCode = 460
	InternalErrorCode   ErrorCode = 500
)

var ErrStrMap = map[ErrorCode]string{
	BadRequestCode:      "bad request",
	UnauthenticatedCode: "unauthenticated",
	UnauthorizedCode:    "unauthorized",
	NotFoundCode:        "not found",
	ConflictCode:        "conflict",
	InvalidArgumentCode: "invalid argument",
	InternalErrorCode:   "internal server error",
}

// PortalError 帶有錯誤碼的業務錯誤
// handler依照Code決定http status
type PortalError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *PortalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PortalError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string) *PortalError {
	return &PortalError{Code: code, Message: message}
}

func Wrap(code ErrorCode, message string, err error) *PortalError {
	return &PortalError{Code: code, Message: message, Err: err}
}
