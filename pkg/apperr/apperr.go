package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindStore
	KindUpload
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	case KindUpload:
		return "upload"
	default:
		return "unknown"
	}
}

// Error 业务错误
// Message is safe to show to clients; Err carries the internal cause.
type Error struct {
	Kind    Kind
	Message string
	Code    string
	Status  int // overrides the kind's default status when non-zero
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Code: CodeValidation}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Code: CodeNotFound}
}

func Store(msg string, err error) *Error {
	return &Error{Kind: KindStore, Message: msg, Code: CodeStore, Err: err}
}

// Upload 媒体上传错误，文件约束类错误返回 400，服务端失败返回 500
func Upload(status int, code, msg string, err error) *Error {
	return &Error{Kind: KindUpload, Message: msg, Code: code, Status: status, Err: err}
}

// As 提取 *Error，非业务错误统一视为 Unknown
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Message: "Internal server error", Code: CodeInternal, Err: err}
}

// IsKind 判断错误类型
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// HTTPStatus 错误到 HTTP 状态码的映射
func HTTPStatus(err error) int {
	e := As(err)
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
