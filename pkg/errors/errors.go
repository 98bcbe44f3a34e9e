package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind 错误类别
func (e *AppError) Kind() Kind {
	switch {
	case e.Code/100 == 404:
		return KindNotFound
	case e.Code == ErrCodeDuplicateEntry:
		return KindAlreadyExists
	case e.Code/100 == 409:
		return KindInvalidParams
	default:
		return KindInternal
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WithCode 包装错误并指定错误码
func WithCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、资源不存在、唯一约束冲突）
// - 5xxxx: 服务端错误（数据库异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误

	// 资源错误（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound = 40401 // 作者不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在

	// 业务规则错误（40000-40099）
	ErrCodeDuplicateEntry = 40009 // 重复记录(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// Kind 错误类别，接口层据此决定HTTP状态码
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidParams
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidParams:
		return "invalid_params"
	default:
		return "internal"
	}
}

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "invalid request body")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// KindOf 返回错误类别，非AppError一律视为内部错误
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	return GetAppError(err).Kind()
}

// IsNotFound 判断是否为资源不存在错误
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// HTTPStatus 错误到HTTP状态码的映射
// 只有NotFound和参数错误属于客户端错误，其余（包括唯一约束冲突）按500处理
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidParams:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
