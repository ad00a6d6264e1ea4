package errors

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// UnknownCode 无法归类的错误使用的默认错误码
const UnknownCode = 500

// Status 错误的状态信息：错误码、用户可见消息和附加元数据
type Status struct {
	Code     int               `json:"code,omitempty"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error 带错误码的结构化错误。
// Code 与后端响应信封的业务码同域（200 表示成功，401 表示会话失效等），
// 客户端侧的传输类错误使用 598/599 两个约定码。
type Error struct {
	Status
	cause error
}

// Error 返回人类可读的错误描述，包含错误链
func (e *Error) Error() string {
	var msg strings.Builder
	msg.WriteString("code=")
	msg.WriteString(strconv.Itoa(e.Code))
	msg.WriteString(", message=")
	msg.WriteString(e.Message)

	if len(e.Metadata) > 0 {
		msg.WriteString(", metadata={")
		first := true
		for k, v := range e.Metadata {
			if !first {
				msg.WriteString(", ")
			}
			msg.WriteString(k)
			msg.WriteByte('=')
			msg.WriteString(v)
			first = false
		}
		msg.WriteByte('}')
	}

	if e.cause != nil {
		msg.WriteString(", cause=")
		msg.WriteString(e.cause.Error())
	}

	return msg.String()
}

// Unwrap 返回底层错误
func (e *Error) Unwrap() error {
	return e.cause
}

// Is 判断 err 是否为相同错误码和消息的 *Error
func (e *Error) Is(err error) bool {
	var te *Error
	if errors.As(err, &te) {
		return e.Code == te.Code && e.Message == te.Message
	}
	return false
}

// WithMetadata 附加元数据，返回新实例保持不可变性
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}
	maps.Copy(err.Metadata, m)
	return err
}

// WithCause 附加底层错误，返回新实例保持不可变性
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	err := e.clone()
	err.cause = cause
	return err
}

// GetCode 返回错误码
func (e *Error) GetCode() int {
	return e.Code
}

// GetMessage 返回用户可见消息
func (e *Error) GetMessage() string {
	return e.Message
}

// GetCause 返回底层错误
func (e *Error) GetCause() error {
	return e.cause
}

// clone 浅拷贝错误，深拷贝元数据
func (e *Error) clone() *Error {
	var metadata map[string]string
	if len(e.Metadata) > 0 {
		metadata = make(map[string]string, len(e.Metadata))
		maps.Copy(metadata, e.Metadata)
	}

	return &Error{
		Status: Status{
			Code:     e.Code,
			Message:  e.Message,
			Metadata: metadata,
		},
		cause: e.cause,
	}
}

// New 创建指定错误码和格式化消息的错误
func New(code int, format string, args ...any) *Error {
	var message string
	if len(args) == 0 {
		message = format
	} else {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Status: Status{
			Code:    code,
			Message: message,
		},
	}
}

// FromError 将任意错误转换为 *Error
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	if te, ok := err.(*Error); ok {
		return te
	}

	return New(UnknownCode, "%v", err)
}

// Wrap 包装底层错误并附加错误码和消息。err 为 nil 时返回 nil
func Wrap(err error, code int, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	return New(code, format, args...).WithCause(err)
}

// Code 返回错误的错误码，非 *Error 按 UnknownCode 处理
func Code(err error) int {
	if err == nil {
		return 0
	}
	return FromError(err).Code
}
