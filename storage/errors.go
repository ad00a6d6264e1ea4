package storage

import "errors"

var (
	// ErrClosed 存储已关闭
	ErrClosed = errors.New("storage: store is closed")

	// ErrNilDest Get 的目标指针为 nil
	ErrNilDest = errors.New("storage: destination must be a non-nil pointer")
)
