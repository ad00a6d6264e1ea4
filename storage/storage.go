// Package storage 封装设备本地的键值存储。
// 值以 JSON 序列化保存，写入支持同步（默认，落盘后返回）与异步
// （写入队列后立即返回）两种模式。本层不做 TTL 和加密。
package storage

// Store 本地键值存储接口
type Store interface {
	// Set 写入键值。值需可 JSON 序列化
	Set(key string, value any, opts ...WriteOption) error

	// Get 读取键值到 dest。键不存在时返回 (false, nil) 且不修改 dest
	Get(key string, dest any) (bool, error)

	// Remove 删除键
	Remove(key string, opts ...WriteOption) error

	// Close 关闭存储，等待异步写入完成
	Close() error
}

// writeOptions 写入选项
type writeOptions struct {
	async bool
}

// WriteOption 写入选项函数
type WriteOption func(*writeOptions)

// WithAsync 异步写入：入队后立即返回，失败仅记录日志。
// 需要写入落盘后再继续的调用方使用默认的同步模式
func WithAsync() WriteOption {
	return func(o *writeOptions) {
		o.async = true
	}
}

func applyWriteOptions(opts []WriteOption) writeOptions {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
