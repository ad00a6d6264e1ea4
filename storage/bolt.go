package storage

import (
	"encoding/json"
	"sync"

	bolt "go.etcd.io/bbolt"

	"github.com/yuesf/travel/log"
)

const defaultBucket = "travel"

// 异步写入队列长度
const defaultQueueSize = 64

// writeOp 一次待执行的写操作
type writeOp struct {
	remove bool
	key    string
	value  []byte
}

// Bolt 基于 bbolt 的本地存储实现。
// 单文件单 bucket，适合客户端单进程独占访问
type Bolt struct {
	db     *bolt.DB
	bucket []byte
	logger *log.Logger

	mu      sync.Mutex // 保护 closed 与写队列的投递
	closed  bool
	writeCh chan writeOp
	done    chan struct{}
}

// BoltOption Bolt 选项函数
type BoltOption func(*Bolt)

// WithBucket 设置 bucket 名称
func WithBucket(name string) BoltOption {
	return func(b *Bolt) {
		b.bucket = []byte(name)
	}
}

// WithQueueSize 设置异步写入队列长度
func WithQueueSize(n int) BoltOption {
	return func(b *Bolt) {
		if n > 0 {
			b.writeCh = make(chan writeOp, n)
		}
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *log.Logger) BoltOption {
	return func(b *Bolt) {
		b.logger = logger
	}
}

// Open 打开（不存在则创建）本地存储文件
func Open(path string, opts ...BoltOption) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}

	b := &Bolt{
		db:      db,
		bucket:  []byte(defaultBucket),
		logger:  log.G,
		writeCh: make(chan writeOp, defaultQueueSize),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(b.bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	go b.writeLoop()

	return b, nil
}

// writeLoop 消费异步写入队列
func (b *Bolt) writeLoop() {
	defer close(b.done)
	for op := range b.writeCh {
		if err := b.apply(op); err != nil {
			b.logger.Error().Err(err).Str("key", op.key).Msg("async storage write failed")
		}
	}
}

// apply 执行单个写操作
func (b *Bolt) apply(op writeOp) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(b.bucket)
		if op.remove {
			return bkt.Delete([]byte(op.key))
		}
		return bkt.Put([]byte(op.key), op.value)
	})
}

// enqueue 将写操作投递到异步队列
func (b *Bolt) enqueue(op writeOp) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.writeCh <- op
	return nil
}

// Set 实现 Store 接口
func (b *Bolt) Set(key string, value any, opts ...WriteOption) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	op := writeOp{key: key, value: data}
	if applyWriteOptions(opts).async {
		return b.enqueue(op)
	}
	return b.apply(op)
}

// Get 实现 Store 接口
func (b *Bolt) Get(key string, dest any) (bool, error) {
	if dest == nil {
		return false, ErrNilDest
	}

	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(b.bucket).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Remove 实现 Store 接口
func (b *Bolt) Remove(key string, opts ...WriteOption) error {
	op := writeOp{remove: true, key: key}
	if applyWriteOptions(opts).async {
		return b.enqueue(op)
	}
	return b.apply(op)
}

// Close 实现 Store 接口。排空异步队列后关闭底层文件
func (b *Bolt) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.writeCh)
	b.mu.Unlock()

	<-b.done
	return b.db.Close()
}
