// Package parallel 并行请求工具。
// 页面首屏常需要同时拉取多个互不依赖的接口，这里提供
// 带并发控制、进度回调和快速失败的并行执行能力
package parallel

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/yuesf/travel/errors"
)

// DefaultConcurrency 批量执行的默认并发数
const DefaultConcurrency = 3

// Task 一个可并行执行的请求
type Task[T any] func(ctx context.Context) (T, error)

// Result 单个任务的执行结果
type Result[T any] struct {
	Value T
	Err   error
}

type options struct {
	failFast    bool
	concurrency int
	onProgress  func(completed, total int)
}

// Option 并行执行选项
type Option func(*options)

// WithFailFast 任一任务失败立即取消其余任务并返回该错误。
// 默认所有任务都执行完，失败的任务在结果里携带错误
func WithFailFast() Option {
	return func(o *options) {
		o.failFast = true
	}
}

// WithConcurrency 限制同时执行的任务数，0 表示全部并行
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithProgress 设置进度回调，每完成一个任务调用一次。
// 回调串行执行，无需自行加锁
func WithProgress(fn func(completed, total int)) Option {
	return func(o *options) {
		o.onProgress = fn
	}
}

// All 并行执行所有任务，返回与任务同序的结果切片。
//
// 默认模式下所有任务都会执行完成，单个失败不影响其他任务，
// 错误记录在对应位置的 Result 里，函数本身返回 nil；
// WithFailFast 模式下首个错误会取消剩余任务并作为返回值
func All[T any](ctx context.Context, tasks []Task[T], opts ...Option) ([]Result[T], error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	o := options{concurrency: len(tasks)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency > len(tasks) {
		o.concurrency = len(tasks)
	}

	pool, err := ants.NewPool(o.concurrency)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeServerError, "create worker pool")
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
		firstErr  error
	)
	results := make([]Result[T], len(tasks))

	finish := func(i int, value T, err error) {
		mu.Lock()
		defer mu.Unlock()

		results[i] = Result[T]{Value: value, Err: err}
		completed++
		if o.onProgress != nil {
			o.onProgress(completed, len(tasks))
		}
		if err != nil && o.failFast && firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	for i, task := range tasks {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			// 快速失败后跳过尚未开始的任务
			if err := ctx.Err(); err != nil {
				var zero T
				finish(i, zero, err)
				return
			}

			value, err := task(ctx)
			finish(i, value, err)
		})
		if submitErr != nil {
			wg.Done()
			var zero T
			finish(i, zero, submitErr)
		}
	}
	wg.Wait()

	if o.failFast && firstErr != nil {
		return results, firstErr
	}
	return results, nil
}

// Map 并行执行键控任务集，返回同键的结果映射
func Map[T any](ctx context.Context, tasks map[string]Task[T], opts ...Option) (map[string]Result[T], error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(tasks))
	fns := make([]Task[T], 0, len(tasks))
	for k, fn := range tasks {
		keys = append(keys, k)
		fns = append(fns, fn)
	}

	results, err := All(ctx, fns, opts...)
	out := make(map[string]Result[T], len(keys))
	for i, k := range keys {
		out[k] = results[i]
	}
	return out, err
}

// Batch 以受限并发批量执行任务，等价于 All + WithConcurrency
func Batch[T any](ctx context.Context, tasks []Task[T], concurrency int, opts ...Option) ([]Result[T], error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return All(ctx, tasks, append(opts, WithConcurrency(concurrency))...)
}
