package log

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/yuesf/travel/log/writer"
)

// Logger 日志记录器
type Logger struct {
	zerolog.Logger
	writer io.Writer
	closer io.Closer // 文件 writer 的资源清理
}

// Close 关闭日志记录器，释放文件资源
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// newLogger 统一的 Logger 构建方法
func newLogger(w io.Writer, opts ...Option) *Logger {
	logger := &Logger{
		writer: w,
		Logger: zerolog.New(w).With().Timestamp().Logger(),
	}

	for _, opt := range opts {
		opt(logger)
	}

	return logger
}

// New 创建输出到控制台的 Logger
func New(opts ...Option) *Logger {
	return newLogger(writer.Console(), opts...)
}

// NewFile 创建文件输出的 Logger
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	c.setDefaults()

	w, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	logger := newLogger(w, opts...)
	if closer, ok := w.(io.Closer); ok {
		logger.closer = closer
	}

	return logger, nil
}

// NewMulti 创建同时输出到文件和控制台的 Logger
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	c.setDefaults()

	fw, err := writer.File(c.toWriterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create file writer: %w", err)
	}

	multi := zerolog.MultiLevelWriter(fw, writer.Console())
	logger := newLogger(multi, opts...)
	if closer, ok := fw.(io.Closer); ok {
		logger.closer = closer
	}

	return logger, nil
}
