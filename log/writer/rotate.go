package writer

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateMode 日志轮转模式
type RotateMode int

const (
	// RotateModeTime 按时间轮转
	RotateModeTime RotateMode = iota
	// RotateModeSize 按大小轮转
	RotateModeSize
)

// String 返回轮转模式的字符串表示
func (m RotateMode) String() string {
	switch m {
	case RotateModeTime:
		return "time"
	case RotateModeSize:
		return "size"
	default:
		return "unknown"
	}
}

// RotateConfig 日志轮转配置
type RotateConfig struct {
	Mode             RotateMode
	Filepath         string
	Filename         string
	FileExt          string
	TimeRotateConfig TimeRotateConfig
	SizeRotateConfig SizeRotateConfig
}

// TimeRotateConfig 按时间轮转配置
type TimeRotateConfig struct {
	MaxAge       int // 日志保留时间(小时)
	RotationTime int // 轮转时间间隔(小时)
}

// SizeRotateConfig 按大小轮转配置
type SizeRotateConfig struct {
	MaxSize    int  // 单个日志文件最大大小(MB)
	MaxBackups int  // 保留的旧日志文件数量
	MaxAge     int  // 日志文件保留天数
	Compress   bool // 是否压缩旧日志文件
}

// filename 返回日志文件完整路径，format 为文件名中的时间占位段
func (c *RotateConfig) filename(format string) string {
	name := c.Filename
	if format != "" {
		name += "." + format
	}
	return filepath.Join(c.Filepath, name+"."+c.FileExt)
}

// File 按配置的轮转模式创建文件输出 writer
func File(c RotateConfig) (io.Writer, error) {
	switch c.Mode {
	case RotateModeTime:
		w, err := rotatelogs.New(
			c.filename("%Y%m%d%H%M"),
			rotatelogs.WithLinkName(c.filename("")),
			rotatelogs.WithMaxAge(time.Duration(c.TimeRotateConfig.MaxAge)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(c.TimeRotateConfig.RotationTime)*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create time rotate writer: %w", err)
		}
		return w, nil
	case RotateModeSize:
		return &lumberjack.Logger{
			Filename:   c.filename(""),
			MaxSize:    c.SizeRotateConfig.MaxSize,
			MaxBackups: c.SizeRotateConfig.MaxBackups,
			MaxAge:     c.SizeRotateConfig.MaxAge,
			Compress:   c.SizeRotateConfig.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported rotate mode: %v", c.Mode)
	}
}
