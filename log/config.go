package log

import (
	"github.com/yuesf/travel/log/writer"
)

// FileConfig 日志文件配置
type FileConfig struct {
	Filepath         string            `json:"filepath"`
	Filename         string            `json:"filename"`
	FileExt          string            `json:"file_ext"`
	RotateMode       writer.RotateMode `json:"rotate_mode"`
	RotatelogsConfig RotatelogsConfig  `json:"rotatelogs_config"`
	LumberjackConfig LumberjackConfig  `json:"lumberjack_config"`
}

// RotatelogsConfig 按时间轮转配置
type RotatelogsConfig struct {
	MaxAge       int `json:"max_age"`       // 日志保留时间(小时)
	RotationTime int `json:"rotation_time"` // 轮转间隔(小时)
}

// LumberjackConfig 按大小轮转配置
type LumberjackConfig struct {
	MaxSize    int  `json:"max_size"`    // 单文件最大大小(MB)
	MaxBackups int  `json:"max_backups"` // 保留的旧文件数量
	MaxAge     int  `json:"max_age"`     // 保留天数
	Compress   bool `json:"compress"`    // 是否压缩旧文件
}

// setDefaults 填充未设置的字段
func (c *FileConfig) setDefaults() {
	if c.Filepath == "" {
		c.Filepath = "log"
	}
	if c.Filename == "" {
		c.Filename = "travel"
	}
	if c.FileExt == "" {
		c.FileExt = "log"
	}
	if c.RotatelogsConfig.MaxAge == 0 {
		c.RotatelogsConfig.MaxAge = 24
	}
	if c.RotatelogsConfig.RotationTime == 0 {
		c.RotatelogsConfig.RotationTime = 1
	}
	if c.LumberjackConfig.MaxSize == 0 {
		c.LumberjackConfig.MaxSize = 100
	}
	if c.LumberjackConfig.MaxBackups == 0 {
		c.LumberjackConfig.MaxBackups = 5
	}
	if c.LumberjackConfig.MaxAge == 0 {
		c.LumberjackConfig.MaxAge = 30
	}
}

// toWriterConfig 转换为 writer.RotateConfig
func (c *FileConfig) toWriterConfig() writer.RotateConfig {
	return writer.RotateConfig{
		Filepath: c.Filepath,
		Filename: c.Filename,
		FileExt:  c.FileExt,
		Mode:     c.RotateMode,
		TimeRotateConfig: writer.TimeRotateConfig{
			MaxAge:       c.RotatelogsConfig.MaxAge,
			RotationTime: c.RotatelogsConfig.RotationTime,
		},
		SizeRotateConfig: writer.SizeRotateConfig{
			MaxSize:    c.LumberjackConfig.MaxSize,
			MaxBackups: c.LumberjackConfig.MaxBackups,
			MaxAge:     c.LumberjackConfig.MaxAge,
			Compress:   c.LumberjackConfig.Compress,
		},
	}
}
