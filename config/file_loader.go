package config

import (
	"path"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/yuesf/travel/errors"
	tvalidator "github.com/yuesf/travel/validator"
)

// defaulter 可填充自身默认值的配置结构体
type defaulter interface {
	SetDefaults()
}

// FileLoader 从文件加载配置，支持环境变量覆盖
type FileLoader struct {
	viper    *viper.Viper
	validate tvalidator.Validator
	name     string
	paths    []string
}

// NewFileLoader 创建文件加载器
func NewFileLoader(name string, paths []string, v *viper.Viper, validate tvalidator.Validator) *FileLoader {
	configType := strings.TrimPrefix(path.Ext(name), ".")

	for _, configPath := range paths {
		v.AddConfigPath(configPath)
	}

	v.SetConfigName(name)
	v.SetConfigType(configType)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{
		viper:    v,
		paths:    paths,
		name:     name,
		validate: validate,
	}
}

// Load 实现 Loader 接口
func (l *FileLoader) Load(target any) error {
	// 先填充默认值，配置文件中未出现的字段保持默认
	if d, ok := target.(defaulter); ok {
		d.SetDefaults()
	}

	if err := l.viper.ReadInConfig(); err != nil {
		return errors.New(404, "config file not found: %v", err)
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return errors.New(500, "failed to unmarshal config: %v", err)
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.New(400, "invalid config: %v", err)
		}
	}

	return nil
}

// Watch 实现 Loader 接口
func (l *FileLoader) Watch(callback func()) error {
	l.viper.OnConfigChange(func(in fsnotify.Event) {
		if in.Op&fsnotify.Write == fsnotify.Write {
			callback()
		}
	})
	l.viper.WatchConfig()
	return nil
}
