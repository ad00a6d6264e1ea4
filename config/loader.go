package config

// Loader 配置加载器接口
type Loader interface {
	// Load 将配置加载到 target
	Load(target any) error

	// Watch 监听配置变更，变更时触发回调
	Watch(callback func()) error
}
