package storage

// 搜索历史最多保留的条数
const maxSearchHistory = 10

// Typed 常用业务键的便捷读写。
// 读取一律失败关闭：任何错误都返回默认值而不是抛出
type Typed struct {
	store Store
}

// NewTyped 创建便捷读写门面
func NewTyped(s Store) *Typed {
	return &Typed{store: s}
}

// Store 返回底层存储
func (t *Typed) Store() Store {
	return t.store
}

// CartCount 购物车数量角标，读取失败返回 0
func (t *Typed) CartCount() int {
	var count int
	if ok, err := t.store.Get(KeyCartCount, &count); !ok || err != nil {
		return 0
	}
	return count
}

// SetCartCount 更新购物车数量角标，异步写入即可
func (t *Typed) SetCartCount(count int) error {
	return t.store.Set(KeyCartCount, count, WithAsync())
}

// SearchHistory 搜索历史，读取失败返回空列表
func (t *Typed) SearchHistory() []string {
	var history []string
	if ok, err := t.store.Get(KeySearchHistory, &history); !ok || err != nil {
		return nil
	}
	return history
}

// AddSearchHistory 记录一条搜索词：去重后插到最前，超出上限截断
func (t *Typed) AddSearchHistory(term string) error {
	if term == "" {
		return nil
	}

	history := t.SearchHistory()
	merged := make([]string, 0, len(history)+1)
	merged = append(merged, term)
	for _, h := range history {
		if h != term {
			merged = append(merged, h)
		}
	}
	if len(merged) > maxSearchHistory {
		merged = merged[:maxSearchHistory]
	}

	return t.store.Set(KeySearchHistory, merged)
}

// ClearSearchHistory 清空搜索历史
func (t *Typed) ClearSearchHistory() error {
	return t.store.Remove(KeySearchHistory)
}
