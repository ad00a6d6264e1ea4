package client

// Hooks UI 副作用钩子。
// 纯旁路通道：加载提示、错误提示、登录跳转都只在请求层
// 分类错误的那一刻触发一次，不改变返回值，上层无需重复处理
type Hooks struct {
	// ShowLoading 显示加载提示
	ShowLoading func()

	// HideLoading 隐藏加载提示
	HideLoading func()

	// ShowError 显示错误提示
	ShowError func(message string)

	// RedirectToLogin 跳转到登录页。
	// 鉴权失败统一在请求层转换为一次跳转，调用方不必自带 401 处理
	RedirectToLogin func()
}

func (h Hooks) showLoading() {
	if h.ShowLoading != nil {
		h.ShowLoading()
	}
}

func (h Hooks) hideLoading() {
	if h.HideLoading != nil {
		h.HideLoading()
	}
}

func (h Hooks) showError(message string) {
	if h.ShowError != nil && message != "" {
		h.ShowError(message)
	}
}

func (h Hooks) redirectToLogin() {
	if h.RedirectToLogin != nil {
		h.RedirectToLogin()
	}
}
