package public

import "github.com/shopfront/internal/provider"

// Handler 用户侧接口处理器入口
// 说明：顾客与配送员共用，具体可访问的接口由授权策略决定。
type Handler struct {
	*provider.Container
}

// New 创建用户侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
