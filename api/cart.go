package api

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
	"github.com/yuesf/travel/log"
	"github.com/yuesf/travel/storage"
)

// CartService 购物车接口。
// 列表变化后同步本地角标数量，首页 tabBar 不用等接口返回
type CartService struct {
	client *client.Client
	typed  *storage.Typed
}

// List 获取购物车列表并刷新本地角标
func (s *CartService) List(ctx context.Context) ([]CartItem, error) {
	var items []CartItem
	if err := s.client.Get(ctx, "/miniprogram/cart", nil, &items); err != nil {
		return nil, err
	}
	s.syncBadge(len(items))
	return items, nil
}

// Add 添加商品到购物车
func (s *CartService) Add(ctx context.Context, req AddToCartRequest) (*CartItem, error) {
	var item CartItem
	if err := s.client.Post(ctx, "/miniprogram/cart", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity 更新购物车商品数量
func (s *CartService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*CartItem, error) {
	var item CartItem
	body := map[string]int{"quantity": quantity}
	if err := s.client.Put(ctx, fmt.Sprintf("/miniprogram/cart/%d", id), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete 删除购物车商品
func (s *CartService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/miniprogram/cart/%d", id), nil)
}

// Badge 本地缓存的购物车角标数量
func (s *CartService) Badge() int {
	if s.typed == nil {
		return 0
	}
	return s.typed.CartCount()
}

// syncBadge 写入角标数量，失败只记日志
func (s *CartService) syncBadge(n int) {
	if s.typed == nil {
		return
	}
	if err := s.typed.SetCartCount(n); err != nil {
		log.G.Warn().Err(err).Msg("failed to sync cart badge")
	}
}
