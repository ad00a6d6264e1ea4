package admin

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
)

// ProductService 商品管理接口
type ProductService struct {
	client *client.Client
}

// List 分页查询商品
func (s *ProductService) List(ctx context.Context, q ListQuery) (*Page[Product], error) {
	var page Page[Product]
	if err := s.client.Get(ctx, "/admin/products", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get 查询单个商品
func (s *ProductService) Get(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := s.client.Get(ctx, fmt.Sprintf("/admin/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create 新建商品
func (s *ProductService) Create(ctx context.Context, p Product) (*Product, error) {
	var created Product
	if err := s.client.Post(ctx, "/admin/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update 更新商品
func (s *ProductService) Update(ctx context.Context, id int64, p Product) error {
	return s.client.Put(ctx, fmt.Sprintf("/admin/products/%d", id), p, nil)
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/admin/products/%d", id), nil)
}

// UpdateStock 调整库存
func (s *ProductService) UpdateStock(ctx context.Context, id int64, stock int) error {
	body := map[string]int{"stock": stock}
	return s.client.Put(ctx, fmt.Sprintf("/admin/products/%d/stock", id), body, nil)
}
