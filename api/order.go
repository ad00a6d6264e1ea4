package api

import (
	"context"
	"fmt"

	"github.com/yuesf/travel/client"
)

// OrderService 订单接口
type OrderService struct {
	client *client.Client
}

// Create 创建订单
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var order Order
	if err := s.client.Post(ctx, "/miniprogram/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List 按状态分页查询订单
func (s *OrderService) List(ctx context.Context, status string, q PageQuery) (*Page[Order], error) {
	query := pageQuery(q)
	if status != "" {
		query.Set("status", status)
	}

	var page Page[Order]
	if err := s.client.Get(ctx, "/miniprogram/orders", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Detail 获取订单详情
func (s *OrderService) Detail(ctx context.Context, id int64) (*Order, error) {
	var order Order
	if err := s.client.Get(ctx, fmt.Sprintf("/miniprogram/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Statistics 各状态订单数量，用于"我的"页角标。
// 静默请求：不弹加载提示也不弹错误提示
func (s *OrderService) Statistics(ctx context.Context) (*OrderStatistics, error) {
	var stats OrderStatistics
	err := s.client.Do(ctx, client.RequestConfig{
		Path:        "/miniprogram/orders/statistics",
		ShowLoading: client.Bool(false),
		ShowError:   client.Bool(false),
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Cancel 取消订单
func (s *OrderService) Cancel(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/miniprogram/orders/%d/cancel", id), nil, nil)
}

// Pay 发起支付，返回拉起微信支付所需参数
func (s *OrderService) Pay(ctx context.Context, id int64, req PayRequest) (*PayResult, error) {
	var result PayResult
	if err := s.client.Post(ctx, fmt.Sprintf("/miniprogram/orders/%d/pay", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyRefund 申请退款
func (s *OrderService) ApplyRefund(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	return s.client.Post(ctx, fmt.Sprintf("/miniprogram/orders/%d/refund", id), body, nil)
}
