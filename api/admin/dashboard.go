package admin

import (
	"context"
	"net/url"

	"github.com/yuesf/travel/client"
)

// DashboardService 仪表盘接口
type DashboardService struct {
	client *client.Client
}

// Stats 获取仪表盘统计数据
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.client.Get(ctx, "/admin/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// OrderTrend 查询日期区间内的订单趋势
func (s *DashboardService) OrderTrend(ctx context.Context, startDate, endDate string) ([]TrendPoint, error) {
	q := url.Values{"startDate": {startDate}, "endDate": {endDate}}

	var points []TrendPoint
	if err := s.client.Get(ctx, "/admin/dashboard/order-trend", q, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// SalesStats 查询日期区间内的销售统计
func (s *DashboardService) SalesStats(ctx context.Context, startDate, endDate string) ([]TrendPoint, error) {
	q := url.Values{"startDate": {startDate}, "endDate": {endDate}}

	var points []TrendPoint
	if err := s.client.Get(ctx, "/admin/dashboard/sales-stats", q, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// ClearAllCache 清空服务端缓存
func (s *DashboardService) ClearAllCache(ctx context.Context) error {
	return s.client.Post(ctx, "/admin/dashboard/cache/clear-all", nil, nil)
}
