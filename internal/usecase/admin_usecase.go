package usecase

import (
	"context"
	"sort"
	"time"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
)

type AdminUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewAdminUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *AdminUseCase {
	return &AdminUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	Orders     int     `json:"orders"`
}

type DashboardStats struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  float64         `json:"total_revenue"`
	TotalProducts int64           `json:"total_products"`
	TotalUsers    int64           `json:"total_users"`
	PendingOrders int64           `json:"pending_orders"`
	RecentOrders  []*entity.Order `json:"recent_orders"`
	SalesData     []DailySales    `json:"sales_data"`
}

// GetDashboardStats aggregates storefront totals plus a 30-day daily sales
// series over paid orders. Firestore has no server-side grouping, so the
// bucketing happens here.
func (uc *AdminUseCase) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalOrders, err := uc.orderRepo.Count(ctx, nil)
	if err != nil {
		return nil, err
	}

	paidOrders, err := uc.orderRepo.ListPaidSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	var totalRevenue float64
	for _, order := range paidOrders {
		totalRevenue += order.TotalPrice
	}

	totalProducts, err := uc.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := uc.userRepo.CountByRole(ctx, "user")
	if err != nil {
		return nil, err
	}

	pendingOrders, err := uc.orderRepo.Count(ctx, map[string]interface{}{"status": "pending"})
	if err != nil {
		return nil, err
	}

	recentOrders, err := uc.orderRepo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	recentPaid, err := uc.orderRepo.ListPaidSince(ctx, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*DailySales)
	for _, order := range recentPaid {
		day := order.CreatedAt.Format("2006-01-02")
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DailySales{Date: day}
			buckets[day] = bucket
		}
		bucket.TotalSales += order.TotalPrice
		bucket.Orders++
	}

	salesData := make([]DailySales, 0, len(buckets))
	for _, bucket := range buckets {
		salesData = append(salesData, *bucket)
	}
	sort.Slice(salesData, func(i, j int) bool {
		return salesData[i].Date < salesData[j].Date
	})

	return &DashboardStats{
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
		TotalProducts: totalProducts,
		TotalUsers:    totalUsers,
		PendingOrders: pendingOrders,
		RecentOrders:  recentOrders,
		SalesData:     salesData,
	}, nil
}

func (uc *AdminUseCase) ListOrders(ctx context.Context, status string, page, limit int) ([]*entity.Order, int64, error) {
	filter := make(map[string]interface{})
	if status != "" && status != "all" {
		filter["status"] = status
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.orderRepo.List(ctx, filter, limit, offset)
}

type UpdateOrderInput struct {
	Status         string
	TrackingNumber string
}

func (uc *AdminUseCase) UpdateOrder(ctx context.Context, orderID string, input UpdateOrderInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		order.Status = input.Status
	}
	if input.TrackingNumber != "" {
		order.TrackingNumber = input.TrackingNumber
	}

	if input.Status == "delivered" {
		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.userRepo.List(ctx, "user", limit, offset)
}
