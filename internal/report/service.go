package report

import (
	"sort"

	"campuseats/internal/order"
)

// Summary is the dashboard headline block. Revenue counts completed
// orders only; cancelled orders add to volume but never to sales.
type Summary struct {
	TotalSales        float64
	TotalOrders       int
	CompletedOrders   int
	CancelledOrders   int
	AverageOrderValue float64
}

type ItemSales struct {
	Name    string
	Units   int
	Revenue float64
}

// Service is the read-only reporting view over the order collection.
type Service interface {
	Summary() Summary
	TopItems(n int) []ItemSales
	LeastItems(n int) []ItemSales
	RevenueByCategory() map[string]float64
	RevenueByStall() map[string]float64
}

type service struct {
	orders order.Service
}

func NewService(orders order.Service) Service {
	return &service{orders: orders}
}

func (s *service) Summary() Summary {
	var sum Summary
	for o := range s.orders.ListByStatus(order.StatusAll) {
		sum.TotalOrders++
		switch o.Status {
		case order.StatusCompleted:
			sum.CompletedOrders++
			sum.TotalSales += o.Total
		case order.StatusCancelled:
			sum.CancelledOrders++
		}
	}
	if sum.CompletedOrders > 0 {
		sum.AverageOrderValue = sum.TotalSales / float64(sum.CompletedOrders)
	}
	return sum
}

// itemSales folds completed orders into per-item units and revenue,
// returned in first-sold order for deterministic ties.
func (s *service) itemSales() []ItemSales {
	index := make(map[string]int)
	var sales []ItemSales

	for o := range s.orders.ListByStatus(order.StatusCompleted) {
		for _, it := range o.Items {
			i, ok := index[it.Name]
			if !ok {
				i = len(sales)
				index[it.Name] = i
				sales = append(sales, ItemSales{Name: it.Name})
			}
			sales[i].Units += it.Quantity
			sales[i].Revenue += it.Subtotal()
		}
	}
	return sales
}

func (s *service) TopItems(n int) []ItemSales {
	sales := s.itemSales()
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Units > sales[j].Units
	})
	return clip(sales, n)
}

func (s *service) LeastItems(n int) []ItemSales {
	sales := s.itemSales()
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Units < sales[j].Units
	})
	return clip(sales, n)
}

func clip(sales []ItemSales, n int) []ItemSales {
	if n > 0 && n < len(sales) {
		return sales[:n]
	}
	return sales
}

func (s *service) RevenueByCategory() map[string]float64 {
	return s.revenueBy(func(it order.Item) string { return it.Category })
}

func (s *service) RevenueByStall() map[string]float64 {
	return s.revenueBy(func(it order.Item) string { return it.StallID })
}

func (s *service) revenueBy(key func(order.Item) string) map[string]float64 {
	out := make(map[string]float64)
	for o := range s.orders.ListByStatus(order.StatusCompleted) {
		for _, it := range o.Items {
			out[key(it)] += it.Subtotal()
		}
	}
	return out
}
