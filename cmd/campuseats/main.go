package main

import (
	"context"
	"fmt"

	"campuseats/internal/cart"
	"campuseats/internal/config"
	"campuseats/internal/logger"
	"campuseats/internal/menu"
	"campuseats/internal/order"
	"campuseats/internal/payment"
	"campuseats/internal/report"
	"campuseats/internal/user"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("campuseats exited", zap.Error(err))
	}
	logger.Sync()
}

// run wires the core and walks one canteen day: a student orders, the
// stall operator works the queue, the admin reads the numbers.
func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)

	seed := menu.DefaultSeed()
	if cfg.SeedFile != "" {
		var err error
		if seed, err = menu.LoadSeed(cfg.SeedFile); err != nil {
			return err
		}
	}

	catalog, err := menu.NewRepository(seed)
	if err != nil {
		return err
	}

	orders := order.NewService(order.NewRepository())
	reports := report.NewService(orders)

	log := logger.L().With(zap.String("canteen", cfg.CanteenName))
	log.Info("catalog loaded",
		zap.Int("stalls", len(catalog.ListStalls())),
		zap.Int("items", len(catalog.ListItems(menu.ListOptions{}))),
	)

	state := user.NewAppState(cfg.AdminEmail)

	// -- student session --
	role := state.Login("maria.santos@adnu.edu.ph")
	log.Info("logged in", zap.String("role", role.String()), zap.String("view", string(state.CurrentView)))

	c := cart.New()
	ctx := logger.WithSessionID(context.Background(), c.SessionID.String())

	for _, id := range []string{"1", "1", "6"} {
		item, err := catalog.GetItem(id)
		if err != nil {
			return err
		}
		outcome, err := c.AddItem(item)
		if err != nil {
			return err
		}
		logger.FromCtx(ctx).Info("cart updated",
			zap.String("item", item.Name),
			zap.String("outcome", string(outcome)),
			zap.Float64("cart_total", c.Total()),
		)
	}

	req, err := c.Checkout(payment.MethodGCash, "11:30")
	if err != nil {
		return err
	}

	o := orders.CreateOrder(ctx, *req, "Maria Santos")

	steps := payment.InjectVariables(payment.GetInstructions(req.PaymentMethod), payment.InstructionVars{
		"amount":       fmt.Sprintf("₱%.0f", req.TotalAmount),
		"order_number": req.OrderNumber,
	})
	for _, step := range steps {
		logger.FromCtx(ctx).Info("payment instruction", zap.String("step", step))
	}

	// -- stall operator session --
	state.Login("owner@adnu.edu.ph")
	opCtx := logger.WithSessionID(context.Background(), "stall-operator")

	for _, st := range []order.Status{order.StatusPreparing, order.StatusReady, order.StatusCompleted} {
		if err := orders.Transition(opCtx, o.ID, st); err != nil {
			return err
		}
	}

	// a rejected operator action shows up as a warning, not a crash
	if err := orders.Transition(opCtx, o.ID, order.StatusPending); err != nil {
		logger.FromCtx(opCtx).Warn("status update rejected", zap.Error(err))
	}

	// the student checks My Orders while the queue moves
	for mine := range orders.ListByCustomer("Maria Santos") {
		logger.FromCtx(ctx).Info("my order",
			zap.String("order_number", mine.Number),
			zap.String("status", string(mine.Status)),
			zap.String("pickup_time", mine.PickupTime),
		)
	}

	counts := orders.CountsByStatus()
	log.Info("tracking dashboard",
		zap.Int("pending", counts[order.StatusPending]),
		zap.Int("preparing", counts[order.StatusPreparing]),
		zap.Int("ready", counts[order.StatusReady]),
		zap.Int("completed", counts[order.StatusCompleted]),
		zap.Int("cancelled", counts[order.StatusCancelled]),
	)

	// -- admin session --
	state.Login(cfg.AdminEmail)

	sum := reports.Summary()
	log.Info("sales report",
		zap.Float64("total_sales", sum.TotalSales),
		zap.Int("total_orders", sum.TotalOrders),
		zap.Float64("average_order_value", sum.AverageOrderValue),
	)
	for _, top := range reports.TopItems(3) {
		log.Info("top seller",
			zap.String("item", top.Name),
			zap.Int("units", top.Units),
			zap.Float64("revenue", top.Revenue),
		)
	}

	state.Logout()
	return nil
}
