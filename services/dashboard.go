package services

import (
	"context"

	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/models"
	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	TotalClients      int64   `json:"total_clients"`
	TotalProjects     int64   `json:"total_projects"`
	ActiveProjects    int64   `json:"active_projects"`
	CompletedProjects int64   `json:"completed_projects"`
	PendingBookings   int64   `json:"pending_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalPaid         float64 `json:"total_paid"`
	PendingPayments   float64 `json:"pending_payments"`
}

// DashboardAggregator computes the admin summary. Every call hits the store.
type DashboardAggregator struct {
	db database.Database
}

func NewDashboardAggregator(db database.Database) *DashboardAggregator {
	return &DashboardAggregator{db: db}
}

func (d *DashboardAggregator) Stats(ctx context.Context) (DashboardStats, error) {
	var (
		stats  DashboardStats
		totals database.ProjectTotals
	)
	projects := d.db.ProjectRepo()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalClients, err = d.db.ClientRepo().Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalProjects, err = projects.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveProjects, err = projects.CountByStatus(gctx, models.ActiveStatuses...)
		return err
	})
	g.Go(func() (err error) {
		stats.CompletedProjects, err = projects.CountByStatus(gctx, models.StatusCompleted)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingBookings, err = d.db.BookingRepo().CountByStatus(gctx, models.BookingStatusPending)
		return err
	})
	g.Go(func() (err error) {
		totals, err = projects.Totals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	stats.TotalRevenue = totals.TotalPrice
	stats.TotalPaid = totals.AmountPaid
	stats.PendingPayments = totals.TotalPrice - totals.AmountPaid
	return stats, nil
}
