package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingOrdersReportJob periodically reports how many orders are still
// pending. Runs every minute and logs the count together with the combined
// total, giving the kitchen a heartbeat of the open workload.
type PendingOrdersReportJob struct {
	handler queries.GetOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersReportJob creates a job reporting on pending orders.
func NewPendingOrdersReportJob(handler queries.GetOrdersByStatusQueryHandler, logger *slog.Logger) *PendingOrdersReportJob {
	return &PendingOrdersReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_report_job"),
	}
}

// Start begins the report job to run at the top of every minute.
func (j *PendingOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrdersByStatusQuery(order.DefaultStatus.String())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Pending orders report job failed to build query", "error", queryErr)
			return
		}

		pending, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending orders report job failed", "error", handleErr)
			return
		}

		if len(pending) == 0 {
			return
		}

		total := pending[0].TotalPrice
		for _, o := range pending[1:] {
			total = total.Add(o.TotalPrice)
		}

		j.logger.InfoContext(ctx, "Pending orders report",
			"count", len(pending),
			"totalPrice", total.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *PendingOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders report job stopped")
}
