package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/store"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// Synthetic order bounds, in cents.
const (
	minOrderPriceCents = 500
	maxOrderPriceCents = 20000

	// deliveryRadiusDegrees bounds how far a generated destination lands
	// from its store.
	deliveryRadiusDegrees = 0.05
)

var clientNames = []string{
	"Alice Santos", "Bruno Costa", "Carla Mendes", "Diego Rocha",
	"Elena Ferreira", "Felipe Lima", "Gabriela Nunes", "Hugo Alves",
}

var streetNames = []string{
	"Main St", "Oak Ave", "River Rd", "Hill Dr",
	"Market Sq", "Garden Ln", "Harbor Blvd", "Station Way",
}

// OrderGenerationJob feeds the simulation with a synthetic order from a
// random linked store every fifteen seconds. Stores without a link stay
// silent.
type OrderGenerationJob struct {
	handler commands.CreateOrderCommandHandler
	stores  ports.StoreRepository
	source  RandomSource
	cron    *cron.Cron
	logger  *slog.Logger
	seq     int
}

// NewOrderGenerationJob creates the order generation job.
func NewOrderGenerationJob(
	handler commands.CreateOrderCommandHandler,
	stores ports.StoreRepository,
	source RandomSource,
	logger *slog.Logger,
) *OrderGenerationJob {
	return &OrderGenerationJob{
		handler: handler,
		stores:  stores,
		source:  source,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_generation_job"),
	}
}

// Start schedules order generation every fifteen seconds.
func (j *OrderGenerationJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		if err := j.generateOrder(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order generation failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order generation job started")
	return nil
}

// Stop stops the order generation job.
func (j *OrderGenerationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order generation job stopped")
}

func (j *OrderGenerationJob) generateOrder(ctx context.Context) error {
	linked, err := j.stores.GetAllLinked(ctx)
	if err != nil {
		return err
	}
	if len(linked) == 0 {
		return nil
	}

	origin := linked[j.source.Intn(len(linked))]

	cmd, err := j.buildOrder(origin)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}

// buildOrder synthesizes a plausible order near the given store.
func (j *OrderGenerationJob) buildOrder(origin *store.Store) (commands.CreateOrderCommand, error) {
	j.seq++

	dLat := (j.source.Float64()*2 - 1) * deliveryRadiusDegrees
	dLng := (j.source.Float64()*2 - 1) * deliveryRadiusDegrees
	destination, err := origin.Location().Shifted(dLat, dLng)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	cents := int64(minOrderPriceCents + j.source.Intn(maxOrderPriceCents-minOrderPriceCents+1))
	price, err := kernel.NewMoneyFromCents(cents)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	number := fmt.Sprintf("ORD-%05d", 1000+j.seq)
	clientName := clientNames[j.source.Intn(len(clientNames))]
	address := fmt.Sprintf("%d %s",
		1+j.source.Intn(200), streetNames[j.source.Intn(len(streetNames))])

	return commands.NewCreateOrderCommand(
		origin.ID(), number, clientName, address, destination, price)
}
