// Package redis caches computed route plans.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// defaultTTL bounds how long a plan survives even when the in-route set
// does not change. Courier drift makes old plans gradually worse.
const defaultTTL = 5 * time.Minute

// RoutePlanCache implements ports.RoutePlanCache on Redis. The key folds in
// a digest of the sorted in-route order IDs, so any membership change maps
// to a fresh key and the stale plan simply expires.
type RoutePlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoutePlanCache wraps the given client. A non-positive ttl falls back
// to the default.
func NewRoutePlanCache(client *redis.Client, ttl time.Duration) (*RoutePlanCache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RoutePlanCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get returns the cached plan for the courier and order set.
func (c *RoutePlanCache) Get(
	ctx context.Context,
	courierID kernel.UUID,
	orderIDs []kernel.UUID,
) (services.RoutePlan, error) {
	if err := courierID.Validate(); err != nil {
		return services.RoutePlan{}, err
	}

	data, err := c.client.Get(ctx, cacheKey(courierID, orderIDs)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return services.RoutePlan{}, ports.ErrRoutePlanNotCached
		}
		return services.RoutePlan{}, fmt.Errorf("read route plan: %w", err)
	}

	var dto routePlanDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return services.RoutePlan{}, fmt.Errorf("decode route plan: %w", err)
	}

	return dto.toDomain()
}

// Put stores a plan for the courier and order set.
func (c *RoutePlanCache) Put(
	ctx context.Context,
	courierID kernel.UUID,
	orderIDs []kernel.UUID,
	plan services.RoutePlan,
) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(fromDomain(plan))
	if err != nil {
		return fmt.Errorf("encode route plan: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(courierID, orderIDs), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("write route plan: %w", err)
	}

	return nil
}

// cacheKey digests the sorted order IDs so the key is independent of the
// order the caller enumerates them in.
func cacheKey(courierID kernel.UUID, orderIDs []kernel.UUID) string {
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}
	sort.Strings(ids)

	digest := sha256.Sum256([]byte(strings.Join(ids, ",")))
	return "route-plan:" + courierID.String() + ":" + hex.EncodeToString(digest[:])
}

type routePlanDTO struct {
	Stops        []routeStopDTO `json:"stops"`
	TotalKm      float64        `json:"total_km"`
	TotalMinutes float64        `json:"total_minutes"`
	Advice       string         `json:"advice,omitempty"`
}

type routeStopDTO struct {
	OrderID string  `json:"order_id"`
	Number  string  `json:"number"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	LegKm   float64 `json:"leg_km"`
}

func fromDomain(plan services.RoutePlan) routePlanDTO {
	dto := routePlanDTO{
		Stops:        make([]routeStopDTO, 0, len(plan.Stops)),
		TotalKm:      plan.TotalKm,
		TotalMinutes: plan.TotalMinutes,
		Advice:       plan.Advice,
	}

	for _, stop := range plan.Stops {
		dto.Stops = append(dto.Stops, routeStopDTO{
			OrderID: stop.OrderID.String(),
			Number:  stop.Number,
			Address: stop.Address,
			Lat:     stop.Location.Lat(),
			Lng:     stop.Location.Lng(),
			LegKm:   stop.LegKm,
		})
	}

	return dto
}

func (dto routePlanDTO) toDomain() (services.RoutePlan, error) {
	plan := services.RoutePlan{
		Stops:        make([]services.RouteStop, 0, len(dto.Stops)),
		TotalKm:      dto.TotalKm,
		TotalMinutes: dto.TotalMinutes,
		Advice:       dto.Advice,
	}

	for _, stop := range dto.Stops {
		orderID, err := kernel.UUIDFromString(stop.OrderID)
		if err != nil {
			return services.RoutePlan{}, err
		}

		location, err := kernel.NewLocation(stop.Lat, stop.Lng)
		if err != nil {
			return services.RoutePlan{}, err
		}

		plan.Stops = append(plan.Stops, services.RouteStop{
			OrderID:  orderID,
			Number:   stop.Number,
			Address:  stop.Address,
			Location: location,
			LegKm:    stop.LegKm,
		})
	}

	return plan, nil
}
