package commands

import (
	"context"
	"fmt"

	"shopdispatch/internal/domain/geo"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/config"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/pkg/patch"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoOriginCoordinates = errs.New("no origin coordinates could be resolved")

type NotifyParams struct {
	RequestID *uuid.UUID
	Lat       *float64
	Lng       *float64
	RadiusKm  *float64
	Limit     *int
}

type NotifiedDriver struct {
	DriverID   uuid.UUID
	DistanceKm float64
}

type NotifyResult struct {
	Origin        geo.Point
	Candidates    []NotifiedDriver
	NotifiedCount int
	// Tokens is populated only in degraded mode (no gateway credential).
	Tokens   []string
	Batches  []shared.PushBatchResult
	Degraded bool
}

type DispatchCommands interface {
	NotifyDrivers(ctx context.Context, params NotifyParams) (*NotifyResult, error)
}

type dispatchCommandsImpl struct {
	cfg            config.DispatchConfig
	driverReads    shared.DriverReadStore
	deviceReads    shared.DeviceReadStore
	requestQueries queries.RequestQueries
	pusher         shared.Pusher
	metrics        shared.MetricsSink
	clock          clock.Clock
}

func NewDispatchCommands(
	cfg config.DispatchConfig,
	driverReads shared.DriverReadStore,
	deviceReads shared.DeviceReadStore,
	requestQueries queries.RequestQueries,
	pusher shared.Pusher,
	metrics shared.MetricsSink,
	clock clock.Clock,
) DispatchCommands {
	return &dispatchCommandsImpl{
		cfg:            cfg,
		driverReads:    driverReads,
		deviceReads:    deviceReads,
		requestQueries: requestQueries,
		pusher:         pusher,
		metrics:        metrics,
		clock:          clock,
	}
}

// NotifyDrivers fans a new-request notification out to nearby online
// drivers. It never mutates request or driver state, and it may race the
// arbiter: a push can arrive for an already-claimed request, which claimants
// then experience as a normal race-lost accept.
func (c *dispatchCommandsImpl) NotifyDrivers(ctx context.Context, params NotifyParams) (*NotifyResult, error) {
	origin, err := c.resolveOrigin(ctx, params)
	if err != nil {
		return nil, err
	}

	radiusKm := patch.Coalesce(params.RadiusKm, c.cfg.DefaultRadiusKm)
	if radiusKm <= 0 {
		radiusKm = c.cfg.DefaultRadiusKm
	}
	limit := patch.Coalesce(params.Limit, c.cfg.MaxCandidates)
	if limit <= 0 {
		limit = c.cfg.MaxCandidates
	}

	now := c.clock.Now()
	statuses, err := c.driverReads.FindMatchable(ctx, now.Add(-c.cfg.FreshnessWindow))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// The read store already cut on online and updated_at; the domain rule
	// is authoritative, so recheck each row rather than trusting the SQL.
	candidates := make([]geo.Candidate, 0, len(statuses))
	for _, s := range statuses {
		if !s.Matchable(now, c.cfg.FreshnessWindow) {
			continue
		}
		candidates = append(candidates, geo.Candidate{
			DriverID:        s.DriverID,
			Point:           geo.Point{Lat: *s.Lat, Lng: *s.Lng},
			ServiceRadiusKm: s.ServiceRadiusKm,
		})
	}

	ranked := geo.RankWithin(origin, radiusKm, limit, candidates)

	result := &NotifyResult{Origin: origin}
	driverIDs := make([]uuid.UUID, len(ranked))
	for i, r := range ranked {
		driverIDs[i] = r.DriverID
		result.Candidates = append(result.Candidates, NotifiedDriver{
			DriverID:   r.DriverID,
			DistanceKm: r.DistanceKm,
		})
	}

	// Zero candidates is a successful outcome, not an error.
	if len(ranked) == 0 {
		c.metrics.RecordNotifyFanout(0, 0)
		return result, nil
	}

	records, err := c.deviceReads.FindByUserIDs(ctx, driverIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tokens := make([]string, 0, len(records))
	notified := make(map[uuid.UUID]struct{}, len(records))
	for _, rec := range records {
		tokens = append(tokens, rec.Token)
		notified[rec.UserID] = struct{}{}
	}
	c.metrics.RecordNotifyFanout(len(ranked), len(tokens))

	if !c.pusher.Enabled() {
		result.Degraded = true
		result.Tokens = tokens
		result.NotifiedCount = len(tokens)
		return result, nil
	}

	title := "New shopping request nearby"
	body := "A customer nearby needs a shopper. Open the app to claim it."
	data := map[string]string{}
	if params.RequestID != nil {
		data["request_id"] = params.RequestID.String()
		body = fmt.Sprintf("Request %s is up for grabs near you.", params.RequestID)
	}

	result.Batches = c.pusher.SendBatches(ctx, tokens, title, body, data)
	for _, b := range result.Batches {
		c.metrics.RecordPushBatch(b.OK(), b.TokenCount)
	}
	result.NotifiedCount = len(notified)

	return result, nil
}

func (c *dispatchCommandsImpl) resolveOrigin(ctx context.Context, params NotifyParams) (geo.Point, error) {
	if params.Lat != nil && params.Lng != nil {
		return geo.Point{Lat: *params.Lat, Lng: *params.Lng}, nil
	}

	if params.RequestID == nil {
		return geo.Point{}, ErrNoOriginCoordinates
	}

	view, err := c.requestQueries.GetByID(ctx, *params.RequestID)
	if err != nil {
		if errs.Is(err, queries.ErrRequestNotFound) {
			return geo.Point{}, errs.Mark(err, ErrRequestNotFound)
		}
		return geo.Point{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Destination coordinates win; the store origin is the fallback.
	if view.DestLat != nil && view.DestLng != nil {
		return geo.Point{Lat: *view.DestLat, Lng: *view.DestLng}, nil
	}
	if view.OriginLat != nil && view.OriginLng != nil {
		return geo.Point{Lat: *view.OriginLat, Lng: *view.OriginLng}, nil
	}
	return geo.Point{}, ErrNoOriginCoordinates
}
