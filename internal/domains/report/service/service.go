package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pension/config"
	"pension/infras/otel"
	"pension/internal/domains/report/model/dto"
	"pension/internal/domains/report/repository"
	"pension/shared"
	"pension/shared/cache"
	"pension/shared/constant"
	"pension/shared/timezone"
)

const cacheSummary = "report:summary"

type Report interface {
	Summarize(ctx context.Context, date time.Time) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Summarize collects the front-desk snapshot for one business day: all-time
// revenue and reservation totals, room statuses, reservation movement,
// invoiced revenue and open tickets.
func (s *serviceImpl) Summarize(ctx context.Context, date time.Time) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summarize")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := date.Format(constant.DateOnlyFormat)
	cacheKey := shared.BuildCacheKey(cacheSummary, day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for daily summary")

		return res, nil
	}

	roomCounts, err := shared.RetryOnce(func() ([]dto.RoomStatusCount, error) {
		return s.repo.RoomStatusCounts(ctx)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms by status")

		return res, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	active, err := s.repo.ActiveReservationCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active reservations")

		return res, fmt.Errorf("failed to count active reservations: %w", err)
	}

	arrivals, err := s.repo.ArrivalCountOn(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to count arrivals")

		return res, fmt.Errorf("failed to count arrivals: %w", err)
	}

	departures, err := s.repo.DepartureCountOn(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to count departures")

		return res, fmt.Errorf("failed to count departures: %w", err)
	}

	revenue, err := shared.RetryOnce(func() (dto.RevenueSummary, error) {
		return s.repo.RevenueOn(ctx, date)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate revenue")

		return res, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	totals, err := shared.RetryOnce(func() (dto.ReservationTotals, error) {
		return s.repo.ReservationTotals(ctx)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations by status")

		return res, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	totalRevenue, err := shared.RetryOnce(func() (int64, error) {
		return s.repo.TotalRevenueCents(ctx)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to sum invoiced revenue")

		return res, fmt.Errorf("failed to sum invoiced revenue: %w", err)
	}

	openTickets, err := s.repo.OpenTicketCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count open tickets")

		return res, fmt.Errorf("failed to count open tickets: %w", err)
	}

	res = dto.SummaryResponse{
		Date:              day,
		TotalRevenueCents: totalRevenue,
		ReservationTotals: totals,
		Occupancy: dto.OccupancySummary{
			RoomsByStatus:      roomCounts,
			ActiveReservations: active,
			ArrivalsToday:      arrivals,
			DeparturesToday:    departures,
		},
		Revenue:     revenue,
		OpenTickets: openTickets,
		GeneratedAt: timezone.Now().Format(time.RFC3339),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save daily summary to cache")
		}
	}()

	return res, nil
}
