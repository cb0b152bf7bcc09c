package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pension/config"
	"pension/infras/otel"
	"pension/internal/domains/invoice/model"
	"pension/internal/domains/invoice/model/dto"
	"pension/internal/domains/invoice/repository"
	"pension/shared"
	"pension/shared/cache"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/failure"
	"pension/shared/timezone"
)

const (
	cacheGetInvoice    = "invoice:get"
	cacheGetAllInvoice = "invoice:gets"
	cacheCountInvoice  = "invoice:count"
)

type Invoice interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetByReservation(ctx context.Context, reservationID string) (dto.InvoiceResponse, error)
	MarkPaid(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Invoice
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Invoice, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Invoice {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := shared.RetryOnce(func() ([]model.Invoice, error) {
		return s.repo.GetAll(ctx, req, filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInvoice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice")

		return res, nil
	}

	invoice, err := shared.RetryOnce(func() (model.Invoice, error) {
		return s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	res.FromModel(invoice)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByReservation(ctx context.Context, reservationID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := shared.RetryOnce(func() (model.Invoice, error) {
		return s.repo.Get(ctx, shared.FilterByID(reservationID, model.FieldReservationID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice by reservation")

		return res, fmt.Errorf("failed to get invoice by reservation: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice not found for reservation") // nolint:wrapcheck
	}

	res.FromModel(invoice)

	return res, nil
}

func (s *serviceImpl) MarkPaid(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	invoice, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	if invoice.Paid {
		return failure.Conflict("invoice is already paid") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldPaid:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark invoice as paid")

		return fmt.Errorf("failed to mark invoice as paid: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInvoice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete invoice from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoice)
		shared.InvalidateCaches(c, s.cache, cacheCountInvoice)
	}()

	return nil
}
