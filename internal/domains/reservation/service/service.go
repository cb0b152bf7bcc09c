package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"pension/config"
	"pension/infras/kafka"
	"pension/infras/otel"
	invoiceModel "pension/internal/domains/invoice/model"
	invoiceDto "pension/internal/domains/invoice/model/dto"
	invoiceRepo "pension/internal/domains/invoice/repository"
	invoiceService "pension/internal/domains/invoice/service"
	"pension/internal/domains/reservation/model"
	"pension/internal/domains/reservation/model/dto"
	"pension/internal/domains/reservation/repository"
	roomModel "pension/internal/domains/room/model"
	roomRepo "pension/internal/domains/room/repository"
	"pension/shared"
	"pension/shared/cache"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/failure"
	"pension/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	eventReservationCreated    = "reservation.created"
	eventReservationCancelled  = "reservation.cancelled"
	eventReservationCheckedOut = "reservation.checked_out"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) (invoiceDto.InvoiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	roomRepo    roomRepo.Room
	invoiceRepo invoiceRepo.Invoice
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(
	repo repository.Reservation,
	roomRepo roomRepo.Room,
	invoiceRepo invoiceRepo.Invoice,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		invoiceRepo: invoiceRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

// Create books a stay. The availability check and the booking itself happen in
// one transaction: the requested rooms are row-locked in id order first, so two
// overlapping requests for the same room serialize and the loser sees the
// winner's reservation.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("invalid reservation request")

		return res, err
	}

	err = s.repo.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		rooms, err := s.roomRepo.LockByIDs(ctx, sqltx, req.RoomIDs)
		if err != nil {
			return err
		}

		if len(rooms) != len(req.RoomIDs) {
			return failure.NotFound("one or more rooms do not exist") // nolint:wrapcheck
		}

		stays, err := s.repo.ActiveStaysForRooms(ctx, sqltx, req.RoomIDs)
		if err != nil {
			return err
		}

		if conflict := findConflict(stays, reservation.CheckIn, reservation.CheckOut, constant.Empty); conflict != nil {
			return conflict
		}

		if err = s.repo.InsertTx(ctx, sqltx, reservation); err != nil {
			return err
		}

		if err = s.repo.AssignRoomsTx(ctx, sqltx, reservation.ID, req.RoomIDs, user); err != nil {
			return err
		}

		return s.roomRepo.UpdateStatusTx(ctx, sqltx, req.RoomIDs, roomModel.StatusOccupied, user)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, err
	}

	res.FromModel(reservation, req.RoomIDs)

	s.publishEvent(ctx, dto.ReservationEvent{
		Type:          eventReservationCreated,
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
		RoomIDs:       req.RoomIDs,
		CheckIn:       reservation.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:      reservation.CheckOut.Format(constant.DateOnlyFormat),
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

// Cancel releases nothing: the rooms stay occupied until housekeeping turns
// them over, only the reservation itself is voided. Cancelling an already
// cancelled reservation is a no-op.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status == model.StatusCancelled {
		log.Info().Str("reservation_id", id).Msg("reservation already cancelled, nothing to do")

		return nil
	}

	if reservation.Status != model.StatusActive {
		return failure.Conflict("reservation is already " + reservation.Status) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.publishEvent(ctx, dto.ReservationEvent{
		Type:          eventReservationCancelled,
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return nil
}

// CheckOut finalizes an active reservation: bills the stay, writes the invoice
// and frees the rooms, all in one transaction. The unique reservation_id on
// invoices makes a double checkout impossible even across processes.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res invoiceDto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status != model.StatusActive {
		return res, failure.Conflict("reservation is already " + reservation.Status) // nolint:wrapcheck
	}

	roomIDs, err := s.repo.RoomIDsOf(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rooms")

		return res, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	var invoice invoiceModel.Invoice

	err = s.repo.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		rooms, err := s.roomRepo.LockByIDs(ctx, sqltx, roomIDs)
		if err != nil {
			return err
		}

		invoice = invoiceService.BuildInvoice(reservation.ID, reservation.CheckIn, reservation.CheckOut, rooms, user)

		if err = s.invoiceRepo.InsertTx(ctx, sqltx, invoice); err != nil {
			return err
		}

		updatedFields := map[string]any{
			model.FieldStatus:        model.StatusFinalized,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, filter); err != nil {
			return err
		}

		return s.roomRepo.UpdateStatusTx(ctx, sqltx, roomIDs, roomModel.StatusFree, user)
	})
	if err != nil {
		// Two concurrent checkouts race past the status check above; the
		// unique reservation_id on invoices stops the second one here.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("reservation is already finalized") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to check out reservation")

		return res, err
	}

	res.FromModel(invoice)

	s.publishEvent(ctx, dto.ReservationEvent{
		Type:          eventReservationCheckedOut,
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
		RoomIDs:       roomIDs,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := shared.RetryOnce(func() ([]model.Reservation, error) {
		return s.repo.GetAll(ctx, req, filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := shared.RetryOnce(func() (model.Reservation, error) {
		return s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	roomIDs, err := s.repo.RoomIDsOf(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rooms")

		return res, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	res.FromModel(reservation, roomIDs)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event dto.ReservationEvent) {
	event.OccurredAt = timezone.Now().Format(constant.DateFormat)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.ReservationID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationEvents, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish reservation event")
		}
	}()
}
