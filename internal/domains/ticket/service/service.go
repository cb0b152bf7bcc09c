package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pension/config"
	"pension/infras/otel"
	roomModel "pension/internal/domains/room/model"
	roomRepo "pension/internal/domains/room/repository"
	"pension/internal/domains/ticket/model"
	"pension/internal/domains/ticket/model/dto"
	"pension/internal/domains/ticket/repository"
	userModel "pension/internal/domains/user/model"
	userRepo "pension/internal/domains/user/repository"
	"pension/shared"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/failure"
)

type Ticket interface {
	Create(ctx context.Context, req dto.CreateTicketRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTicketsResponse, error)
	Get(ctx context.Context, id string) (dto.TicketResponse, error)
	Update(ctx context.Context, req dto.UpdateTicketRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Ticket
	userRepo userRepo.User
	roomRepo roomRepo.Room
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Ticket, userRepo userRepo.User, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Ticket {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		roomRepo: roomRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTicketRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reporterExists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.ReporterID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reporter exists")

		return fmt.Errorf("failed to check if reporter exists: %w", err)
	}

	if !reporterExists {
		return failure.BadRequestFromString("reporter does not exist") // nolint:wrapcheck
	}

	if req.RoomID != nil {
		roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(*req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if room exists")

			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !roomExists {
			return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create ticket")

		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTicketsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tickets")

		return res, fmt.Errorf("failed to count tickets: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tickets")

		return res, fmt.Errorf("failed to get tickets: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ticket, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == constant.Empty {
		return res, failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	res.FromModel(ticket)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTicketRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateTicketRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ticket exists")

		return fmt.Errorf("failed to check if ticket exists: %w", err)
	}

	if !exist {
		log.Error().Msg("ticket not found")

		return failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update ticket")

		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if ticket exists")

		return fmt.Errorf("failed to check if ticket exists: %w", err)
	}

	if !exist {
		log.Error().Msg("ticket not found")

		return failure.NotFound("ticket not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete ticket")

		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	return nil
}
