package ticket

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pension/infras/otel"
	"pension/internal/domains/ticket/model"
	"pension/internal/domains/ticket/model/dto"
	"pension/internal/domains/ticket/service"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/validator"
	"pension/transport/http/response"
)

type Handler struct {
	service service.Ticket
	otel    otel.Otel
}

func New(service service.Ticket, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tickets", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTicket)
		routerGroup.Get("/", handler.GetTickets)
		routerGroup.Get("/{id}", handler.GetTicketByID)
		routerGroup.Patch("/{id}", handler.UpdateTicket)
		routerGroup.Delete("/{id}", handler.DeleteTicket)
	})
}

// CreateTicket handles the creation of a new maintenance ticket.
// @Summary Create a new ticket
// @Description Open a maintenance ticket, optionally bound to a room. The reporter must be an existing staff member.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Create Ticket Request"
// @Success 201 {object} response.Message "Ticket created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets [post]
// @Security BearerAuth
func (handler *Handler) CreateTicket(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTicket")
	defer scope.End()

	req := dto.CreateTicketRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create ticket")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Ticket created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Ticket created successfully")
}

// GetTickets retrieves all tickets based on query parameters.
// @Summary Get all tickets
// @Description Retrieve all maintenance tickets with optional filtering and pagination.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param room_id query string false "Filter by room ID"
// @Param status query string false "Filter by status (open, in_progress, resolved)"
// @Success 200 {object} dto.GetTicketsResponse "List of tickets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets [get]
func (handler *Handler) GetTickets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTickets")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomID := r.URL.Query().Get(model.FieldRoomID)
	status := r.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	tickets, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tickets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tickets retrieved successfully")

	response.WithJSON(w, http.StatusOK, tickets)
}

// GetTicketByID retrieves a ticket by its ID.
// @Summary Get a ticket by ID
// @Description Retrieve a maintenance ticket by its unique identifier.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse "Ticket details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id} [get]
func (handler *Handler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicketByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	ticket, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ticket by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ticket retrieved successfully")

	response.WithJSON(w, http.StatusOK, ticket)
}

// UpdateTicket updates an existing ticket by its ID.
// @Summary Update a ticket by ID
// @Description Update a ticket's title, description or status.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body dto.UpdateTicketRequest true "Update Ticket Request"
// @Success 200 {object} response.Message "Ticket updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTicketRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update ticket")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Ticket updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Ticket updated successfully")
}

// DeleteTicket deletes a ticket by its ID.
// @Summary Delete a ticket by ID
// @Description Delete a maintenance ticket using its unique identifier.
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} response.Message "Ticket deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tickets/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTicket")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete ticket")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Ticket deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Ticket deleted successfully")
}
