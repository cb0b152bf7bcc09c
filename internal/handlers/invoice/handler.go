package invoice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pension/infras/otel"
	"pension/internal/domains/invoice/model"
	"pension/internal/domains/invoice/service"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/transport/http/response"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Get("/{id}", handler.GetInvoiceByID)
		routerGroup.Get("/reservation/{id}", handler.GetInvoiceByReservation)
		routerGroup.Patch("/{id}/pay", handler.MarkInvoicePaid)
	})
}

// GetInvoices retrieves all invoices based on query parameters.
// @Summary Get all invoices
// @Description Retrieve all invoices with optional filtering and pagination.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param number query string false "Filter by invoice number"
// @Param paid query bool false "Filter by payment status"
// @Success 200 {object} dto.GetInvoicesResponse "List of invoices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	number := r.URL.Query().Get(model.FieldNumber)
	paid := r.URL.Query().Get(model.FieldPaid)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if number != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    number,
			Table:    model.TableName,
		})
	}

	if paid != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaid,
			Operator: gDto.FilterOperatorEq,
			Value:    paid,
			Table:    model.TableName,
		})
	}

	invoices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}

// GetInvoiceByID retrieves an invoice by its ID.
// @Summary Get an invoice by ID
// @Description Retrieve an invoice by its unique identifier.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
func (handler *Handler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// GetInvoiceByReservation retrieves the invoice issued for a reservation.
// @Summary Get an invoice by reservation ID
// @Description Retrieve the invoice issued at check-out for the given reservation.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.InvoiceResponse "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/reservation/{id} [get]
func (handler *Handler) GetInvoiceByReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.GetByReservation(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice by reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// MarkInvoicePaid marks an invoice as paid.
// @Summary Mark an invoice as paid
// @Description Record payment for an invoice. Fails with 409 when the invoice is already paid.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Message "Invoice marked as paid"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/pay [patch]
// @Security BearerAuth
func (handler *Handler) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkInvoicePaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkPaid(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark invoice as paid")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice marked as paid by user " + user)

	response.WithMessage(w, http.StatusOK, "Invoice marked as paid")
}
