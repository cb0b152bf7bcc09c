package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"pension/infras/otel"
	"pension/infras/postgres"
	invoiceModel "pension/internal/domains/invoice/model"
	"pension/internal/domains/report/model/dto"
	reservationModel "pension/internal/domains/reservation/model"
	roomModel "pension/internal/domains/room/model"
	ticketModel "pension/internal/domains/ticket/model"
	"pension/shared/constant"
	"pension/shared/logger"
)

// Report reads aggregate figures straight off the read replica. Nothing here
// takes locks; the numbers are a point-in-time snapshot.
type Report interface {
	RoomStatusCounts(ctx context.Context) ([]dto.RoomStatusCount, error)
	ActiveReservationCount(ctx context.Context) (int, error)
	ArrivalCountOn(ctx context.Context, date time.Time) (int, error)
	DepartureCountOn(ctx context.Context, date time.Time) (int, error)
	RevenueOn(ctx context.Context, date time.Time) (dto.RevenueSummary, error)
	ReservationTotals(ctx context.Context) (dto.ReservationTotals, error)
	TotalRevenueCents(ctx context.Context) (int64, error)
	OpenTicketCount(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) RoomStatusCounts(ctx context.Context) (res []dto.RoomStatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RoomStatusCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) AS count FROM %s GROUP BY %s ORDER BY %s",
		roomModel.FieldStatus, roomModel.TableName, roomModel.FieldStatus, roomModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) ActiveReservationCount(ctx context.Context) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.ActiveReservationCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s = $1",
		reservationModel.TableName, reservationModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, reservationModel.StatusActive); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count active reservations: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) ArrivalCountOn(ctx context.Context, date time.Time) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.ArrivalCountOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s = $2",
		reservationModel.TableName, reservationModel.FieldCheckIn, reservationModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, date.Format(constant.DateOnlyFormat), reservationModel.StatusActive); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count arrivals: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) DepartureCountOn(ctx context.Context, date time.Time) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.DepartureCountOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Finalized stays still count as departures for the day they ended.
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s IN ($2, $3)",
		reservationModel.TableName, reservationModel.FieldCheckOut, reservationModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query,
		date.Format(constant.DateOnlyFormat),
		reservationModel.StatusActive, reservationModel.StatusFinalized,
	); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count departures: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) RevenueOn(ctx context.Context, date time.Time) (res dto.RevenueSummary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RevenueOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		`SELECT
			COUNT(*) AS invoice_count,
			COALESCE(SUM(%[1]s), 0) AS total_cents,
			COALESCE(SUM(%[1]s) FILTER (WHERE %[2]s), 0) AS paid_cents,
			COALESCE(SUM(%[1]s) FILTER (WHERE NOT %[2]s), 0) AS outstanding_cents,
			COALESCE(SUM(%[3]s), 0) AS total_nights
		FROM %[4]s WHERE %[5]s::date = $1`,
		invoiceModel.FieldTotalCents, invoiceModel.FieldPaid, invoiceModel.FieldNights,
		invoiceModel.TableName, invoiceModel.FieldIssuedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, date.Format(constant.DateOnlyFormat)); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) ReservationTotals(ctx context.Context) (res dto.ReservationTotals, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.ReservationTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		`SELECT
			COUNT(*) AS total_reservations,
			COUNT(*) FILTER (WHERE %[1]s = $1) AS finalized_count,
			COUNT(*) FILTER (WHERE %[1]s = $2) AS cancelled_count
		FROM %[2]s`,
		reservationModel.FieldStatus, reservationModel.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query,
		reservationModel.StatusFinalized, reservationModel.StatusCancelled,
	); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) TotalRevenueCents(ctx context.Context) (res int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.TotalRevenueCents")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(%s), 0) FROM %s",
		invoiceModel.FieldTotalCents, invoiceModel.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum invoiced revenue: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) OpenTicketCount(ctx context.Context) (res int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.OpenTicketCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s IN ($1, $2)",
		ticketModel.TableName, ticketModel.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, ticketModel.StatusOpen, ticketModel.StatusInProgress); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count open tickets: %w", err)
	}

	return res, nil
}
