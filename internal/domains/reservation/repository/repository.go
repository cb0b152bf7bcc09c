package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pension/infras/otel"
	"pension/infras/postgres"
	"pension/internal/domains/reservation/model"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/logger"
	gRepo "pension/shared/repository"
	"pension/shared/timezone"
)

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Reservation) error
	WithTx(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error
	AssignRoomsTx(ctx context.Context, sqltx *sqlx.Tx, reservationID string, roomIDs []string, user string) error
	ActiveStaysForRooms(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string) ([]model.ActiveStay, error)
	RoomIDsOf(ctx context.Context, reservationID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// WithTx runs fn inside a single write transaction, committing on success and
// rolling back on any error.
func (repo *repositoryImpl) WithTx(ctx context.Context, fn func(sqltx *sqlx.Tx) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.WithTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqltx.Rollback()

			panic(p)
		}
	}()

	if err = fn(sqltx); err != nil {
		if rbErr := sqltx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AssignRoomsTx records which rooms a reservation occupies.
func (repo *repositoryImpl) AssignRoomsTx(ctx context.Context, sqltx *sqlx.Tx, reservationID string, roomIDs []string, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.AssignRoomsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES (:reservation_id, :room_id, :created_by, :modified_by)",
		model.RoomsTableName,
		model.FieldReservationID, model.FieldRoomID,
		constant.FieldCreatedBy, constant.FieldModifiedBy,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := make([]model.ReservationRoom, len(roomIDs))
	for i, roomID := range roomIDs {
		rows[i] = model.ReservationRoom{
			ReservationID: reservationID,
			RoomID:        roomID,
		}
		rows[i].CreatedAt = timezone.Now()
		rows[i].ModifiedAt = timezone.Now()
		rows[i].CreatedBy = user
		rows[i].ModifiedBy = user
	}

	if _, err = sqltx.NamedExecContext(ctx, query, rows); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to assign rooms to reservation: %w", err)
	}

	return nil
}

// ActiveStaysForRooms fetches the stay windows of every active reservation
// touching the given rooms. Run it after the room rows are locked so the
// result cannot change for the lifetime of the transaction.
func (repo *repositoryImpl) ActiveStaysForRooms(ctx context.Context, sqltx *sqlx.Tx, roomIDs []string) (stays []model.ActiveStay, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ActiveStaysForRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(
		fmt.Sprintf(
			"SELECT rr.%s, rr.%s, r.%s, r.%s FROM %s rr JOIN %s r ON r.%s = rr.%s WHERE r.%s = ? AND rr.%s IN (?)",
			model.FieldReservationID, model.FieldRoomID,
			model.FieldCheckIn, model.FieldCheckOut,
			model.RoomsTableName, model.TableName,
			model.FieldID, model.FieldReservationID,
			model.FieldStatus, model.FieldRoomID,
		),
		model.StatusActive, roomIDs,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build active stays query: %w", err)
	}

	query = sqltx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = sqltx.SelectContext(ctx, &stays, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get active stays: %w", err)
	}

	return stays, nil
}

// RoomIDsOf returns the rooms held by a reservation.
func (repo *repositoryImpl) RoomIDsOf(ctx context.Context, reservationID string) (roomIDs []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.RoomIDsOf")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s",
		model.FieldRoomID, model.RoomsTableName, model.FieldReservationID, model.FieldRoomID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &roomIDs, query, reservationID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	return roomIDs, nil
}
