package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pension/infras/otel"
	"pension/infras/postgres"
	"pension/internal/domains/room/model"
	roomTypeModel "pension/internal/domains/roomtype/model"
	"pension/shared/constant"
	gDto "pension/shared/dto"
	"pension/shared/logger"
	gRepo "pension/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	LockByIDs(ctx context.Context, sqltx *sqlx.Tx, ids []string) ([]model.Room, error)
	UpdateStatusTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, status, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockByIDs takes row locks on the given rooms inside the supplied transaction.
// Rows come back ordered by id so concurrent transactions always lock in the
// same order and cannot deadlock each other. The room type is joined in so
// callers get the nightly price without a second query; only the room rows
// are locked.
func (repo *repositoryImpl) LockByIDs(ctx context.Context, sqltx *sqlx.Tx, ids []string) (rooms []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockByIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT %s.%s, %s.%s, %s.%s, %s.%s, %s.%s, %s.%s AS type_name, %s.%s, %s.%s FROM %s %s WHERE %s.%s IN (?) ORDER BY %s.%s FOR UPDATE OF %s",
			model.TableName, model.FieldID,
			model.TableName, model.FieldNumber,
			model.TableName, model.FieldFloor,
			model.TableName, model.FieldRoomTypeID,
			model.TableName, model.FieldStatus,
			roomTypeModel.TableName, roomTypeModel.FieldName,
			roomTypeModel.TableName, roomTypeModel.FieldCapacity,
			roomTypeModel.TableName, roomTypeModel.FieldPricePerNightCents,
			model.TableName, model.Room{}.GetJoinQuery(),
			model.TableName, model.FieldID,
			model.TableName, model.FieldID,
			model.TableName),
		ids,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build room lock query: %w", err)
	}

	query = sqltx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = sqltx.SelectContext(ctx, &rooms, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to lock rooms: %w", err)
	}

	return rooms, nil
}

// UpdateStatusTx flips the status of the given rooms inside the supplied transaction.
func (repo *repositoryImpl) UpdateStatusTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, status, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateStatusTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	placeholders := make([]string, len(ids))
	args := []any{status, user}

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+3)
		args = append(args, id)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = NOW(), %s = $2 WHERE %s IN (%s)",
		model.TableName, model.FieldStatus,
		constant.FieldModifiedAt, constant.FieldModifiedBy,
		model.FieldID, strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = sqltx.ExecContext(ctx, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}
