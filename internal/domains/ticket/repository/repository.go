package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pension/infras/otel"
	"pension/infras/postgres"
	"pension/internal/domains/ticket/model"
	gDto "pension/shared/dto"
	gRepo "pension/shared/repository"
)

type Ticket interface {
	Insert(ctx context.Context, model model.Ticket) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Ticket, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Ticket, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Ticket]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Ticket](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
