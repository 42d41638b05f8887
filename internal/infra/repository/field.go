package repository

import (
	"context"

	"football-field-booking/internal/domain/field"
	"football-field-booking/internal/infra"
	"football-field-booking/internal/infra/repository/converter"
	"football-field-booking/internal/infra/sqldb"

	"github.com/google/uuid"
)

type FieldWriteQueries interface {
	CreateField(ctx context.Context, db sqldb.DBTX, arg sqldb.CreateFieldParams) (uuid.UUID, error)
	UpdateField(ctx context.Context, db sqldb.DBTX, arg sqldb.UpdateFieldParams) (int64, error)
	DeleteField(ctx context.Context, db sqldb.DBTX, id uuid.UUID) (int64, error)
	InsertFieldImage(ctx context.Context, db sqldb.DBTX, arg sqldb.InsertFieldImageParams) error
	DeleteFieldImages(ctx context.Context, db sqldb.DBTX, fieldID uuid.UUID) error
}

type FieldRepository struct {
	queries FieldWriteQueries
	db      sqldb.DBTX
}

func NewFieldRepository(queries FieldWriteQueries, db sqldb.DBTX) *FieldRepository {
	return &FieldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FieldRepository) Create(ctx context.Context, tx sqldb.DBTX, f *field.Field) (uuid.UUID, error) {
	id, err := r.queries.CreateField(ctx, tx, converter.FieldToCreateParams(f))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create field", err)
	}
	if err := r.insertImages(ctx, tx, id, f.Images()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update overwrites every column and replaces the image list.
func (r *FieldRepository) Update(ctx context.Context, tx sqldb.DBTX, f *field.Field) error {
	n, err := r.queries.UpdateField(ctx, tx, converter.FieldToUpdateParams(f))
	if err != nil {
		return infra.WrapRepoErr("failed to update field", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}

	if err := r.queries.DeleteFieldImages(ctx, tx, f.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear field images", err)
	}
	return r.insertImages(ctx, tx, f.ID(), f.Images())
}

func (r *FieldRepository) Delete(ctx context.Context, tx sqldb.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteField(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete field", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FieldRepository) insertImages(ctx context.Context, tx sqldb.DBTX, fieldID uuid.UUID, urls []string) error {
	for i, u := range urls {
		params := sqldb.InsertFieldImageParams{FieldID: fieldID, Url: u, Position: int32(i)} // #nosec G115 -- bounded by field.MaxImages
		if err := r.queries.InsertFieldImage(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to insert field image", err)
		}
	}
	return nil
}
