package sqldb

import (
	"context"

	"github.com/google/uuid"
)

const insertFieldImage = `-- name: InsertFieldImage :exec
INSERT INTO field_images (field_id, url, position) VALUES ($1, $2, $3)`

type InsertFieldImageParams struct {
	FieldID  uuid.UUID `json:"field_id"`
	Url      string    `json:"url"`
	Position int32     `json:"position"`
}

func (q *Queries) InsertFieldImage(ctx context.Context, db DBTX, arg InsertFieldImageParams) error {
	_, err := db.Exec(ctx, insertFieldImage, arg.FieldID, arg.Url, arg.Position)
	return err
}

const deleteFieldImages = `-- name: DeleteFieldImages :exec
DELETE FROM field_images WHERE field_id = $1`

func (q *Queries) DeleteFieldImages(ctx context.Context, db DBTX, fieldID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteFieldImages, fieldID)
	return err
}

const listFieldImagesByFieldIDs = `-- name: ListFieldImagesByFieldIDs :many
SELECT id, field_id, url, position
FROM field_images
WHERE field_id = ANY($1::uuid[])
ORDER BY field_id, position`

func (q *Queries) ListFieldImagesByFieldIDs(ctx context.Context, db DBTX, fieldIDs []uuid.UUID) ([]FieldImage, error) {
	rows, err := db.Query(ctx, listFieldImagesByFieldIDs, fieldIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FieldImage{}
	for rows.Next() {
		var i FieldImage
		if err := rows.Scan(&i.ID, &i.FieldID, &i.Url, &i.Position); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
