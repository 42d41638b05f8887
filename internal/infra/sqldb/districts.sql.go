package sqldb

import (
	"context"

	"github.com/google/uuid"
)

type DistrictView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CityName   string    `json:"city_name"`
	RegionName string    `json:"region_name"`
}

const listDistrictViews = `-- name: ListDistrictViews :many
SELECT d.id, d.name, c.name, r.name
FROM districts d
JOIN cities c ON c.id = d.city_id
JOIN regions r ON r.id = c.region_id
ORDER BY r.name, c.name, d.name`

func (q *Queries) ListDistrictViews(ctx context.Context, db DBTX) ([]DistrictView, error) {
	rows, err := db.Query(ctx, listDistrictViews)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []DistrictView{}
	for rows.Next() {
		var i DistrictView
		if err := rows.Scan(&i.ID, &i.Name, &i.CityName, &i.RegionName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
