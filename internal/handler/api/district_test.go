//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"football-field-booking/internal/handler/api"
	resdto "football-field-booking/internal/handler/dto/response"
	queriesmock "football-field-booking/internal/mock/queries"
	"football-field-booking/internal/testutil/builder"
	"football-field-booking/internal/testutil/httptest"
	"football-field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDistrictHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockDistrictQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDistrictQueries(ctrl)
		r := gin.New()
		r.GET("/districts", api.NewDistrictHandler(q).List)
		return r, q
	}

	t.Run("地区一覧を返す", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().List(gomock.Any()).Return([]*queries.DistrictView{
			{ID: builder.ChilonzorDistrictID, Name: "Chilonzor", City: "Tashkent", Region: "Tashkent"},
			{ID: builder.YunusobodDistrictID, Name: "Yunusobod", City: "Tashkent", Region: "Tashkent"},
		}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/districts", nil, "")

		var body []resdto.DistrictResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Len(t, body, 2)
		assert.Equal(t, "Chilonzor", body[0].Name)
		assert.Equal(t, builder.YunusobodDistrictID, body[1].ID)
	})

	t.Run("クエリ失敗は500", func(t *testing.T) {
		r, q := setup(t)
		q.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/districts", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
