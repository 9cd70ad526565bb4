package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consulta/shared"
	"consulta/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 25, limit: 0, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single page", total: 3, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "consultant:get", shared.BuildCacheKey("consultant:get"))
	assert.Equal(t, "consultant:get:abc", shared.BuildCacheKey("consultant:get", "abc"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildCacheKey("limiter", "1.2.3.4", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "abc", Table: "consultants"},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("consultant:gets", params, filter)
	keyB := shared.BuildCacheKeyWithQuery("consultant:gets", params, filter)
	assert.Equal(t, keyA, keyB)

	params.Page = 2
	keyC := shared.BuildCacheKeyWithQuery("consultant:gets", params, filter)
	assert.NotEqual(t, keyA, keyC)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "consultants")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(consultants.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "some-id"}, args)
}
