package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListParamsDefaults(t *testing.T) {
	p := NewListParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, DefaultSort, p.Sort)
	assert.Equal(t, OrderDesc, p.Order)
	assert.False(t, p.IncludeDeleted)
}

func TestListParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ListParams)
		wantErr string
	}{
		{name: "defaults pass", mutate: func(p *ListParams) {}},
		{name: "page zero", mutate: func(p *ListParams) { p.Page = 0 }, wantErr: "page"},
		{name: "page negative", mutate: func(p *ListParams) { p.Page = -3 }, wantErr: "page"},
		{name: "limit zero", mutate: func(p *ListParams) { p.Limit = 0 }, wantErr: "limit"},
		{name: "limit over max", mutate: func(p *ListParams) { p.Limit = MaxLimit + 1 }, wantErr: "limit"},
		{name: "limit at max", mutate: func(p *ListParams) { p.Limit = MaxLimit }},
		{name: "order asc", mutate: func(p *ListParams) { p.Order = OrderAsc }},
		{name: "order bogus", mutate: func(p *ListParams) { p.Order = "sideways" }, wantErr: "order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewListParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Field)
		})
	}
}

func TestListParamsOffset(t *testing.T) {
	p := ListParams{Page: 3, Limit: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		limit     int
		wantPages int
	}{
		{name: "empty", total: 0, limit: 50, wantPages: 0},
		{name: "exact multiple", total: 100, limit: 50, wantPages: 2},
		{name: "partial last page", total: 101, limit: 50, wantPages: 3},
		{name: "single row", total: 1, limit: 50, wantPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := NewPagination(2, tt.limit, tt.total)
			assert.Equal(t, 2, pg.Page)
			assert.Equal(t, tt.limit, pg.Limit)
			assert.Equal(t, tt.total, pg.Total)
			assert.Equal(t, tt.wantPages, pg.Pages)
		})
	}
}
