package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/countrydex/internal/cli/pagination"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		total  int
		want   pagination.Meta
	}{
		{
			name:   "single page when unpaged",
			params: pagination.Params{},
			total:  4,
			want: pagination.Meta{
				CurrentPage: 1, PageSize: 4, TotalPages: 1, TotalItems: 4, From: 1, To: 4,
			},
		},
		{
			name:   "middle page",
			params: pagination.Params{Page: 2, PageSize: 10},
			total:  25,
			want: pagination.Meta{
				CurrentPage: 2, PageSize: 10, TotalPages: 3, TotalItems: 25,
				From: 11, To: 20, HasPrevious: true, HasNext: true,
			},
		},
		{
			name:   "last partial page",
			params: pagination.Params{Page: 3, PageSize: 10},
			total:  25,
			want: pagination.Meta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25,
				From: 21, To: 25, HasPrevious: true,
			},
		},
		{
			name:   "offset converts to page",
			params: pagination.Params{Limit: 5, Offset: 10},
			total:  12,
			want: pagination.Meta{
				CurrentPage: 3, PageSize: 5, TotalPages: 3, TotalItems: 12,
				From: 11, To: 12, HasPrevious: true,
			},
		},
		{
			name:   "offset past end",
			params: pagination.Params{Limit: 5, Offset: 20},
			total:  12,
			want: pagination.Meta{
				CurrentPage: 3, PageSize: 5, TotalPages: 3, TotalItems: 12, HasPrevious: true,
			},
		},
		{
			name:   "no results",
			params: pagination.Params{Page: 1, PageSize: 10},
			total:  0,
			want:   pagination.Meta{CurrentPage: 1, PageSize: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.NewMeta(tt.params, tt.total))
		})
	}
}
