package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vkozyar/catalog-service/internal/repository"
)

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   repository.Pagination
		want repository.Pagination
	}{
		{"defaults", repository.Pagination{}, repository.Pagination{Page: 1, Limit: 10}},
		{"negative page", repository.Pagination{Page: -3, Limit: 5}, repository.Pagination{Page: 1, Limit: 5}},
		{"zero limit", repository.Pagination{Page: 2}, repository.Pagination{Page: 2, Limit: 10}},
		{"limit capped", repository.Pagination{Page: 1, Limit: 500}, repository.Pagination{Page: 1, Limit: 100}},
		{"valid passes through", repository.Pagination{Page: 3, Limit: 25}, repository.Pagination{Page: 3, Limit: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPaginationSkip(t *testing.T) {
	assert.Equal(t, int64(0), repository.Pagination{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(40), repository.Pagination{Page: 5, Limit: 10}.Skip())
	assert.Equal(t, int64(50), repository.Pagination{Page: 3, Limit: 25}.Skip())
}
