package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "reception@example.com",
		ModifiedBy: "manager@example.com",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "reception@example.com", metadata.CreatedBy)
	assert.Equal(t, "manager@example.com", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "room_number",
				"sort_dir": "ASC",
			},
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "room_number",
				SortDir: "ASC",
			},
		},
		{
			name:           "defaults enabled with no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:        "defaults disabled with no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "non-numeric page falls back to default",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "negative page falls back to default",
			queryParams:    map[string]string{"page": "-1"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "zero page falls back to default",
			queryParams:    map[string]string{"page": "0"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "non-numeric limit falls back to default",
			queryParams:    map[string]string{"limit": "invalid"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "negative limit falls back to default",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "partial parameters with defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "check_in",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:   3,
				Limit:  constant.DefaultValueLimit,
				SortBy: "check_in",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/rooms")
			assert.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			assert.NoError(t, err)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	assert.Equal(t, "ASC", dto.SortDirAsc)
	assert.Equal(t, "DESC", dto.SortDirDesc)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "equality on a table column",
			filter: dto.Filter{
				Field:    "room_number",
				Value:    "204",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			expectedWhere: "bookings.room_number = :room_number",
			expectedArgs:  map[string]any{"room_number": "204"},
		},
		{
			name: "strict less keeps touching dates apart",
			filter: dto.Filter{
				ArgName:  "new_check_out",
				Field:    "check_in",
				Value:    "2026-03-05",
				Operator: dto.FilterOperatorLess,
				Table:    "bookings",
			},
			expectedWhere: "bookings.check_in < :new_check_out",
			expectedArgs:  map[string]any{"new_check_out": "2026-03-05"},
		},
		{
			name: "strict greater keeps touching dates apart",
			filter: dto.Filter{
				ArgName:  "new_check_in",
				Field:    "check_out",
				Value:    "2026-03-01",
				Operator: dto.FilterOperatorGreater,
				Table:    "bookings",
			},
			expectedWhere: "bookings.check_out > :new_check_in",
			expectedArgs:  map[string]any{"new_check_in": "2026-03-01"},
		},
		{
			name: "inclusive less",
			filter: dto.Filter{
				Field:    "quantity",
				Value:    10,
				Operator: dto.FilterOperatorLessEq,
			},
			expectedWhere: "quantity <= :quantity",
			expectedArgs:  map[string]any{"quantity": 10},
		},
		{
			name: "inclusive greater",
			filter: dto.Filter{
				Field:    "quantity",
				Value:    5,
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "quantity >= :quantity",
			expectedArgs:  map[string]any{"quantity": 5},
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "booking_status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
				Table:    "bookings",
			},
			expectedWhere: "bookings.booking_status != :booking_status",
			expectedArgs:  map[string]any{"booking_status": "cancelled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
