package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "false", expected: boolPtr(false)},
		{input: "1", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "t", expected: boolPtr(true)},
		{input: "f", expected: boolPtr(false)},
		{input: "T", expected: boolPtr(true)},
		{input: "F", expected: boolPtr(false)},
		{input: "TRUE", expected: boolPtr(true)},
		{input: "FALSE", expected: boolPtr(false)},
		{input: "invalid", expected: nil},
		{input: "occupied", expected: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)

				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "single item", total: 1, limit: 10, expected: 1},
		{name: "limit equals total", total: 10, limit: 10, expected: 1},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
		{name: "large totals", total: 1000000, limit: 7, expected: 142858},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		Number      string `db:"room_number"`
		Category    string `db:"category"`
		Description string `db:"description"`
		NoDBTag     string
		NoTagField  string `db:""`
	}

	tests := []struct {
		name     string
		data     roomPatch
		username string
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: roomPatch{
				Number:     "204",
				Category:   "Deluxe",
				NoDBTag:    "ignored",
				NoTagField: "ignored",
			},
			username: "manager@example.com",
			expected: map[string]any{
				"room_number": "204",
				"category":    "Deluxe",
			},
		},
		{
			name:     "all zero values yields only audit fields",
			data:     roomPatch{},
			username: "manager@example.com",
			expected: map[string]any{},
		},
		{
			name:     "single field",
			data:     roomPatch{Description: "sea view"},
			username: "reception@example.com",
			expected: map[string]any{
				"description": "sea view",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			assert.Equal(t, tt.username, result[constant.FieldModifiedBy])
			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])

			for key, expectedValue := range tt.expected {
				assert.Equal(t, expectedValue, result[key], "field %s", key)
			}

			// audit stamps plus the expected payload, nothing else
			assert.Len(t, result, len(tt.expected)+2)
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type stockPatch struct {
		Name     *string `db:"name"`
		Quantity *int    `db:"quantity"`
	}

	name := "bath towels"
	quantity := 0

	// a pointer to zero is an explicit value, not an omitted field
	result := shared.TransformFields(stockPatch{Name: &name, Quantity: &quantity}, "manager@example.com")

	assert.Equal(t, &name, result["name"])
	assert.Equal(t, &quantity, result["quantity"])
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		fieldID string
		table   string
	}{
		{
			name:    "filter scoped to a table",
			id:      "550e8400-e29b-41d4-a716-446655440000",
			fieldID: "id",
			table:   "bookings",
		},
		{
			name:    "filter without a table",
			id:      "room-id-456",
			fieldID: "room_id",
			table:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			assert.Len(t, result.Filters, 1)

			filter, ok := result.Filters[0].(dto.Filter)
			assert.True(t, ok)
			assert.Equal(t, tt.fieldID, filter.Field)
			assert.Equal(t, tt.id, filter.Value)
			assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
			assert.Equal(t, tt.table, filter.Table)
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
