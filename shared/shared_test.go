package shared_test

import (
	"testing"

	"resthouse/shared"
	"resthouse/shared/constant"
	"resthouse/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "true value", input: "true", expected: boolPtr(true)},
		{name: "false value", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "empty string", input: "", expected: nil},
		{name: "garbage", input: "not-a-bool", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil || *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, result)
			}
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
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "remainder rounds up", total: 21, limit: 10, expected: 3},
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 10, limit: 0, expected: 1},
		{name: "single page", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

type updateFixture struct {
	Name  string `db:"name"`
	Email string `db:"email"`
	Notes string
}

func TestTransformFields(t *testing.T) {
	fields := shared.TransformFields(updateFixture{Name: "Deluxe", Notes: "ignored"}, "admin-1")

	if fields["name"] != "Deluxe" {
		t.Errorf("expected name field to be 'Deluxe', got %v", fields["name"])
	}

	if _, ok := fields["email"]; ok {
		t.Error("expected zero-valued email to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "admin-1" {
		t.Errorf("expected modified_by to be 'admin-1', got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "rooms")

	where, args := group.GetWhereClause()

	if where != "(rooms.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["id"] != "room-1" {
		t.Errorf("expected id arg to be 'room-1', got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("room:get"); got != "room:get" {
		t.Errorf("expected bare prefix, got %s", got)
	}

	if got := shared.BuildCacheKey("room:get", "room-1"); got != "room:get:room-1" {
		t.Errorf("unexpected cache key: %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, dto.FilterGroup{})

	if keyA == keyB {
		t.Error("expected different query params to produce different cache keys")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
