package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/x", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"page two", "/x?page=2&per_page=10", Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}},
		{"limit alias", "/x?limit=5", Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"clamped to max", "/x?per_page=1000", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"negative page normalized", "/x?page=-3", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveOn(t, tt.target, 20, 100)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(25, 2, 20)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(502))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
