package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendeeFullName(t *testing.T) {
	a := Attendee{FirstName: "Maria", LastName: "Santos"}
	assert.Equal(t, "Maria Santos", a.FullName())

	// นามสกุลว่างต้องไม่มี space ห้อยท้าย
	b := Attendee{FirstName: "Maria"}
	assert.Equal(t, "Maria", b.FullName())
}

func TestPaginationDefaults(t *testing.T) {
	p := DefaultPagination()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.Equal(t, "desc", p.Order)

	assert.Equal(t, int64(0), p.GetSkip())
	p.Page = 3
	assert.Equal(t, int64(40), p.GetSkip())
}

func TestPaginationNormalize(t *testing.T) {
	// ?limit=0 จาก query string ต้องไม่หลุดไปหาร totalPages
	p := PaginationParams{Page: 0, Limit: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = PaginationParams{Page: -2, Limit: -5}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = PaginationParams{Page: 3, Limit: 50}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
}

func TestNewPaginatedResponse(t *testing.T) {
	p := DefaultPagination()
	p.Limit = 10

	res := NewPaginatedResponse([]string{}, 25, p)
	assert.Equal(t, 3, res.TotalPages)
	assert.True(t, res.HasNext)
	assert.False(t, res.HasPrevious)
}
