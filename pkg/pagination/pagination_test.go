package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)

	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)
}

func TestPagination_NormalizeFixesFlags(t *testing.T) {
	p := &Pagination{Page: 3, Limit: 10, Total: 30, TotalPages: 3, HasNext: true, HasPrev: false}
	p.Normalize()

	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPagination_NormalizeDerivesTotalPages(t *testing.T) {
	p := (&Pagination{Page: 1, Limit: 20, Total: 41}).Normalize()

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestPagination_NormalizeNil(t *testing.T) {
	var p *Pagination
	assert.Nil(t, p.Normalize())
}

func TestParams_Validate(t *testing.T) {
	p := Params{Page: 0, Limit: 500}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)

	p = Params{Page: 2, Limit: -1}
	p.Validate()
	assert.Equal(t, DefaultLimit, p.Limit)
}
