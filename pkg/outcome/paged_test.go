package outcome

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedInfo_Constructor(t *testing.T) {
	t.Parallel()

	p := NewPagedInfo(1, 10, 5, 50)
	assert.Equal(t, PagedInfo{PageNumber: 1, PageSize: 10, TotalPages: 5, TotalRecords: 50}, *p)

	zero := NewPagedInfo(0, 0, 0, 0)
	assert.Equal(t, PagedInfo{}, *zero)

	odd := NewPagedInfo(9, -1, 2, 0)
	assert.Equal(t, int64(9), odd.PageNumber)
	assert.Equal(t, int64(-1), odd.PageSize)
}

func TestPagedInfo_SettersReturnReceiver(t *testing.T) {
	t.Parallel()

	p := NewPagedInfo(1, 10, 5, 50)
	assert.Same(t, p, p.SetPageNumber(2))
	assert.Same(t, p, p.SetPageSize(20))
	assert.Same(t, p, p.SetTotalPages(10))
	assert.Same(t, p, p.SetTotalRecords(100))
	assert.Equal(t, PagedInfo{PageNumber: 2, PageSize: 20, TotalPages: 10, TotalRecords: 100}, *p)
}

func TestPagedInfo_PartialChain(t *testing.T) {
	t.Parallel()

	p := NewPagedInfo(1, 10, 5, 50).SetPageNumber(2).SetTotalRecords(100)
	assert.Equal(t, int64(2), p.PageNumber)
	assert.Equal(t, int64(10), p.PageSize)
	assert.Equal(t, int64(5), p.TotalPages)
	assert.Equal(t, int64(100), p.TotalRecords)
}

func TestPagedInfo_Clone(t *testing.T) {
	t.Parallel()

	p := NewPagedInfo(1, 10, 5, 50)
	c := p.Clone()
	c.SetPageNumber(3)
	assert.Equal(t, int64(1), p.PageNumber)
	assert.Equal(t, int64(3), c.PageNumber)

	var nilInfo *PagedInfo
	assert.Nil(t, nilInfo.Clone())
}

func TestNewPagedResult(t *testing.T) {
	t.Parallel()

	info := NewPagedInfo(1, 10, 5, 50)
	items := []string{"Item1", "Item2", "Item3"}

	p := NewPagedResult(info, items)
	assert.True(t, p.IsSuccess())
	assert.Equal(t, StatusOk, p.Status())
	assert.Equal(t, items, p.MustValue())
	assert.Same(t, info, p.PagedInfo())
	assert.Empty(t, p.Errors())
	assert.Empty(t, p.ValidationErrors())
	assert.Empty(t, p.SuccessMessage())
	assert.Empty(t, p.CorrelationID())
	assert.Equal(t, reflect.TypeOf((*[]string)(nil)).Elem(), p.ValueType())
	assert.Equal(t, items, p.GetValue())
}

func TestNewPagedResult_EmptyPage(t *testing.T) {
	t.Parallel()

	p := NewPagedResult(NewPagedInfo(1, 10, 0, 0), []string{})
	assert.True(t, p.IsSuccess())
	assert.Empty(t, p.MustValue())
	assert.Equal(t, int64(0), p.PagedInfo().TotalRecords)
}

func TestPagedResult_SharesPagedInfo(t *testing.T) {
	t.Parallel()

	info := NewPagedInfo(1, 10, 5, 50)
	p := NewPagedResult(info, []string{"Item1"})

	info.SetPageNumber(2).SetTotalRecords(100)

	assert.Equal(t, int64(2), p.PagedInfo().PageNumber)
	assert.Equal(t, int64(100), p.PagedInfo().TotalRecords)

	detached := NewPagedResult(info.Clone(), []string{"Item1"})
	info.SetPageNumber(7)
	assert.Equal(t, int64(2), detached.PagedInfo().PageNumber)
}

func TestToPagedResult_Success(t *testing.T) {
	t.Parallel()

	r := SuccessWithMessage([]int{1, 2, 3, 4, 5}, "Success message").WithCorrelationID("correlation-123")
	info := NewPagedInfo(1, 5, 1, 5)

	p := r.ToPagedResult(info)
	assert.True(t, p.IsSuccess())
	assert.Len(t, p.MustValue(), 5)
	assert.Equal(t, "Success message", p.SuccessMessage())
	assert.Equal(t, "correlation-123", p.CorrelationID())
	assert.Equal(t, int64(1), p.PagedInfo().PageNumber)
	assert.Equal(t, int64(5), p.PagedInfo().PageSize)
	assert.Equal(t, r, p.Result)
}

func TestToPagedResult_Failure(t *testing.T) {
	t.Parallel()

	r := Error[[]string]("Failed to load")
	p := r.ToPagedResult(NewPagedInfo(1, 10, 0, 0))

	assert.False(t, p.IsSuccess())
	assert.Equal(t, StatusError, p.Status())
	assert.Equal(t, []string{"Failed to load"}, p.Errors())
	assert.False(t, p.HasValue())
}

func TestMapPaged(t *testing.T) {
	t.Parallel()

	info := NewPagedInfo(2, 2, 3, 6)
	p := NewPagedResult(info, []string{"a", "b"})

	upper := MapPaged(p, func(items []string) []string {
		out := make([]string, len(items))
		for i, s := range items {
			out[i] = strings.ToUpper(s)
		}
		return out
	})
	require.True(t, upper.IsSuccess())
	assert.Equal(t, []string{"A", "B"}, upper.MustValue())
	assert.Same(t, info, upper.PagedInfo())

	failed := MapPaged(NotFound[[]string]("none").ToPagedResult(info), func(items []string) int { return len(items) })
	assert.Equal(t, StatusNotFound, failed.Status())
	assert.Same(t, info, failed.PagedInfo())
}

func TestPagedResult_IsOutcome(t *testing.T) {
	t.Parallel()

	var o Outcome = NewPagedResult(NewPagedInfo(1, 1, 1, 1), 42)
	assert.Equal(t, 42, o.GetValue())
	assert.Equal(t, reflect.TypeOf((*int)(nil)).Elem(), o.ValueType())
}
