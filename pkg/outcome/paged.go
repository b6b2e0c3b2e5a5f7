package outcome

import "log/slog"

// PagedInfo is pagination metadata. It is not validated: zero, negative or
// inconsistent values are stored as given.
type PagedInfo struct {
	PageNumber   int64 `json:"pageNumber"`
	PageSize     int64 `json:"pageSize"`
	TotalPages   int64 `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
}

func NewPagedInfo(pageNumber, pageSize, totalPages, totalRecords int64) *PagedInfo {
	return &PagedInfo{
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
	}
}

func (p *PagedInfo) SetPageNumber(pageNumber int64) *PagedInfo {
	p.PageNumber = pageNumber
	return p
}

func (p *PagedInfo) SetPageSize(pageSize int64) *PagedInfo {
	p.PageSize = pageSize
	return p
}

func (p *PagedInfo) SetTotalPages(totalPages int64) *PagedInfo {
	p.TotalPages = totalPages
	return p
}

func (p *PagedInfo) SetTotalRecords(totalRecords int64) *PagedInfo {
	p.TotalRecords = totalRecords
	return p
}

// Clone returns a copy that no longer shares state with p.
func (p *PagedInfo) Clone() *PagedInfo {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (p *PagedInfo) LogValue() slog.Value {
	if p == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Int64("number", p.PageNumber),
		slog.Int64("size", p.PageSize),
		slog.Int64("total_pages", p.TotalPages),
		slog.Int64("total_records", p.TotalRecords),
	)
}

// PagedResult is a Result carrying one page of a collection.
//
// The PagedInfo is held by pointer: changes made through another reference to
// the same PagedInfo are visible here. Use Clone before wrapping to detach it.
type PagedResult[T any] struct {
	Result[T]
	pagedInfo *PagedInfo
}

var _ Outcome = PagedResult[Unit]{}

// NewPagedResult creates a successful paged result.
func NewPagedResult[T any](pagedInfo *PagedInfo, value T) PagedResult[T] {
	return PagedResult[T]{
		Result:    Success(value),
		pagedInfo: pagedInfo,
	}
}

// ToPagedResult wraps r, successful or not, together with pagedInfo.
func (r Result[T]) ToPagedResult(pagedInfo *PagedInfo) PagedResult[T] {
	return PagedResult[T]{
		Result:    r,
		pagedInfo: pagedInfo,
	}
}

func (p PagedResult[T]) PagedInfo() *PagedInfo {
	return p.pagedInfo
}

// MapPaged maps the page payload and keeps the page metadata.
func MapPaged[In any, Out any](input PagedResult[In], onSuccess func(r In) Out) PagedResult[Out] {
	return Map(input.Result, onSuccess).ToPagedResult(input.pagedInfo)
}

func (p PagedResult[T]) LogValue() slog.Value {
	attrs := p.Result.LogValue().Group()
	if p.pagedInfo != nil {
		attrs = append(attrs, slog.Any("page", p.pagedInfo))
	}
	return slog.GroupValue(attrs...)
}
