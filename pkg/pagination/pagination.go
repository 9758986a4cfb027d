package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/query"
)

// ErrInvalidParams rejects non-numeric page and page_size values.
var ErrInvalidParams = apperr.New(apperr.InvalidInput, "Parâmetros de paginação inválidos")

// PageRequest selects one page of a listing. Search matches the text
// columns each domain chooses; Sort names projection fields.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps page to 1 and page size into [1, cfg.MaxPageSize],
// substituting cfg.DefaultPageSize when unset.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = min(r.PageSize, cfg.MaxPageSize)
}

// FromQuery reads page, page_size (or its alias limit), search and sort.
// Absent values fall back to defaults; values that are present but not
// integers fail with ErrInvalidParams. A blank search is dropped.
func FromQuery(values url.Values, cfg Config) (PageRequest, error) {
	var req PageRequest

	page, err := intParam(values, "page")
	if err != nil {
		return req, err
	}

	sizeKey := "page_size"
	if !values.Has(sizeKey) {
		sizeKey = "limit"
	}
	pageSize, err := intParam(values, sizeKey)
	if err != nil {
		return req, err
	}

	req.Page, req.PageSize = page, pageSize
	if s := strings.TrimSpace(values.Get("search")); s != "" {
		req.Search = &s
	}
	req.Sort = query.ParseSortFields(values.Get("sort"))

	req.Normalize(cfg)
	return req, nil
}

func intParam(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidParams
	}
	return n, nil
}

// PageResult is the list envelope returned by every listing endpoint.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPageResult wraps one page of rows. An empty listing has zero pages
// and Data is never nil.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}
