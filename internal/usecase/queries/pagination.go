package queries

import (
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses raw query values. Anything missing, malformed or out of
// range falls back to the defaults; limits above MaxLimit are capped.
func NewPageRequest(rawPage, rawLimit string) PageRequest {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p PageRequest) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.Limit
}

type PageMeta struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPageMeta(p PageRequest, totalItems int) PageMeta {
	p = p.normalized()
	totalPages := (totalItems + p.Limit - 1) / p.Limit

	return PageMeta{
		CurrentPage:     p.Page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    p.Limit,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}

type Page[T any] struct {
	Items []T
	Meta  PageMeta
}

func NewPage[T any](items []T, p PageRequest, totalItems int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Meta: NewPageMeta(p, totalItems)}
}
