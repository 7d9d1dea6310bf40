package response

import (
	"concert-reservation/internal/usecase/queries"
)

type PaginatedResponse[T any] struct {
	Data []T              `json:"data"`
	Meta queries.PageMeta `json:"meta"`
}

// FromPage converts every item of page with conv.
func FromPage[V any, T any](page *queries.Page[V], conv func(V) T) *PaginatedResponse[T] {
	data := make([]T, len(page.Items))
	for i, item := range page.Items {
		data[i] = conv(item)
	}
	return &PaginatedResponse[T]{Data: data, Meta: page.Meta}
}
