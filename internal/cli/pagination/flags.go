package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders and defaults.
const (
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	DefaultSortOrder = SortOrderAsc
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Sort expression errors.
var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'population:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the paging flags of a list command.
// Two modes are supported and they are mutually exclusive:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// A zero Limit means no limit.
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
}

// Validate checks that the parameters are non-negative and that the two
// paging modes are not mixed.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	if p.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if p.PageSize < 0 {
		return errors.New("page-size cannot be negative")
	}

	if p.Page > 0 && (p.Offset > 0 || p.Limit > 0) {
		return errors.New("--page cannot be combined with --offset or --limit")
	}
	if p.Page == 0 && p.PageSize > 0 {
		return errors.New("--page-size requires --page to be set")
	}
	if p.Page > 0 && p.PageSize == 0 {
		return errors.New("--page requires --page-size to be set")
	}

	return nil
}

// IsPageBased reports whether page-based paging is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any paging flag is set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0 || p.Page > 0 || p.PageSize > 0
}

// OffsetLimit returns the effective offset and limit for either mode.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) OffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Window returns the half-open [start, end) range of items selected by p
// out of total. A page past the end is clamped to the last page; an
// offset past the end selects nothing.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) Window(total int) (start, end int) {
	if total == 0 {
		return 0, 0
	}

	offset, limit := p.OffsetLimit()
	if p.IsPageBased() && p.PageSize > 0 && offset >= total {
		offset = ((total - 1) / p.PageSize) * p.PageSize
	}
	if offset >= total {
		return total, total
	}

	end = total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return offset, end
}

// Apply returns the slice of items selected by p.
func Apply[T any](p Params, items []T) []T {
	start, end := p.Window(len(items))
	return items[start:end]
}

// ParseSort parses a sort expression of the form "field" or "field:order".
// An empty expression yields an empty field, meaning keep the input order.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field, order string, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(expr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return strings.ToLower(field), order, nil
}
