package pagination

// Meta describes where a paged result sits in the full result set.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	From        int  `json:"from"         yaml:"from"`
	To          int  `json:"to"           yaml:"to"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds paging metadata for params applied to total items.
// From and To are 1-based and inclusive; both are zero when the window is
// empty.
func NewMeta(params Params, total int) Meta {
	start, end := params.Window(total)

	pageSize := params.PageSize
	if pageSize == 0 {
		pageSize = params.Limit
	}
	if pageSize == 0 {
		pageSize = total
	}

	currentPage := 1
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
		currentPage = start/pageSize + 1
	}

	meta := Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrevious: start > 0,
		HasNext:     end < total,
	}
	if end > start {
		meta.From = start + 1
		meta.To = end
	}
	return meta
}
