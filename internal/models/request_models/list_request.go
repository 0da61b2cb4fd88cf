package request_models

// ListRequest carries the optional pagination of collection endpoints.
// A zero Page means "return every row".
type ListRequest struct {
	Page     int
	PageSize int
}

func (l ListRequest) Paginated() bool {
	return l.Page > 0
}
