package paginator

// PaginateSlice applies pagination to a slice of any type.
// It returns a new slice containing only the items for the requested page.
func PaginateSlice[T any](slice []T, query PaginateQuery) ([]T, Paginator) {
	query.Adjust()

	total := int64(len(slice))

	startIndex := query.Offset()
	endIndex := startIndex + query.Limit
	if endIndex > total {
		endIndex = total
	}

	if startIndex >= total {
		return []T{}, Paginator{
			Total:       total,
			Count:       0,
			PerPage:     query.Limit,
			CurrentPage: query.Page,
		}
	}

	pageItems := slice[startIndex:endIndex]
	return pageItems, Paginator{
		Total:       total,
		Count:       int64(len(pageItems)),
		PerPage:     query.Limit,
		CurrentPage: query.Page,
	}
}

// ConvertSlicePtrToVal converts a slice of pointers to a slice of values,
// skipping nils.
func ConvertSlicePtrToVal[T any](src []*T) []T {
	result := make([]T, 0, len(src))
	for _, s := range src {
		if s != nil {
			result = append(result, *s)
		}
	}
	return result
}
