package repository

const defaultPageSize = 10

func paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize
	return page, pageSize, offset
}
