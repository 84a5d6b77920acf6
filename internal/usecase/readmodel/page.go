package readmodel

// Page is an offset/limit window over an ordered result.
type Page struct {
	Offset int
	Limit  int
}

// NewPage maps the boundary's from/size pair to a storage window. from is
// rounded down to a multiple of size, so from=5,size=2 reads rows 4 and 5.
func NewPage(from, size int) Page {
	if size <= 0 {
		return Page{Offset: 0, Limit: 0}
	}
	if from < 0 {
		from = 0
	}
	return Page{Offset: (from / size) * size, Limit: size}
}
