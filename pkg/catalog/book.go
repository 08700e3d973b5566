package catalog

// Author identifies who wrote a book. BirthDate is free-form text; the
// circulation rules never parse it.
type Author struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date,omitempty"`
}

// Book is a bibliographic record, immutable once seeded.
//
// NewRelease marks a title that has no physical copies yet; its single
// "original" circulates under the exclusivity rule instead.
type Book struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	Author     Author `json:"author"`
	Edition    string `json:"edition,omitempty"`
	NewRelease bool   `json:"new_release"`
}
