package catalog

// CopyStatus represents the circulation state of a physical copy.
type CopyStatus string

// Declared copy statuses. Only IN_LIBRARY and LOANED are exercised by the
// current rules; RESERVED, LATE and REPAIR are reserved as extension points.
const (
	StatusInLibrary CopyStatus = "IN_LIBRARY"
	StatusLoaned    CopyStatus = "LOANED"
	StatusReserved  CopyStatus = "RESERVED"
	StatusLate      CopyStatus = "LATE"
	StatusRepair    CopyStatus = "REPAIR"
)

// IsValid reports whether s is one of the declared copy statuses.
func (s CopyStatus) IsValid() bool {
	switch s {
	case StatusInLibrary, StatusLoaned, StatusReserved, StatusLate, StatusRepair:
		return true
	}
	return false
}

// Copy is one physical instance of a book available for circulation.
type Copy struct {
	ID     string     `json:"id"`
	BookID string     `json:"book_id"`
	Status CopyStatus `json:"status"`
}
