package circulation

import (
	"fmt"

	"github.com/dmitrymomot/librakit/pkg/catalog"
)

// originalKey identifies the open loan of a new-release original.
type originalKey struct {
	bookID   string
	readerID string
}

// Store holds the circulation desk's working set: books, copies, readers and
// loans keyed by identifier, plus the set of new-release originals currently
// out.
//
// The store does no locking of its own; the Service is the mutual-exclusion
// boundary around it. Loans are never deleted, only closed.
type Store struct {
	books   map[string]*catalog.Book
	copies  map[string]*catalog.Copy
	readers map[string]*catalog.Reader
	loans   map[string]*catalog.Loan

	originalsOut map[string]struct{} // bookID whose original is on loan

	// Secondary indexes so returns resolve their open loan in constant time
	// and the one-open-loan invariant is structural rather than a scan.
	openByCopy    map[string]string      // copyID -> open loan ID
	openOriginals map[originalKey]string // (bookID, readerID) -> open loan ID

	loanSeq int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		books:         make(map[string]*catalog.Book),
		copies:        make(map[string]*catalog.Copy),
		readers:       make(map[string]*catalog.Reader),
		loans:         make(map[string]*catalog.Loan),
		originalsOut:  make(map[string]struct{}),
		openByCopy:    make(map[string]string),
		openOriginals: make(map[originalKey]string),
	}
}

// AddBook seeds a book record, replacing any previous record with the same
// id.
func (s *Store) AddBook(b catalog.Book) {
	s.books[b.ID] = &b
}

// AddCopy seeds a copy record. An unset status defaults to IN_LIBRARY.
func (s *Store) AddCopy(c catalog.Copy) {
	if c.Status == "" {
		c.Status = catalog.StatusInLibrary
	}
	s.copies[c.ID] = &c
}

// AddReader seeds a reader record.
func (s *Store) AddReader(r catalog.Reader) {
	s.readers[r.ID] = &r
}

// Book looks up a book by id.
func (s *Store) Book(id string) (*catalog.Book, bool) {
	b, ok := s.books[id]
	return b, ok
}

// Copy looks up a copy by id.
func (s *Store) Copy(id string) (*catalog.Copy, bool) {
	c, ok := s.copies[id]
	return c, ok
}

// Reader looks up a reader by id.
func (s *Store) Reader(id string) (*catalog.Reader, bool) {
	r, ok := s.readers[id]
	return r, ok
}

// Loan looks up a loan by id.
func (s *Store) Loan(id string) (*catalog.Loan, bool) {
	l, ok := s.loans[id]
	return l, ok
}

// Loans returns how many loans have ever been created.
func (s *Store) Loans() int {
	return len(s.loans)
}

// OriginalOut reports whether the new-release original of bookID is
// currently on loan.
func (s *Store) OriginalOut(bookID string) bool {
	_, out := s.originalsOut[bookID]
	return out
}

// OpenLoanForCopy returns the id of the copy's open loan, if any.
func (s *Store) OpenLoanForCopy(copyID string) (string, bool) {
	id, ok := s.openByCopy[copyID]
	return id, ok
}

// nextLoanID assigns the next sequential loan identifier. The counter is
// explicit rather than derived from len(loans) so ids stay unique even if
// deletion is ever introduced.
func (s *Store) nextLoanID() string {
	s.loanSeq++
	return fmt.Sprintf("L%d", s.loanSeq)
}
