package navigation

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mimamsa/internal/client/models"
	"github.com/dmitrijs2005/mimamsa/internal/common"
)

var (
	ErrPayloadMismatch = errors.New("payload does not match screen")

	// ErrForbidden matches common.ErrorForbidden.
	ErrForbidden = fmt.Errorf("%w: screen requires administrator rights", common.ErrorForbidden)
)

// Payload is the data a screen is opened with. The set of payload types is
// closed to this package.
type Payload interface {
	isPayload()
}

// BookPayload opens BookDetail, Reader or EditBook on a book.
type BookPayload struct {
	Book models.Book
}

func (BookPayload) isPayload() {}

// checkPayload verifies that p is what screen s expects.
func checkPayload(s Screen, p Payload) error {
	if NeedsBook(s) {
		if _, ok := p.(BookPayload); !ok {
			return fmt.Errorf("%w: %s needs a book", ErrPayloadMismatch, s)
		}
		return nil
	}
	if p != nil {
		return fmt.Errorf("%w: %s takes no payload", ErrPayloadMismatch, s)
	}
	return nil
}
