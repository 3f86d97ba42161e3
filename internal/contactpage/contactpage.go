// Package contactpage describes the regions of the contact page that can be
// highlighted, and the text each one shows.
package contactpage

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/highlight"
)

// Region identifiers.
const (
	PageTitle        = "pageTitle"
	AddressTitle     = "addressTitle"
	AddressContent   = "addressContent"
	CallTitle        = "callTitle"
	CallContent      = "callContent"
	EmailTitle       = "emailTitle"
	EmailContent     = "emailContent"
	FaxTitle         = "faxTitle"
	FeedbackTitle    = "feedbackTitle"
	FeedbackSubtitle = "feedbackSubtitle"
)

// Loading is shown in content regions until contact data arrives.
const Loading = "Loading..."

var ErrUnknownRegion = errors.New("unknown region")

var regions = []string{
	PageTitle,
	AddressTitle, AddressContent,
	CallTitle, CallContent,
	EmailTitle, EmailContent,
	FaxTitle,
	FeedbackTitle, FeedbackSubtitle,
}

// DefaultOrder returns every region in reading order.
func DefaultOrder() []string {
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}

// Known reports whether the page renders a region with this id.
func Known(id string) bool {
	for _, r := range regions {
		if r == id {
			return true
		}
	}
	return false
}

// ValidateOrder checks that ids form a valid highlight order made only of
// regions the page renders.
func ValidateOrder(ids []string) error {
	for _, id := range ids {
		if Known(id) {
			continue
		}
		if s := suggest(id); s != "" {
			return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRegion, id, s)
		}
		return fmt.Errorf("%w %q", ErrUnknownRegion, id)
	}
	_, err := highlight.NewOrder(ids...)
	return err
}

// Order builds the highlight order for ids, falling back to DefaultOrder
// when ids is empty.
func Order(ids []string) (highlight.Order, error) {
	if len(ids) == 0 {
		ids = regions
	}
	if err := ValidateOrder(ids); err != nil {
		return highlight.Order{}, err
	}
	return highlight.NewOrder(ids...)
}

// suggest returns the closest region id within a small edit distance.
func suggest(id string) string {
	best, bestDist := "", 4
	for _, r := range regions {
		if d := levenshtein.ComputeDistance(id, r); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

// Texts maps every region to the text it displays. Content regions show
// Loading while loading is true.
func Texts(c repository.ContactSettings, loading bool) map[string]string {
	content := func(s string) string {
		if loading {
			return Loading
		}
		return s
	}
	return map[string]string{
		PageTitle:        "Contact Us",
		AddressTitle:     "Address",
		AddressContent:   content(c.EnAddress),
		CallTitle:        "Call Us",
		CallContent:      content(c.MobileNumber),
		EmailTitle:       "Email",
		EmailContent:     content(c.Email),
		FaxTitle:         "Fax",
		FeedbackTitle:    "We value your input",
		FeedbackSubtitle: "share your thoughts!",
	}
}
