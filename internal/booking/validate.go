package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/example/table-booker/internal/dining"
)

const (
	// MaxGuests is the largest party bookable online; larger groups are asked
	// to contact the restaurant directly.
	MaxGuests = 12
	MinGuests = 1

	// MinLeadTime is how far in the future a booking must be scheduled,
	// strictly.
	MinLeadTime = time.Hour
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
)

// User-facing validation messages.
const (
	MsgMissingFields   = "Please fill in all required fields (name, email, phone, date, time)."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgInvalidPhone    = "Please enter a valid phone number (digits only)."
	MsgGuestsRange     = "Bookings are limited to a maximum of 12 people. Please contact us directly for larger groups."
	MsgNotFarEnough    = "Booking must be scheduled at least 1 hour in the future."
	MsgSubmitFailed    = "Booking failed. Please try again."
	MsgSubmitSucceeded = "Booking successful!"
)

// Result is the outcome of validating one draft. Failures lists every
// violated rule in rule order; only the first is shown to the user.
type Result struct {
	Draft    dining.BookingDraft
	Failures []string
}

func (r Result) Valid() bool { return len(r.Failures) == 0 }

// Reason returns the surfaced failure message, or "" when valid.
func (r Result) Reason() string {
	if len(r.Failures) == 0 {
		return ""
	}
	return r.Failures[0]
}

// Validate checks a draft against the booking rules, in fixed order:
// required fields, email shape, phone shape, guest count, minimum lead time.
// It is pure: identical inputs and now always give identical results.
func Validate(draft dining.BookingDraft, now time.Time) Result {
	res := Result{Draft: draft}

	if hasEmpty(draft.Name, draft.Email, draft.Phone, draft.Date, draft.Time) {
		res.Failures = append(res.Failures, MsgMissingFields)
	}
	if draft.Email != "" && !emailPattern.MatchString(draft.Email) {
		res.Failures = append(res.Failures, MsgInvalidEmail)
	}
	if draft.Phone != "" && !phonePattern.MatchString(draft.Phone) {
		res.Failures = append(res.Failures, MsgInvalidPhone)
	}
	if draft.Guests < MinGuests || draft.Guests > MaxGuests {
		res.Failures = append(res.Failures, MsgGuestsRange)
	}
	if draft.Date != "" && draft.Time != "" {
		at, err := time.ParseInLocation("2006-01-02 15:04", draft.Date+" "+draft.Time, now.Location())
		if err != nil || !at.After(now.Add(MinLeadTime)) {
			res.Failures = append(res.Failures, MsgNotFarEnough)
		}
	}
	return res
}

func hasEmpty(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
