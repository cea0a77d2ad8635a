package templates

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Event describes an event shown in event emails.
type Event struct {
	Title string
	// Description is Markdown.
	Description    string
	Date           string
	Time           string
	Timezone       string
	Start          time.Time // Optional; drives the calendar badge
	Location       Location
	Organizer      Organizer
	RegistrationID string
}

// Location is either a physical venue or a virtual event.
type Location struct {
	Venue   string
	Address string
	Virtual *VirtualLocation
}

// VirtualLocation describes an online event.
type VirtualLocation struct {
	Platform string
	Link     string
}

// Organizer is the person or team running the event.
type Organizer struct {
	Name  string
	Email string
}

// IsVirtual reports whether the event happens online only.
func (l Location) IsVirtual() bool {
	return l.Venue == "" && l.Virtual != nil
}

// Summary returns the one-line description used by event cards.
func (l Location) Summary() string {
	switch {
	case l.Venue != "":
		return l.Venue
	case l.Virtual != nil:
		return "Virtual Event (" + l.Virtual.Platform + ")"
	default:
		return "Location TBD"
	}
}

// Badge is the month and day shown in the calendar badge.
type Badge struct {
	Month string
	Day   string
}

var badgeLayouts = []string{
	"Monday, January 2",
	"Monday, January 2, 2006",
	"January 2, 2006",
	"January 2",
	"2006-01-02",
}

// CalendarBadge derives the badge from Start, falling back to parsing Date.
// It reports false when no date can be determined.
func (e Event) CalendarBadge() (Badge, bool) {
	t := e.Start
	if t.IsZero() {
		date := strings.TrimSpace(e.Date)
		// "April 10-12, 2024" style ranges use their first day
		if i := strings.IndexByte(date, '-'); i > 0 && !strings.HasPrefix(date, "20") {
			if j := strings.IndexByte(date[i:], ','); j > 0 {
				date = date[:i] + date[i+j:]
			} else {
				date = date[:i]
			}
		}
		for _, layout := range badgeLayouts {
			if parsed, err := time.Parse(layout, date); err == nil {
				t = parsed
				break
			}
		}
	}
	if t.IsZero() {
		return Badge{}, false
	}
	return Badge{
		Month: cases.Upper(language.English).String(t.Format("Jan")),
		Day:   strconv.Itoa(t.Day()),
	}, true
}
