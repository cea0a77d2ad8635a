package preview

import (
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/harbourspace/emails/pkg/email/templates"
)

// Params customise a catalog email. Zero values keep the template defaults.
type Params struct {
	RecipientName string
	// Event selects a sample event: workshop, webinar or conference.
	Event string
	// HoursUntil is used by the reminder; zero keeps its default of 24.
	HoursUntil int
}

// Entry describes one email that can be previewed and sent.
type Entry struct {
	Name    string
	Title   string
	Tag     string
	Subject func(Params) string
	Build   func(*templates.Kit, Params) templ.Component
}

var catalog = []Entry{
	{
		Name:  "confirmation",
		Title: "Event confirmation",
		Tag:   "event-confirmation",
		Subject: func(p Params) string {
			return templates.ConfirmationSubject(confirmationProps(p).Event)
		},
		Build: func(k *templates.Kit, p Params) templ.Component {
			return k.EventConfirmation(confirmationProps(p))
		},
	},
	{
		Name:  "reminder",
		Title: "Event reminder",
		Tag:   "event-reminder",
		Subject: func(p Params) string {
			props := reminderProps(p)
			return templates.ReminderSubject(props.Event, props.HoursUntilEvent)
		},
		Build: func(k *templates.Kit, p Params) templ.Component {
			return k.EventReminder(reminderProps(p))
		},
	},
	{
		Name:    "welcome",
		Title:   "Welcome to Harbour.Space",
		Tag:     "welcome",
		Subject: func(Params) string { return templates.WelcomeSubject },
		Build: func(k *templates.Kit, p Params) templ.Component {
			return k.Welcome(templates.WelcomeProps{UserFirstname: p.RecipientName})
		},
	},
}

// Catalog returns every email in display order.
func Catalog() []Entry {
	return slices.Clone(catalog)
}

// Names returns the catalog names in display order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, e := range catalog {
		names = append(names, e.Name)
	}
	return names
}

// Find returns the entry with the given name.
func Find(name string) (Entry, bool) {
	i := slices.IndexFunc(catalog, func(e Entry) bool { return e.Name == strings.ToLower(name) })
	if i < 0 {
		return Entry{}, false
	}
	return catalog[i], true
}

// sampleEvent returns the named sample, or false for an empty or unknown name.
func sampleEvent(name string) (templates.Event, bool) {
	switch strings.ToLower(name) {
	case "workshop":
		return templates.WorkshopEvent(), true
	case "webinar":
		return templates.WebinarEvent(), true
	case "conference":
		return templates.ConferenceEvent(), true
	default:
		return templates.Event{}, false
	}
}

func confirmationProps(p Params) templates.ConfirmationProps {
	props := templates.DefaultConfirmationProps()
	if p.RecipientName != "" {
		props.RecipientName = p.RecipientName
	}
	if e, ok := sampleEvent(p.Event); ok {
		props.Event = e
	}
	return props
}

func reminderProps(p Params) templates.ReminderProps {
	props := templates.DefaultReminderProps()
	if p.RecipientName != "" {
		props.RecipientName = p.RecipientName
	}
	if e, ok := sampleEvent(p.Event); ok {
		props.Event = e
		if e.Location.Virtual != nil {
			props.JoinLink = e.Location.Virtual.Link
		}
	}
	if p.HoursUntil > 0 {
		props.HoursUntilEvent = p.HoursUntil
	}
	return props
}
