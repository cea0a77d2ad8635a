package templates

import (
	"context"
	"html/template"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Urgency describes how soon a reminded event starts.
type Urgency string

const (
	UrgencyToday    Urgency = "Today"
	UrgencyTomorrow Urgency = "Tomorrow"
	UrgencySoon     Urgency = "Soon"
)

// UrgencyFor maps the hours left before an event to an urgency: up to 12
// hours is today, up to 24 is tomorrow, anything later is soon.
func UrgencyFor(hoursUntil int) Urgency {
	switch {
	case hoursUntil <= 12:
		return UrgencyToday
	case hoursUntil <= 24:
		return UrgencyTomorrow
	default:
		return UrgencySoon
	}
}

// ReminderProps configures EventReminder. HoursUntilEvent is used as given,
// so zero means the event is about to start; DefaultReminderProps uses 24.
type ReminderProps struct {
	RecipientName     string
	Event             Event
	JoinLink          string
	LastMinuteUpdates string
	HoursUntilEvent   int
}

// DefaultReminderProps returns the props used for previews.
func DefaultReminderProps() ReminderProps {
	return ReminderProps{
		RecipientName:   "Student",
		Event:           WorkshopEvent(),
		JoinLink:        "#",
		HoursUntilEvent: 24,
	}
}

func (p ReminderProps) withDefaults() ReminderProps {
	def := DefaultReminderProps()
	if p.RecipientName == "" {
		p.RecipientName = def.RecipientName
	}
	if p.Event.Title == "" {
		p.Event = def.Event
	}
	if p.JoinLink == "" {
		p.JoinLink = def.JoinLink
	}
	return p
}

// ReminderSubject returns the subject line for a reminder email.
func ReminderSubject(e Event, hoursUntil int) string {
	if UrgencyFor(hoursUntil) == UrgencyToday {
		return "Happening today! " + e.Title + " on " + e.Date
	}
	return "Reminder: " + e.Title + " on " + e.Date
}

// EventReminder renders the reminder sent ahead of an event.
func (k *Kit) EventReminder(props ReminderProps) templ.Component {
	props = props.withDefaults()
	urgency := UrgencyFor(props.HoursUntilEvent)
	isToday := urgency == UrgencyToday
	event := props.Event

	content := view("reminder", func(ctx context.Context) (any, error) {
		mainAction := ButtonProps{Variant: ButtonPrimary, Size: ButtonLarge}
		if event.Location.IsVirtual() {
			mainAction.Href = props.JoinLink
			mainAction.Label = "🚀 Join Virtual Event"
		} else {
			target := event.Location.Address
			if target == "" {
				target = event.Location.Venue
			}
			mainAction.Href = "https://maps.google.com/?q=" + url.QueryEscape(target)
			mainAction.Label = "📍 Get Directions"
		}

		var heading, card, action, prepare, ask, calendar template.HTML
		err := fill(ctx,
			slot{&heading, k.Heading(HeadingProps{Level: 1, Color: HeadingPurple, Text: "Don't Forget!"})},
			slot{&card, k.EventCard(EventCardProps{Event: event})},
			slot{&action, k.Button(mainAction)},
			slot{&prepare, k.Heading(HeadingProps{Level: 2, Text: prepareTitle(isToday)})},
			slot{&ask, k.Button(ButtonProps{
				Href:    "mailto:" + event.Organizer.Email + "?subject=" + url.PathEscape("Question about "+event.Title),
				Label:   "💬 Ask a Question",
				Variant: ButtonOutline,
			})},
			slot{&calendar, k.Button(ButtonProps{Href: "#", Label: "📅 Add to Calendar", Variant: ButtonOutline})},
		)
		if err != nil {
			return nil, err
		}

		return struct {
			Props        ReminderProps
			IsToday      bool
			Urgency      string
			UrgencyLabel string
			Heading      template.HTML
			Card         template.HTML
			Action       template.HTML
			Prepare      template.HTML
			Ask          template.HTML
			Calendar     template.HTML
			InPerson     bool
			Organizer    template.URL
		}{
			Props:        props,
			IsToday:      isToday,
			Urgency:      strings.ToLower(string(urgency)),
			UrgencyLabel: string(urgency),
			Heading:      heading,
			Card:         card,
			Action:       action,
			Prepare:      prepare,
			Ask:          ask,
			Calendar:     calendar,
			InPerson:     !event.Location.IsVirtual(),
			Organizer:    safeURL("mailto:" + event.Organizer.Email),
		}, nil
	})

	return k.Layout(LayoutProps{
		Title:       "Event Reminder - " + event.Title,
		PreviewText: ReminderSubject(event, props.HoursUntilEvent),
	}, content)
}

func prepareTitle(isToday bool) string {
	if isToday {
		return "Ready to Go?"
	}
	return "Prepare for the Event"
}
