package templates

import (
	"context"
	"html/template"

	"github.com/a-h/templ"

	"github.com/harbourspace/emails/pkg/assets"
)

// ConfirmationProps configures EventConfirmation. Zero fields take the
// defaults of DefaultConfirmationProps.
type ConfirmationProps struct {
	RecipientName string
	Event         Event
	CalendarLink  string
	StreamLink    string
	HeroImage     string // Logical asset id of the hero image
}

// DefaultConfirmationProps returns the props used for previews.
func DefaultConfirmationProps() ConfirmationProps {
	return ConfirmationProps{
		RecipientName: "Student",
		Event: Event{
			Title:       "Introduction to Data Science Workshop",
			Description: "Learn the fundamentals of data science including Python, statistics, and machine learning basics in this hands-on workshop.",
			Date:        "Friday, July 18",
			Time:        "6:30 PM - 8:30 PM CST",
			Timezone:    "CST",
			Location: Location{
				Venue:   "Barcelona Campus + Online",
				Address: "Open on Google maps",
			},
			Organizer: Organizer{
				Name:  "Dr. Sarah Chen",
				Email: "sarah.chen@harbour.space",
			},
			RegistrationID: "HS-WS-2024-001523",
		},
		CalendarLink: "#",
		StreamLink:   "#",
		HeroImage:    "images/event-test-asset",
	}
}

func (p ConfirmationProps) withDefaults() ConfirmationProps {
	def := DefaultConfirmationProps()
	if p.RecipientName == "" {
		p.RecipientName = def.RecipientName
	}
	if p.Event.Title == "" {
		p.Event = def.Event
	}
	if p.CalendarLink == "" {
		p.CalendarLink = def.CalendarLink
	}
	if p.StreamLink == "" {
		p.StreamLink = def.StreamLink
	}
	if p.HeroImage == "" {
		p.HeroImage = def.HeroImage
	}
	return p
}

// ConfirmationSubject returns the subject line for a confirmation email.
func ConfirmationSubject(e Event) string {
	return "Spot Reserved! " + e.Title
}

// EventConfirmation renders the "spot reserved" email sent after registration.
func (k *Kit) EventConfirmation(props ConfirmationProps) templ.Component {
	props = props.withDefaults()
	preview := ConfirmationSubject(props.Event)

	content := view("confirmation", func(ctx context.Context) (any, error) {
		description, err := k.Markdown(props.Event.Description)
		if err != nil {
			return nil, err
		}
		badge, hasBadge := props.Event.CalendarBadge()

		var stream, calendar template.HTML
		err = fill(ctx,
			slot{&stream, k.Button(ButtonProps{Href: props.StreamLink, Label: "Stream Link", Variant: ButtonPrimary})},
			slot{&calendar, k.Button(ButtonProps{Href: props.CalendarLink, Label: "Add to Calendar", Variant: ButtonOutline})},
		)
		if err != nil {
			return nil, err
		}

		return struct {
			Props       ConfirmationProps
			Hero        string
			MapIcon     string
			Description template.HTML
			Badge       Badge
			HasBadge    bool
			Stream      template.HTML
			Calendar    template.HTML
		}{
			Props:       props,
			Hero:        k.assets.Image(props.HeroImage, 600, 0),
			MapIcon:     k.assets.Icon(assets.IconMap, 20).Default,
			Description: description,
			Badge:       badge,
			HasBadge:    hasBadge,
			Stream:      stream,
			Calendar:    calendar,
		}, nil
	})

	return k.Layout(LayoutProps{
		Title:       "Event Confirmation - " + props.Event.Title,
		PreviewText: preview,
		HeaderType:  "Events",
	}, content)
}
