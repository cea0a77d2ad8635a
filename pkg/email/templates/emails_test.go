package templates_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harbourspace/emails/pkg/email/templates"
)

func TestEventConfirmation(t *testing.T) {
	t.Parallel()

	t.Run("defaults in development", func(t *testing.T) {
		t.Parallel()

		out := render(t, devKit().EventConfirmation(templates.ConfirmationProps{}))

		assert.Contains(t, out, "<title>Event Confirmation - Introduction to Data Science Workshop</title>")
		assert.Contains(t, out, "Spot Reserved!")
		assert.Contains(t, out, `src="/static/event-test-asset.png"`)
		assert.Contains(t, out, `src="/static/mdi_map.png"`)
		assert.Contains(t, out, ">JUL</p>")
		assert.Contains(t, out, ">18</p>")
		assert.Contains(t, out, "Barcelona Campus + Online")
		assert.Contains(t, out, ">Stream Link</a>")
		assert.Contains(t, out, ">Add to Calendar</a>")
		assert.Contains(t, out, ">Events</p>")
	})

	t.Run("production hero image", func(t *testing.T) {
		t.Parallel()

		out := render(t, prodKit().EventConfirmation(templates.ConfirmationProps{}))
		assert.Contains(t, out, "harbour-space-emails/images/event-test-asset")
		assert.Contains(t, out, "w_600")
		assert.Contains(t, out, "harbour-space-emails/icons/map-fallback")
	})

	t.Run("markdown description", func(t *testing.T) {
		t.Parallel()

		e := templates.WorkshopEvent()
		e.Description = "Bring **your laptop**.\n\n<script>alert(1)</script>"
		out := render(t, devKit().EventConfirmation(templates.ConfirmationProps{
			RecipientName: "Maria",
			Event:         e,
			StreamLink:    "https://youtube.com/live/abc",
		}))

		assert.Contains(t, out, "<strong>your laptop</strong>")
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "Hi Maria")
		assert.Contains(t, out, `href="https://youtube.com/live/abc"`)
		assert.Contains(t, out, ">MAR</p>")
	})

	t.Run("no badge for unparseable date", func(t *testing.T) {
		t.Parallel()

		e := templates.WorkshopEvent()
		e.Date = "To be announced"
		out := render(t, devKit().EventConfirmation(templates.ConfirmationProps{Event: e}))
		assert.Contains(t, out, "To be announced")
		assert.NotContains(t, out, "letter-spacing:0.05em;margin:0;padding-top:8px")
	})
}

func TestEventReminder(t *testing.T) {
	t.Parallel()

	t.Run("in person tomorrow", func(t *testing.T) {
		t.Parallel()

		out := render(t, devKit().EventReminder(templates.DefaultReminderProps()))

		assert.Contains(t, out, "⏰ Tomorrow")
		assert.Contains(t, out, "coming up tomorrow")
		assert.Contains(t, out, "https://maps.google.com/?q=Carrer")
		assert.Contains(t, out, "Get Directions")
		assert.Contains(t, out, "Weather Check")
		assert.Contains(t, out, "Prepare for the Event")
		assert.Contains(t, out, "mailto:sarah.chen@harbour.space?subject=Question%20about")
		assert.NotContains(t, out, "Happening Today!")
		assert.NotContains(t, out, "Important Update")
	})

	t.Run("virtual today with update", func(t *testing.T) {
		t.Parallel()

		out := render(t, devKit().EventReminder(templates.ReminderProps{
			RecipientName:     "Jordan",
			Event:             templates.WebinarEvent(),
			JoinLink:          "https://zoom.us/j/123456789",
			LastMinuteUpdates: "Room changed to B2",
			HoursUntilEvent:   3,
		}))

		assert.Contains(t, out, "Happening Today!")
		assert.Contains(t, out, "coming up today")
		assert.Contains(t, out, `href="https://zoom.us/j/123456789"`)
		assert.Contains(t, out, "Join Virtual Event")
		assert.Contains(t, out, "Ready to Go?")
		assert.Contains(t, out, "Room changed to B2")
		assert.Contains(t, out, "Virtual Event (Zoom)")
		assert.NotContains(t, out, "Weather Check")
		assert.NotContains(t, out, "maps.google.com")
	})

	t.Run("later this week", func(t *testing.T) {
		t.Parallel()

		props := templates.DefaultReminderProps()
		props.HoursUntilEvent = 72
		out := render(t, devKit().EventReminder(props))
		assert.Contains(t, out, "⏰ Soon")
		assert.Contains(t, out, "Looking forward to seeing you soon!")
	})
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		out := render(t, devKit().Welcome(templates.WelcomeProps{}))
		assert.Contains(t, out, "Dear Alex,")
		assert.Contains(t, out, "Master in Data Science program starting in September 2024")
		assert.Contains(t, out, `href="https://harbour.space/student-portal"`)
		assert.Contains(t, out, `src="/static/harbour-space-logo.png"`)
		assert.Contains(t, out, "admissions@harbour.space")
	})

	t.Run("custom props", func(t *testing.T) {
		t.Parallel()

		out := render(t, prodKit().Welcome(templates.WelcomeProps{
			UserFirstname: "Sam",
			ProgramName:   "Bachelor in Computer Science",
			StartDate:     "January 2026",
		}))
		assert.Contains(t, out, "Dear Sam,")
		assert.Contains(t, out, "Bachelor in Computer Science program starting in January 2026")
		assert.Contains(t, out, "harbour-space-emails/logos/harbour-space-logo-fallback")
	})

	t.Run("plain text alternative", func(t *testing.T) {
		t.Parallel()

		text := templates.PlainText(render(t, devKit().Welcome(templates.WelcomeProps{})))
		assert.Contains(t, text, "Access Student Portal (https://harbour.space/student-portal)")
		assert.Contains(t, text, "• Complete your visa application (if applicable)")
		assert.NotContains(t, text, "<")
		assert.False(t, strings.HasPrefix(text, templates.WelcomeSubject))
	})
}
