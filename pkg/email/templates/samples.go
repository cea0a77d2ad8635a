package templates

// Sample events used by previews, the send command and tests.

// WorkshopEvent returns an in-person workshop.
func WorkshopEvent() Event {
	return Event{
		Title:       "Introduction to Data Science Workshop",
		Description: "Learn the fundamentals of data science including Python, statistics, and machine learning basics in this hands-on workshop designed for beginners.",
		Date:        "March 15, 2024",
		Time:        "2:00 PM",
		Timezone:    "CET",
		Location: Location{
			Venue:   "Harbour.Space Campus Barcelona",
			Address: "Carrer de Sancho de Ávila, 173, 08018 Barcelona, Spain",
		},
		Organizer: Organizer{
			Name:  "Dr. Sarah Chen",
			Email: "sarah.chen@harbour.space",
		},
		RegistrationID: "HS-WS-2024-001523",
	}
}

// WebinarEvent returns a virtual panel hosted on Zoom.
func WebinarEvent() Event {
	return Event{
		Title:       "Future of AI in Education - Virtual Panel",
		Description: "Join industry leaders and academics as they discuss how artificial intelligence is transforming the educational landscape and what it means for students and educators.",
		Date:        "March 22, 2024",
		Time:        "6:00 PM",
		Timezone:    "CET",
		Location: Location{
			Virtual: &VirtualLocation{
				Platform: "Zoom",
				Link:     "https://zoom.us/j/123456789",
			},
		},
		Organizer: Organizer{
			Name:  "Prof. Michael Rodriguez",
			Email: "michael.rodriguez@harbour.space",
		},
		RegistrationID: "HS-WB-2024-000891",
	}
}

// ConferenceEvent returns a multi-day conference.
func ConferenceEvent() Event {
	return Event{
		Title:       "Barcelona Tech Conference 2024",
		Description: "Three days of cutting-edge technology talks, networking, and innovation showcases. Connect with industry leaders, startups, and fellow tech enthusiasts.",
		Date:        "April 10-12, 2024",
		Time:        "9:00 AM",
		Timezone:    "CET",
		Location: Location{
			Venue:   "Palau de la Música Catalana",
			Address: "C/ Palau de la Música, 4-6, 08003 Barcelona, Spain",
		},
		Organizer: Organizer{
			Name:  "Barcelona Tech Team",
			Email: "events@barcelonatech.org",
		},
		RegistrationID: "BTC-2024-VIP-0156",
	}
}
