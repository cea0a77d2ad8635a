package templates

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/a-h/templ"

	"github.com/harbourspace/emails/pkg/assets"
)

// LayoutProps configures the outer email layout.
type LayoutProps struct {
	Title              string
	PreviewText        string
	HeaderType         string // Label shown opposite the logo, e.g. "Events"
	HideHeader         bool
	HideFooter         bool
	IncludeUnsubscribe bool
}

type layoutData struct {
	LayoutProps
	Header  template.HTML
	Content template.HTML
	Footer  template.HTML
}

// Layout wraps children in the branded email shell: header with logo,
// white content area and purple footer.
func (k *Kit) Layout(props LayoutProps, children ...templ.Component) templ.Component {
	if props.Title == "" {
		props.Title = "Harbour.Space Email"
	}
	if props.PreviewText == "" {
		props.PreviewText = "Harbour.Space University"
	}

	return view("layout", func(ctx context.Context) (any, error) {
		data := layoutData{LayoutProps: props}
		var err error
		if !props.HideHeader {
			if data.Header, err = renderHTML(ctx, k.Header(props.HeaderType)); err != nil {
				return nil, err
			}
		}
		if data.Content, err = renderAll(ctx, children); err != nil {
			return nil, err
		}
		if !props.HideFooter {
			if data.Footer, err = renderHTML(ctx, k.Footer(props.IncludeUnsubscribe)); err != nil {
				return nil, err
			}
		}
		return data, nil
	})
}

// Header renders the main logo with an optional label on the right.
func (k *Kit) Header(headerType string) templ.Component {
	return view("header", static(struct {
		Logo       string
		HeaderType string
	}{
		// Raster Default: several mail clients do not render SVG images.
		Logo:       k.assets.Logo(assets.LogoMain).Default,
		HeaderType: headerType,
	}))
}

type socialLink struct {
	Href string
	Alt  string
	Icon string
}

var socialProfiles = []struct {
	name assets.IconName
	alt  string
	href string
}{
	{assets.IconInstagram, "Instagram", "https://instagram.com/harbour.space"},
	{assets.IconLinkedIn, "LinkedIn", "https://linkedin.com/school/harbour-space-university"},
	{assets.IconYouTube, "YouTube", "https://www.youtube.com/@HarbourSpaceUniversity"},
	{assets.IconTikTok, "TikTok", "https://www.tiktok.com/@harbour.space"},
	{assets.IconFacebook, "Facebook", "https://facebook.com/harbour.space"},
}

// Footer renders navigation links, the white logo, social icons, the
// campus address and legal links.
func (k *Kit) Footer(includeUnsubscribe bool) templ.Component {
	social := make([]socialLink, 0, len(socialProfiles))
	for _, p := range socialProfiles {
		social = append(social, socialLink{
			Href: p.href,
			Alt:  p.alt,
			Icon: k.assets.Icon(p.name, 24).Default, // raster, as in Header
		})
	}

	return view("footer", func(context.Context) (any, error) {
		return struct {
			Logo               string
			Social             []socialLink
			IncludeUnsubscribe bool
			Year               int
		}{
			Logo:               k.assets.Logo(assets.LogoWhite).Default, // raster, as in Header
			Social:             social,
			IncludeUnsubscribe: includeUnsubscribe,
			Year:               k.now().Year(),
		}, nil
	})
}

// ButtonVariant selects the button colour scheme.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
)

// ButtonSize selects the button padding and font size.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// ButtonProps configures Button.
type ButtonProps struct {
	Href    string
	Label   string
	Variant ButtonVariant
	Size    ButtonSize
}

var buttonSizes = map[ButtonSize]string{
	ButtonSmall:  "padding:8px 16px;font-size:14px;",
	ButtonMedium: "padding:10px 20px;font-size:16px;",
	ButtonLarge:  "padding:12px 24px;font-size:16px;",
}

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   fmt.Sprintf("background-color:%s;color:%s;box-shadow:0 1px 2px 0 rgba(0,0,0,0.05);", Purple[700], White),
	ButtonSecondary: fmt.Sprintf("background-color:%s;color:%s;box-shadow:0 1px 2px 0 rgba(0,0,0,0.05);", Gray[100], Gray[900]),
	ButtonOutline:   fmt.Sprintf("background-color:%s;color:%s;border:1px solid %s;", White, Purple[700], Purple[700]),
}

// Button renders a call-to-action link styled as a button.
func (k *Kit) Button(props ButtonProps) templ.Component {
	size, ok := buttonSizes[props.Size]
	if !ok {
		size = buttonSizes[ButtonMedium]
	}
	variant, ok := buttonVariants[props.Variant]
	if !ok {
		variant = buttonVariants[ButtonPrimary]
	}
	if props.Href == "" {
		props.Href = "#"
	}

	return view("button", static(struct {
		Href  template.URL
		Label string
		Style template.CSS
	}{
		Href:  safeURL(props.Href),
		Label: props.Label,
		Style: template.CSS("display:inline-block;text-align:center;text-decoration:none;font-weight:500;border-radius:6px;" + size + variant),
	}))
}

// HeadingColor selects the heading text colour.
type HeadingColor string

const (
	HeadingDefault HeadingColor = "default"
	HeadingPurple  HeadingColor = "purple"
	HeadingNeutral HeadingColor = "neutral"
)

// HeadingProps configures Heading. Level ranges from 1 to 4.
type HeadingProps struct {
	Level int
	Color HeadingColor
	Text  string
}

var headingLevels = map[int]string{
	1: "font-size:32px;font-weight:600;margin:0 0 16px 0;",
	2: "font-size:20px;font-weight:600;margin:0 0 12px 0;",
	3: "font-size:18px;font-weight:500;margin:0 0 12px 0;",
	4: "font-size:16px;font-weight:500;margin:0 0 8px 0;",
}

var headingColors = map[HeadingColor]string{
	HeadingDefault: Neutral[900],
	HeadingPurple:  Purple[600],
	HeadingNeutral: Neutral[700],
}

// Heading renders an h1 to h4 heading.
func (k *Kit) Heading(props HeadingProps) templ.Component {
	level := props.Level
	if _, ok := headingLevels[level]; !ok {
		level = 1
	}
	color, ok := headingColors[props.Color]
	if !ok {
		color = headingColors[HeadingDefault]
	}

	return view("heading", static(struct {
		Level int
		Text  string
		Style template.CSS
	}{
		Level: level,
		Text:  props.Text,
		Style: template.CSS(headingLevels[level] + "color:" + color + ";"),
	}))
}

// EventCardProps configures EventCard.
type EventCardProps struct {
	Event              Event
	ShowRegistrationID bool
}

// EventCard renders date and time, location and speaker of an event.
func (k *Kit) EventCard(props EventCardProps) templ.Component {
	return view("event_card", static(struct {
		Event              Event
		Location           string
		Address            string
		ShowRegistrationID bool
	}{
		Event:              props.Event,
		Location:           props.Event.Location.Summary(),
		Address:            addressLine(props.Event.Location),
		ShowRegistrationID: props.ShowRegistrationID && props.Event.RegistrationID != "",
	}))
}

func addressLine(l Location) string {
	if l.Venue == "" {
		return ""
	}
	return l.Address
}

// ContactCardProps configures ContactCard. Empty fields take defaults.
type ContactCardProps struct {
	Title       string
	Description string
	Email       string
	Phone       string
}

// DefaultContactCard returns the events team contact details.
func DefaultContactCard() ContactCardProps {
	return ContactCardProps{
		Title:       "Questions about your event?",
		Description: "If you have any questions or need assistance, we're here to help!",
		Email:       "events@harbour.space",
		Phone:       "+34 932 20 17 15",
	}
}

// ContactCard renders a centered block with email and phone links.
func (k *Kit) ContactCard(props ContactCardProps) templ.Component {
	def := DefaultContactCard()
	if props.Title == "" {
		props.Title = def.Title
	}
	if props.Description == "" {
		props.Description = def.Description
	}
	if props.Email == "" {
		props.Email = def.Email
	}
	if props.Phone == "" {
		props.Phone = def.Phone
	}

	return view("contact_card", static(struct {
		ContactCardProps
		MailTo template.URL
		Tel    template.URL
	}{
		ContactCardProps: props,
		MailTo:           safeURL("mailto:" + props.Email),
		Tel:              template.URL("tel:" + strings.Join(strings.Fields(props.Phone), "")),
	}))
}

// Text renders a paragraph of plain text with the body style.
func (k *Kit) Text(s string) templ.Component {
	return view("text", static(s))
}

// HTML wraps trusted markup as a component.
func HTML(markup template.HTML) templ.Component {
	return view("raw", static(markup))
}

func renderAll(ctx context.Context, children []templ.Component) (template.HTML, error) {
	var sb strings.Builder
	for _, c := range children {
		h, err := renderHTML(ctx, c)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(h))
	}
	return template.HTML(sb.String()), nil
}

// safeURL passes through http(s), mailto, tel and fragment links and
// replaces anything else with "#".
func safeURL(u string) template.URL {
	lower := strings.ToLower(strings.TrimSpace(u))
	for _, prefix := range []string{"https://", "http://", "mailto:", "tel:", "#", "/"} {
		if strings.HasPrefix(lower, prefix) {
			return template.URL(u)
		}
	}
	return "#"
}
