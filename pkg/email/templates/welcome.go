package templates

import (
	"github.com/a-h/templ"

	"github.com/harbourspace/emails/pkg/assets"
)

// WelcomeProps configures Welcome. Empty fields take defaults.
type WelcomeProps struct {
	UserFirstname string
	ProgramName   string
	StartDate     string
	PortalURL     string
}

// DefaultWelcomeProps returns the props used for previews.
func DefaultWelcomeProps() WelcomeProps {
	return WelcomeProps{
		UserFirstname: "Alex",
		ProgramName:   "Master in Data Science",
		StartDate:     "September 2024",
		PortalURL:     "https://harbour.space/student-portal",
	}
}

func (p WelcomeProps) withDefaults() WelcomeProps {
	def := DefaultWelcomeProps()
	if p.UserFirstname == "" {
		p.UserFirstname = def.UserFirstname
	}
	if p.ProgramName == "" {
		p.ProgramName = def.ProgramName
	}
	if p.StartDate == "" {
		p.StartDate = def.StartDate
	}
	if p.PortalURL == "" {
		p.PortalURL = def.PortalURL
	}
	return p
}

// WelcomeSubject is the subject line of the welcome email.
const WelcomeSubject = "Welcome to Harbour.Space University - Your Journey Begins!"

// Welcome renders the standalone welcome email for newly admitted students.
// It uses its own compact layout without the branded footer.
func (k *Kit) Welcome(props WelcomeProps) templ.Component {
	props = props.withDefaults()
	return view("welcome", static(struct {
		Props   WelcomeProps
		Logo    string
		Preview string
		Portal  string
	}{
		Props:   props,
		Logo:    k.assets.Logo(assets.LogoMain).Default,
		Preview: WelcomeSubject,
		Portal:  props.PortalURL,
	}))
}
