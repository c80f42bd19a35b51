package policygen

import (
	"strings"

	"github.com/ElSguidge/policygen/internal/section"
)

// CookiePolicyConfig holds the answers that drive a cookie policy.
type CookiePolicyConfig struct {
	CompanyName   string `yaml:"companyName" validate:"required"`
	WebsiteURL    string `yaml:"websiteUrl" validate:"required_without=Address"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address"`
	EffectiveDate string `yaml:"effectiveDate"`

	UsesEssential   bool `yaml:"usesEssential"`
	UsesPerformance bool `yaml:"usesPerformance"`
	UsesFunctional  bool `yaml:"usesFunctional"`
	UsesTargeting   bool `yaml:"usesTargeting"`
	UsesSocialMedia bool `yaml:"usesSocialMedia"`

	UsesGoogleAnalytics bool `yaml:"usesGoogleAnalytics"`
	UsesGoogleAds       bool `yaml:"usesGoogleAds"`
	UsesFacebookPixel   bool `yaml:"usesFacebookPixel"`
	UsesHotjar          bool `yaml:"usesHotjar"`
	UsesHubSpot         bool `yaml:"usesHubSpot"`
	UsesIntercom        bool `yaml:"usesIntercom"`
	UsesStripe          bool `yaml:"usesStripe"`

	HasConsentBanner      bool   `yaml:"hasConsentBanner"`
	ReviewsCookieDuration bool   `yaml:"reviewsCookieDuration"`
	PrivacyPolicyURL      string `yaml:"privacyPolicyUrl"`
}

// DefaultCookiePolicyConfig returns the wizard defaults.
func DefaultCookiePolicyConfig() CookiePolicyConfig {
	return CookiePolicyConfig{
		UsesEssential:    true,
		UsesPerformance:  true,
		HasConsentBanner: true,
	}
}

// Type implements Config.
func (c CookiePolicyConfig) Type() DocumentType { return TypeCookiePolicy }

// Validate implements Config.
func (c CookiePolicyConfig) Validate() error { return validateStruct(c) }

// GenerateCookiePolicy assembles a cookie policy.
func GenerateCookiePolicy(c CookiePolicyConfig) string {
	return Generate(c)
}

func (c CookiePolicyConfig) contact() contact {
	return contact{Name: c.CompanyName, Email: c.Email, Website: c.WebsiteURL, Address: c.Address}
}

// cookie is one row of a disclosure table.
type cookie struct {
	Provider string
	Name     string
	Purpose  string
	Duration string
}

var cookieTableHeader = []string{"Cookie", "Purpose", "Duration"}

// Category tables.
var (
	essentialCookies = []cookie{
		{Name: "session_id", Purpose: "Keeps you signed in as you move between pages", Duration: "Session"},
		{Name: "csrf_token", Purpose: "Protects forms against cross-site request forgery", Duration: "Session"},
		{Name: "cookie_consent", Purpose: "Remembers your cookie preferences", Duration: "1 year"},
	}
	performanceCookies = []cookie{
		{Name: "_ga", Purpose: "Distinguishes unique visitors", Duration: "2 years"},
		{Name: "_gid", Purpose: "Distinguishes visitors over a 24-hour period", Duration: "24 hours"},
		{Name: "_gat", Purpose: "Throttles the request rate", Duration: "1 minute"},
	}
	functionalCookies = []cookie{
		{Name: "lang", Purpose: "Remembers your language preference", Duration: "1 year"},
		{Name: "ui_prefs", Purpose: "Remembers display preferences such as theme and layout", Duration: "1 year"},
	}
	targetingCookies = []cookie{
		{Name: "_gcl_au", Purpose: "Measures advertising conversions", Duration: "90 days"},
		{Name: "_fbp", Purpose: "Delivers and measures advertisements", Duration: "90 days"},
		{Name: "IDE", Purpose: "Shows relevant ads across websites", Duration: "13 months"},
	}
	socialCookies = []cookie{
		{Name: "li_sugr", Purpose: "LinkedIn share button and browser identification", Duration: "90 days"},
		{Name: "personalization_id", Purpose: "X (Twitter) share and embed features", Duration: "2 years"},
	}
)

// thirdPartyCookies lists what each provider sets, in disclosure order.
var thirdPartyCookies = map[string][]cookie{
	"Google Analytics": {
		{Provider: "Google Analytics", Name: "_ga", Purpose: "Analytics", Duration: "2 years"},
		{Provider: "Google Analytics", Name: "_gid", Purpose: "Analytics", Duration: "24 hours"},
	},
	"Google Ads": {
		{Provider: "Google Ads", Name: "_gcl_au", Purpose: "Advertising conversion tracking", Duration: "90 days"},
	},
	"Facebook Pixel": {
		{Provider: "Facebook Pixel", Name: "_fbp", Purpose: "Advertising", Duration: "90 days"},
		{Provider: "Facebook Pixel", Name: "fr", Purpose: "Advertising", Duration: "90 days"},
	},
	"Hotjar": {
		{Provider: "Hotjar", Name: "_hjSessionUser_*", Purpose: "Behavior analytics", Duration: "1 year"},
		{Provider: "Hotjar", Name: "_hjSession_*", Purpose: "Behavior analytics", Duration: "30 minutes"},
	},
	"HubSpot": {
		{Provider: "HubSpot", Name: "__hstc", Purpose: "Marketing analytics", Duration: "6 months"},
		{Provider: "HubSpot", Name: "hubspotutk", Purpose: "Visitor identification for forms", Duration: "6 months"},
	},
	"Intercom": {
		{Provider: "Intercom", Name: "intercom-id-*", Purpose: "Customer support chat", Duration: "9 months"},
		{Provider: "Intercom", Name: "intercom-session-*", Purpose: "Customer support chat", Duration: "1 week"},
	},
	"Stripe": {
		{Provider: "Stripe", Name: "__stripe_mid", Purpose: "Fraud prevention", Duration: "1 year"},
		{Provider: "Stripe", Name: "__stripe_sid", Purpose: "Fraud prevention", Duration: "30 minutes"},
	},
}

// thirdPartyRows returns the disclosure rows of the active providers.
func (c CookiePolicyConfig) thirdPartyRows() [][]string {
	active := []struct {
		on   bool
		name string
	}{
		{c.UsesGoogleAnalytics, "Google Analytics"},
		{c.UsesGoogleAds, "Google Ads"},
		{c.UsesFacebookPixel, "Facebook Pixel"},
		{c.UsesHotjar, "Hotjar"},
		{c.UsesHubSpot, "HubSpot"},
		{c.UsesIntercom, "Intercom"},
		{c.UsesStripe, "Stripe"},
	}
	var rows [][]string
	for _, a := range active {
		if !a.on {
			continue
		}
		for _, ck := range thirdPartyCookies[a.name] {
			rows = append(rows, []string{ck.Provider, ck.Name, ck.Purpose, ck.Duration})
		}
	}
	return rows
}

func cookieRows(cookies []cookie) [][]string {
	rows := make([][]string, len(cookies))
	for i, ck := range cookies {
		rows[i] = []string{ck.Name, ck.Purpose, ck.Duration}
	}
	return rows
}

// categoryBody renders a category description followed by its table.
func categoryBody(text string, cookies []cookie) func(section.Numbering) string {
	return func(section.Numbering) string {
		return section.Join(text, section.Table(true, cookieTableHeader, cookieRows(cookies)))
	}
}

func (c CookiePolicyConfig) document() section.Document {
	who := c.contact()
	rows := c.thirdPartyRows()
	return section.Document{
		Header: documentHeader("Cookie Policy", "Last Updated", c.EffectiveDate),
		Nodes: []section.Node{
			{ID: "introduction", Title: "What Are Cookies", Include: true, Body: c.introduction},
			{ID: "usage", Title: "How We Use Cookies", Include: true, Body: c.usage, Children: []section.Node{
				{ID: "essential", Title: "Essential Cookies", Include: c.UsesEssential, Body: categoryBody(
					"These cookies are strictly necessary for the website to function and cannot be switched off. "+
						"They are usually set in response to actions you take, such as signing in or filling in forms.",
					essentialCookies)},
				{ID: "performance", Title: "Performance and Analytics Cookies", Include: c.UsesPerformance, Body: categoryBody(
					"These cookies let us count visits and traffic sources so we can measure and improve the "+
						"performance of our website. The information they collect is aggregated.",
					performanceCookies)},
				{ID: "functional", Title: "Functional Cookies", Include: c.UsesFunctional, Body: categoryBody(
					"These cookies enable enhanced functionality and personalization. If you do not allow them, some "+
						"features may not work properly.",
					functionalCookies)},
				{ID: "targeting", Title: "Targeting and Advertising Cookies", Include: c.UsesTargeting, Body: categoryBody(
					"These cookies may be set by our advertising partners to build a profile of your interests and "+
						"show you relevant advertisements on other websites.",
					targetingCookies)},
				{ID: "social", Title: "Social Media Cookies", Include: c.UsesSocialMedia, Body: categoryBody(
					"These cookies are set by social media services that we have added to the website so that you "+
						"can share our content. They can track your browser across other sites.",
					socialCookies)},
			}},
			{ID: "third-party", Title: "Third-Party Cookies", Include: len(rows) > 0, Body: func(section.Numbering) string {
				return section.Join(
					"Some cookies are placed by third-party services that appear on our pages. We do not control "+
						"these cookies; please check the provider's own policy for details.",
					section.Table(true, []string{"Provider", "Cookie", "Purpose", "Duration"}, rows),
				)
			}},
			{ID: "managing", Title: "Managing Your Cookie Preferences", Include: true, Body: c.managing},
			{ID: "changes", Title: "Changes to This Cookie Policy", Include: true, Body: c.changes},
			{ID: "contact", Title: "Contact Us", Include: true, Body: func(section.Numbering) string {
				return section.Join("If you have questions about our use of cookies, please contact us:", who.block())
			}},
		},
		Footer: documentFooter(),
	}
}

func (c CookiePolicyConfig) introduction(section.Numbering) string {
	who := c.contact()
	text := "This Cookie Policy explains how " + who.name() + " uses cookies and similar technologies on " +
		who.site() + ". Cookies are small text files stored on your device when you visit a website. They are " +
		"widely used to make websites work, or work more efficiently, and to provide reporting information."
	if u := strings.TrimSpace(c.PrivacyPolicyURL); u != "" {
		return section.Join(text, "For information about how we handle personal data, see our Privacy Policy at "+u+".")
	}
	return text
}

func (c CookiePolicyConfig) usage(n section.Numbering) string {
	var kinds []string
	for _, id := range []string{"essential", "performance", "functional", "targeting", "social"} {
		if n.Has(id) {
			kinds = append(kinds, n.Section(id))
		}
	}
	if len(kinds) == 0 {
		return "We do not currently set any first-party cookies."
	}
	return "We use the categories of cookies described in " + joinWords(kinds) + "."
}

func (c CookiePolicyConfig) managing(n section.Numbering) string {
	banner := "You can set or amend your web browser controls to accept or refuse cookies."
	if c.HasConsentBanner {
		banner = "When you first visit our website, a cookie banner asks for your consent to non-essential " +
			"cookies. You can change your choices at any time through the cookie settings link in the website footer."
	}
	return section.Join(
		banner,
		"Most browsers also let you block or delete cookies through their settings:",
		section.List(true, []string{
			"Chrome: Settings > Privacy and security > Cookies and other site data",
			"Firefox: Settings > Privacy & Security > Cookies and Site Data",
			"Safari: Settings > Privacy > Manage Website Data",
			"Edge: Settings > Cookies and site permissions",
		}),
		section.Paragraph(n.Has("essential"),
			"Blocking the cookies described in "+n.Section("essential")+" may stop parts of the website from working."),
	)
}

func (c CookiePolicyConfig) changes(section.Numbering) string {
	return section.Join(
		"We may update this Cookie Policy to reflect changes to the cookies we use or for other operational, legal, "+
			"or regulatory reasons. The \"Last Updated\" date at the top shows when it was last revised.",
		section.Paragraph(c.ReviewsCookieDuration,
			"We review the cookies in use and their durations at least once a year and remove any we no longer need."),
	)
}
