package policygen

import (
	"strings"

	"github.com/ElSguidge/policygen/internal/section"
)

// LicenseType selects the license grant.
type LicenseType string

// License types.
const (
	LicensePerpetual    LicenseType = "perpetual"
	LicenseSubscription LicenseType = "subscription"
	LicenseFreemium     LicenseType = "freemium"
	LicenseFree         LicenseType = "free"
	LicenseTrial        LicenseType = "trial"
)

// defaultTrialDays applies when a trial license has no length.
const defaultTrialDays = 30

// EULAConfig holds the answers that drive an end user license agreement.
type EULAConfig struct {
	CompanyName   string `yaml:"companyName" validate:"required"`
	WebsiteURL    string `yaml:"websiteUrl" validate:"required_without=Address"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address"`
	EffectiveDate string `yaml:"effectiveDate"`

	SoftwareName  string      `yaml:"softwareName"`
	LicenseType   LicenseType `yaml:"licenseType"`
	TrialDays     int         `yaml:"trialDays" validate:"gte=0"`
	MaxDevices    int         `yaml:"maxDevices" validate:"gte=0"`
	CommercialUse bool        `yaml:"commercialUse"`

	ProhibitReverseEngineering bool `yaml:"prohibitReverseEngineering"`
	ProhibitModification       bool `yaml:"prohibitModification"`
	ProhibitRedistribution     bool `yaml:"prohibitRedistribution"`
	ProhibitSublicensing       bool `yaml:"prohibitSublicensing"`
	ProhibitCompetitiveUse     bool `yaml:"prohibitCompetitiveUse"`
	ProhibitExport             bool `yaml:"prohibitExport"`

	ProvidesUpdates      bool   `yaml:"providesUpdates"`
	CollectsData         bool   `yaml:"collectsData"`
	ThirdPartyComponents bool   `yaml:"thirdPartyComponents"`
	ExportCompliance     bool   `yaml:"exportCompliance"`
	PrivacyPolicyURL     string `yaml:"privacyPolicyUrl"`
	GoverningLaw         string `yaml:"governingLaw"`
}

// DefaultEULAConfig returns the wizard defaults.
func DefaultEULAConfig() EULAConfig {
	return EULAConfig{
		LicenseType:                LicensePerpetual,
		TrialDays:                  defaultTrialDays,
		ProhibitReverseEngineering: true,
		ProhibitModification:       true,
		ProhibitRedistribution:     true,
		ProhibitSublicensing:       true,
		ProvidesUpdates:            true,
	}
}

// Type implements Config.
func (c EULAConfig) Type() DocumentType { return TypeEULA }

// Validate implements Config.
func (c EULAConfig) Validate() error { return validateStruct(c) }

// GenerateEULA assembles an end user license agreement.
func GenerateEULA(c EULAConfig) string {
	return Generate(c)
}

func (c EULAConfig) contact() contact {
	return contact{Name: c.CompanyName, Email: c.Email, Website: c.WebsiteURL, Address: c.Address}
}

// software returns the product name, or "the Software".
func (c EULAConfig) software() string {
	return section.Fallback(c.SoftwareName, "the Software")
}

// restrictionTail is appended to every restriction list.
var restrictionTail = []string{
	"Remove, alter, or obscure any proprietary notices or labels on the Software",
	"Circumvent any license keys, usage limits, or other technical protection measures",
	"Use the Software in any way that violates applicable laws or regulations",
}

// restrictions returns the flagged restrictions in fixed order, then the tail.
func (c EULAConfig) restrictions() []string {
	canned := []struct {
		on   bool
		text string
	}{
		{c.ProhibitReverseEngineering, "Reverse engineer, decompile, or disassemble the Software, except where applicable law expressly permits it"},
		{c.ProhibitModification, "Modify, adapt, translate, or create derivative works based on the Software"},
		{c.ProhibitRedistribution, "Distribute, rent, lease, lend, or otherwise make the Software available to third parties"},
		{c.ProhibitSublicensing, "Sublicense, assign, or transfer any of your rights under this Agreement"},
		{c.ProhibitCompetitiveUse, "Use the Software to build a competing product or service, or to copy its features"},
		{c.ProhibitExport, "Export or re-export the Software in violation of applicable export control laws"},
	}
	var out []string
	for _, r := range canned {
		if r.on {
			out = append(out, r.text)
		}
	}
	return append(out, restrictionTail...)
}

func (c EULAConfig) document() section.Document {
	who := c.contact()
	return section.Document{
		Header: documentHeader("End User License Agreement", "Effective Date", c.EffectiveDate,
			section.Bold("Please read this agreement carefully before installing or using "+c.software()+".")),
		Nodes: []section.Node{
			{ID: "agreement", Title: "Agreement", Include: true, Body: c.agreement},
			{ID: "grant", Title: "License Grant", Include: true, Body: c.grant},
			{ID: "fees", Title: "License Fees", Include: c.LicenseType != LicenseFree, Body: c.fees},
			{ID: "restrictions", Title: "Restrictions", Include: true, Body: func(section.Numbering) string {
				return section.Join("You agree that you will not, and will not permit others to:", section.List(true, c.restrictions()))
			}},
			{ID: "ownership", Title: "Intellectual Property", Include: true, Body: c.ownership},
			{ID: "updates", Title: "Updates and Support", Include: c.ProvidesUpdates, Body: c.updates},
			{ID: "data", Title: "Data Collection", Include: c.CollectsData, Body: c.data},
			{ID: "third-party", Title: "Third-Party Components", Include: c.ThirdPartyComponents, Body: c.thirdParty},
			{ID: "export", Title: "Export Compliance", Include: c.ExportCompliance, Body: c.export},
			{ID: "termination", Title: "Termination", Include: true, Body: c.termination},
			{ID: "warranty", Title: "Disclaimer of Warranties", Include: true, Body: c.warranty},
			{ID: "liability", Title: "Limitation of Liability", Include: true, Body: c.liability},
			{ID: "governing-law", Title: "Governing Law", Include: true, Body: func(section.Numbering) string {
				return "This Agreement is governed by the laws of " + section.Fallback(c.GoverningLaw, section.Placeholder) +
					", without regard to its conflict of law provisions."
			}},
			{ID: "contact", Title: "Contact Information", Include: true, Body: func(section.Numbering) string {
				return section.Join("If you have questions about this Agreement, please contact:", who.block())
			}},
		},
		Footer: documentFooter(),
	}
}

func (c EULAConfig) agreement(n section.Numbering) string {
	who := c.contact()
	return section.Join(
		"This End User License Agreement (\"Agreement\") is a legal agreement between you and "+who.name()+
			" for "+c.software()+", including any associated media, documentation, and online materials.",
		"By installing, copying, or otherwise using "+c.software()+", you agree to be bound by this Agreement. If you "+
			"do not agree, do not install or use it. The limits on how you may use it are set out in "+n.Ref("restrictions")+".",
	)
}

func (c EULAConfig) grant(section.Numbering) string {
	who := c.contact()
	scope := "personal, non-commercial"
	if c.CommercialUse {
		scope = "personal or internal business"
	}
	var grant string
	switch c.LicenseType {
	case LicenseSubscription:
		grant = who.name() + " grants you a revocable, non-exclusive, non-transferable license to use " + c.software() +
			" for " + scope + " purposes for the duration of your active subscription."
	case LicenseFreemium:
		grant = who.name() + " grants you a revocable, non-exclusive, non-transferable license to use the basic " +
			"features of " + c.software() + " for " + scope + " purposes at no charge. Premium features are " +
			"licensed separately on payment of the applicable fees."
	case LicenseFree:
		grant = who.name() + " grants you a revocable, non-exclusive, non-transferable license to use " + c.software() +
			" for " + scope + " purposes at no charge."
	case LicenseTrial:
		days := c.TrialDays
		if days <= 0 {
			days = defaultTrialDays
		}
		grant = who.name() + " grants you a limited, non-exclusive, non-transferable license to evaluate " +
			c.software() + " for " + plural(days, "day") + " from installation. After the evaluation period you must " +
			"purchase a license or stop using it."
	default:
		grant = who.name() + " grants you a perpetual, non-exclusive, non-transferable license to install and use " +
			c.software() + " for " + scope + " purposes, subject to payment of the applicable license fee."
	}
	return section.Join(
		grant,
		section.Paragraph(c.MaxDevices > 0, "You may install "+c.software()+" on up to "+plural(c.MaxDevices, "device")+
			" that you own or control."),
	)
}

func (c EULAConfig) fees(section.Numbering) string {
	switch c.LicenseType {
	case LicenseSubscription:
		return "Subscription fees are billed in advance for each billing period and are non-refundable except " +
			"where required by law. Your subscription renews automatically unless you cancel before the renewal date."
	case LicenseFreemium:
		return "Premium features require a paid plan. Fees are stated at the time of purchase and are " +
			"non-refundable except where required by law."
	case LicenseTrial:
		return "The evaluation license is provided at no charge. Continued use after the evaluation period requires " +
			"payment of the applicable license fee."
	}
	return "The license fee is payable once at the time of purchase and entitles you to use the version purchased " +
		"indefinitely. Fees are non-refundable except where required by law."
}

func (c EULAConfig) ownership(section.Numbering) string {
	return sentence(c.software()) + " is licensed, not sold. " + c.contact().name() + " and its licensors retain all right, " +
		"title, and interest in it, including all intellectual property rights. All rights not expressly granted " +
		"in this Agreement are reserved."
}

func (c EULAConfig) updates(section.Numbering) string {
	return "We may provide updates, patches, or new versions from time to time, which may be installed " +
		"automatically. Updates are governed by this Agreement unless they come with separate terms. We are not " +
		"obliged to provide any particular update or support service."
}

func (c EULAConfig) data(section.Numbering) string {
	text := sentence(c.software()) + " may collect technical information about your device and how you use the software, " +
		"such as crash reports and feature usage, to improve the product and provide support."
	if u := strings.TrimSpace(c.PrivacyPolicyURL); u != "" {
		text += " Our handling of this information is described in our Privacy Policy at " + u + "."
	}
	return text
}

func (c EULAConfig) thirdParty(section.Numbering) string {
	return sentence(c.software()) + " may include third-party software components that are subject to their own license " +
		"terms. Those terms govern your use of the components, and a list of them is provided with the software " +
		"documentation."
}

func (c EULAConfig) export(section.Numbering) string {
	return "You agree to comply with all applicable export and import control laws and regulations. You represent " +
		"that you are not located in an embargoed country and are not on any government list of prohibited or " +
		"restricted parties."
}

func (c EULAConfig) termination(n section.Numbering) string {
	end := "This Agreement remains in effect until terminated."
	switch c.LicenseType {
	case LicenseSubscription:
		end = "This Agreement remains in effect for as long as your subscription is active."
	case LicenseTrial:
		end = "This Agreement ends when the evaluation period expires unless you purchase a license."
	}
	return section.Join(
		end,
		"Your rights under this Agreement end automatically if you fail to comply with "+n.Ref("restrictions")+
			". On termination you must stop using and destroy all copies of "+c.software()+".",
	)
}

func (c EULAConfig) warranty(section.Numbering) string {
	return sentence(c.software()) + " is provided \"as is\" without warranty of any kind. To the maximum extent permitted by " +
		"law, " + c.contact().name() + " disclaims all warranties, express or implied, including warranties of " +
		"merchantability and fitness for a particular purpose."
}

func (c EULAConfig) liability(section.Numbering) string {
	return "To the maximum extent permitted by law, " + c.contact().name() + " will not be liable for any " +
		"indirect, incidental, special, or consequential damages arising out of the use of or inability to use " +
		c.software() + ", even if advised of the possibility of such damages."
}
