package policygen

import (
	"strings"

	"github.com/ElSguidge/policygen/internal/section"
)

// RetentionPeriod is how long personal data is kept.
type RetentionPeriod string

// Retention periods.
const (
	RetentionSession    RetentionPeriod = "session"
	RetentionOneYear    RetentionPeriod = "1year"
	RetentionThreeYears RetentionPeriod = "3years"
	RetentionFiveYears  RetentionPeriod = "5years"
	RetentionSevenYears RetentionPeriod = "7years"
	RetentionIndefinite RetentionPeriod = "indefinite"
)

// defaultRetentionPhrase is used for values outside the closed set.
const defaultRetentionPhrase = "for a reasonable period"

// Phrase returns the retention clause used in the Data Retention section.
func (r RetentionPeriod) Phrase() string {
	switch r {
	case RetentionSession:
		return "only for the duration of your session"
	case RetentionOneYear:
		return "for one (1) year after your last interaction with us"
	case RetentionThreeYears:
		return "for three (3) years after your last interaction with us"
	case RetentionFiveYears:
		return "for five (5) years after your last interaction with us"
	case RetentionSevenYears:
		return "for seven (7) years after your last interaction with us"
	case RetentionIndefinite:
		return "for as long as your account remains active or as needed to provide our services"
	}
	return defaultRetentionPhrase
}

// PrivacyPolicyConfig holds the answers that drive a privacy policy.
type PrivacyPolicyConfig struct {
	CompanyName   string `yaml:"companyName" validate:"required"`
	WebsiteURL    string `yaml:"websiteUrl" validate:"required_without=Address"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address"`
	Phone         string `yaml:"phone"`
	EffectiveDate string `yaml:"effectiveDate"`

	CollectsPersonalInfo bool `yaml:"collectsPersonalInfo"`
	CollectsPaymentInfo  bool `yaml:"collectsPaymentInfo"`
	CollectsLocation     bool `yaml:"collectsLocation"`
	CollectsHealthInfo   bool `yaml:"collectsHealthInfo"`
	CollectsBiometrics   bool `yaml:"collectsBiometrics"`
	CollectsUsageData    bool `yaml:"collectsUsageData"`
	UsesCookies          bool `yaml:"usesCookies"`
	SendsMarketing       bool `yaml:"sendsMarketing"`
	SellsData            bool `yaml:"sellsData"`

	UsesGoogleAnalytics bool `yaml:"usesGoogleAnalytics"`
	UsesGoogleAds       bool `yaml:"usesGoogleAds"`
	UsesFacebookPixel   bool `yaml:"usesFacebookPixel"`
	UsesStripe          bool `yaml:"usesStripe"`
	UsesPayPal          bool `yaml:"usesPayPal"`
	UsesMailchimp       bool `yaml:"usesMailchimp"`
	UsesAWS             bool `yaml:"usesAws"`
	UsesIntercom        bool `yaml:"usesIntercom"`
	UsesHotjar          bool `yaml:"usesHotjar"`

	InternationalTransfers bool            `yaml:"internationalTransfers"`
	DataRetention          RetentionPeriod `yaml:"dataRetention"`

	GDPRCompliant   bool   `yaml:"gdprCompliant"`
	CCPACompliant   bool   `yaml:"ccpaCompliant"`
	ChildrenUnder13 bool   `yaml:"childrenUnder13"`
	HIPAARelevant   bool   `yaml:"hipaaRelevant"`
	DPOEmail        string `yaml:"dpoEmail" validate:"omitempty,email"`
	CookiePolicyURL string `yaml:"cookiePolicyUrl"`
}

// DefaultPrivacyPolicyConfig returns the wizard defaults.
func DefaultPrivacyPolicyConfig() PrivacyPolicyConfig {
	return PrivacyPolicyConfig{
		CollectsPersonalInfo: true,
		CollectsUsageData:    true,
		UsesCookies:          true,
		DataRetention:        RetentionThreeYears,
	}
}

// Type implements Config.
func (c PrivacyPolicyConfig) Type() DocumentType { return TypePrivacyPolicy }

// Validate implements Config.
func (c PrivacyPolicyConfig) Validate() error { return validateStruct(c) }

// GeneratePrivacyPolicy assembles a privacy policy.
func GeneratePrivacyPolicy(c PrivacyPolicyConfig) string {
	return Generate(c)
}

func (c PrivacyPolicyConfig) contact() contact {
	return contact{Name: c.CompanyName, Email: c.Email, Website: c.WebsiteURL, Address: c.Address, Phone: c.Phone}
}

// processor is a third-party service disclosed in privacy and cookie policies.
type processor struct {
	Name    string
	Purpose string
	Policy  string
}

// Known processors.
var (
	procGoogleAnalytics = processor{"Google Analytics", "Website analytics", "https://policies.google.com/privacy"}
	procGoogleAds       = processor{"Google Ads", "Advertising and remarketing", "https://policies.google.com/technologies/ads"}
	procFacebookPixel   = processor{"Facebook Pixel", "Advertising measurement", "https://www.facebook.com/privacy/policy/"}
	procStripe          = processor{"Stripe", "Payment processing", "https://stripe.com/privacy"}
	procPayPal          = processor{"PayPal", "Payment processing", "https://www.paypal.com/webapps/mpp/ua/privacy-full"}
	procMailchimp       = processor{"Mailchimp", "Email marketing", "https://www.intuit.com/privacy/statement/"}
	procAWS             = processor{"Amazon Web Services", "Cloud hosting and storage", "https://aws.amazon.com/privacy/"}
	procIntercom        = processor{"Intercom", "Customer support messaging", "https://www.intercom.com/legal/privacy"}
	procHotjar          = processor{"Hotjar", "Behavior analytics and heatmaps", "https://www.hotjar.com/legal/policies/privacy/"}
)

// processors returns the active processors in fixed disclosure order.
func (c PrivacyPolicyConfig) processors() []processor {
	candidates := []struct {
		on bool
		p  processor
	}{
		{c.UsesGoogleAnalytics, procGoogleAnalytics},
		{c.UsesGoogleAds, procGoogleAds},
		{c.UsesFacebookPixel, procFacebookPixel},
		{c.UsesStripe, procStripe},
		{c.UsesPayPal, procPayPal},
		{c.UsesMailchimp, procMailchimp},
		{c.UsesAWS, procAWS},
		{c.UsesIntercom, procIntercom},
		{c.UsesHotjar, procHotjar},
	}
	var out []processor
	for _, cand := range candidates {
		if cand.on {
			out = append(out, cand.p)
		}
	}
	return out
}

// includesHIPAA reports whether the HIPAA section applies: the business must
// be covered by HIPAA and actually collect health information.
func (c PrivacyPolicyConfig) includesHIPAA() bool {
	return c.HIPAARelevant && c.CollectsHealthInfo
}

func (c PrivacyPolicyConfig) document() section.Document {
	who := c.contact()
	return section.Document{
		Header: documentHeader("Privacy Policy", "Last Updated", c.EffectiveDate),
		Nodes: []section.Node{
			{ID: "introduction", Title: "Introduction", Include: true, Body: c.introduction},
			{ID: "collect", Title: "Information We Collect", Include: true, Body: c.collectIntro, Children: []section.Node{
				{ID: "collect-personal", Title: "Personal Information", Include: c.CollectsPersonalInfo, Body: c.collectPersonal},
				{ID: "collect-payment", Title: "Payment Information", Include: c.CollectsPaymentInfo, Body: c.collectPayment},
				{ID: "collect-location", Title: "Location Data", Include: c.CollectsLocation, Body: c.collectLocation},
				{ID: "collect-health", Title: "Health Information", Include: c.CollectsHealthInfo, Body: c.collectHealth},
				{ID: "collect-biometric", Title: "Biometric Data", Include: c.CollectsBiometrics, Body: c.collectBiometric},
				{ID: "collect-automatic", Title: "Automatically Collected Information", Include: c.CollectsUsageData, Body: c.collectAutomatic},
			}},
			{ID: "use", Title: "How We Use Your Information", Include: true, Body: c.use},
			{ID: "sharing", Title: "How We Share Your Information", Include: true, Body: c.sharing},
			{ID: "cookies", Title: "Cookies and Tracking Technologies", Include: c.UsesCookies, Body: c.cookies},
			{ID: "retention", Title: "Data Retention", Include: true, Body: c.retention},
			{ID: "security", Title: "Data Security", Include: true, Body: c.security},
			{ID: "transfers", Title: "International Data Transfers", Include: c.InternationalTransfers, Body: c.transfers},
			{ID: "rights", Title: "Your Privacy Rights", Include: true, Body: c.rights},
			{ID: "gdpr", Title: "Your Rights Under the GDPR", Include: c.GDPRCompliant, Body: c.gdpr},
			{ID: "ccpa", Title: "Your California Privacy Rights (CCPA)", Include: c.CCPACompliant, Body: c.ccpa},
			{ID: "coppa", Title: "Children's Privacy (COPPA)", Include: c.ChildrenUnder13, Body: c.coppa},
			{ID: "hipaa", Title: "Protected Health Information (HIPAA)", Include: c.includesHIPAA(), Body: c.hipaa},
			{ID: "dnt", Title: "Do Not Track Signals", Include: true, Body: c.doNotTrack},
			{ID: "changes", Title: "Changes to This Privacy Policy", Include: true, Body: c.changes},
			{ID: "contact", Title: "Contact Us", Include: true, Body: func(section.Numbering) string {
				return section.Join(
					"If you have questions or comments about this Privacy Policy, please contact us:",
					who.block(),
					section.Paragraph(c.GDPRCompliant && strings.TrimSpace(c.DPOEmail) != "",
						"You can reach our Data Protection Officer at "+strings.TrimSpace(c.DPOEmail)+"."),
				)
			}},
		},
		Footer: documentFooter(),
	}
}

func (c PrivacyPolicyConfig) introduction(n section.Numbering) string {
	who := c.contact()
	return section.Join(
		who.name()+` ("we", "us", or "our") operates `+who.site()+`. This Privacy Policy explains how we `+
			`collect, use, disclose, and safeguard your information when you visit our website or use our services.`,
		"Please read this policy carefully. If you do not agree with its terms, please do not access our services. "+
			"If you have any questions, contact us as described in "+n.Ref("contact")+".",
	)
}

func (c PrivacyPolicyConfig) collectIntro(section.Numbering) string {
	return section.Join(
		"We may collect information about you in a variety of ways, depending on how you interact with us.",
		section.Paragraph(!c.ChildrenUnder13,
			"Our services are not directed to children under 13, and we do not knowingly collect personal "+
				"information from them. If you believe a child has provided us with personal information, "+
				"please contact us so that we can delete it."),
	)
}

func (c PrivacyPolicyConfig) collectPersonal(section.Numbering) string {
	return section.Join(
		"We collect personally identifiable information that you voluntarily give us when you register, "+
			"place an order, subscribe, or otherwise contact us, such as:",
		section.List(true, []string{
			"Name",
			"Email address",
			"Phone number",
			"Mailing address",
			"Account username and password",
		}),
	)
}

func (c PrivacyPolicyConfig) collectPayment(section.Numbering) string {
	var payers []string
	if c.UsesStripe {
		payers = append(payers, procStripe.Name)
	}
	if c.UsesPayPal {
		payers = append(payers, procPayPal.Name)
	}
	via := "our payment processors"
	if len(payers) > 0 {
		via = "our payment processors (" + joinWords(payers) + ")"
	}
	return "When you make a purchase, we collect billing information such as your billing address and payment " +
		"card details. Card numbers are handled by " + via + " and are not stored on our servers."
}

func (c PrivacyPolicyConfig) collectLocation(section.Numbering) string {
	return "With your permission, we may collect precise or approximate location information from your device " +
		"to provide location-based features. You can withdraw this permission at any time in your device settings."
}

func (c PrivacyPolicyConfig) collectHealth(n section.Numbering) string {
	text := "We may collect health-related information that you choose to provide, such as medical history, " +
		"symptoms, or fitness data. We treat this information as sensitive and process it only with your explicit consent"
	if ref := n.Ref("hipaa"); ref != "" {
		text += " and as described in " + ref
	}
	return text + "."
}

func (c PrivacyPolicyConfig) collectBiometric(section.Numbering) string {
	return "Where a feature requires it, we may collect biometric identifiers such as facial geometry or " +
		"fingerprints. We collect biometric data only with your prior written consent, use it solely for the " +
		"feature you enabled, and destroy it once that purpose has been satisfied."
}

func (c PrivacyPolicyConfig) collectAutomatic(n section.Numbering) string {
	return section.Join(
		"When you access our services, we automatically collect information such as your IP address, browser "+
			"type, operating system, referring URLs, pages viewed, and the dates and times of your visits.",
		section.Paragraph(n.Has("cookies"),
			"Some of this information is collected using cookies and similar technologies; see "+
				n.Ref("cookies")+" below."),
	)
}

func (c PrivacyPolicyConfig) use(section.Numbering) string {
	items := []string{"Provide, operate, and maintain our services"}
	if c.CollectsPaymentInfo {
		items = append(items, "Process transactions and send related information, including confirmations and invoices")
	}
	items = append(items,
		"Respond to your comments, questions, and requests",
		"Send administrative information, such as updates to our terms and policies",
	)
	if c.SendsMarketing {
		items = append(items, "Send you marketing and promotional communications, which you may opt out of at any time")
	}
	if c.CollectsLocation {
		items = append(items, "Deliver location-based features and content")
	}
	if c.CollectsUsageData {
		items = append(items, "Monitor and analyze usage and trends to improve our services")
	}
	items = append(items,
		"Detect, prevent, and address fraud, security incidents, and technical issues",
		"Comply with our legal obligations",
	)
	return section.Join("We use the information we collect to:", section.List(true, items))
}

func (c PrivacyPolicyConfig) sharing(n section.Numbering) string {
	procs := c.processors()
	rows := make([][]string, len(procs))
	for i, p := range procs {
		rows[i] = []string{p.Name, p.Purpose, p.Policy}
	}

	sale := "We do not sell your personal information."
	if c.SellsData {
		sale = section.Bold("Sale of Personal Information.") +
			" We may sell or share personal information with third parties for their own marketing purposes."
		if ref := n.Ref("ccpa"); ref != "" {
			sale += " California residents can opt out as described in " + ref + "."
		}
	}

	return section.Join(
		"We may share information we have collected about you in the following situations:",
		section.List(true, []string{
			section.Bold("Service Providers.") + " With vendors who perform services for us, such as hosting, payment processing, analytics, and customer support.",
			section.Bold("Business Transfers.") + " In connection with a merger, sale of company assets, financing, or acquisition of all or part of our business.",
			section.Bold("Legal Requirements.") + " When required by law or to protect the rights, property, and safety of our users and others.",
			section.Bold("With Your Consent.") + " For any other purpose with your consent.",
		}),
		sale,
		section.Paragraph(len(procs) > 0, "We use the following third-party service providers:"),
		section.Table(len(procs) > 0, []string{"Service", "Purpose", "Privacy Policy"}, rows),
	)
}

func (c PrivacyPolicyConfig) cookies(section.Numbering) string {
	return section.Join(
		"We use cookies, web beacons, pixels, and similar tracking technologies to help customize our services "+
			"and improve your experience. Most browsers accept cookies by default. You can set your browser to "+
			"remove or reject cookies, but this may affect the availability of some features.",
		section.Paragraph(c.UsesGoogleAnalytics,
			"We use Google Analytics to understand how visitors use our website. You can opt out by installing "+
				"the Google Analytics opt-out browser add-on at https://tools.google.com/dlpage/gaoptout."),
		section.Paragraph(strings.TrimSpace(c.CookiePolicyURL) != "",
			"For more details, see our Cookie Policy at "+strings.TrimSpace(c.CookiePolicyURL)+"."),
	)
}

func (c PrivacyPolicyConfig) retention(section.Numbering) string {
	return section.Join(
		"We retain personal information "+c.DataRetention.Phrase()+", unless a longer retention period is "+
			"required or permitted by law.",
		"When we no longer need your information, we delete or anonymize it. If that is not possible, for "+
			"example because it is stored in backup archives, we store it securely and isolate it from further "+
			"processing until deletion is possible.",
	)
}

func (c PrivacyPolicyConfig) security(section.Numbering) string {
	return "We use administrative, technical, and physical safeguards to protect your personal information, " +
		"including encryption in transit and access controls. No method of transmission over the internet or " +
		"electronic storage is completely secure, so we cannot guarantee absolute security."
}

func (c PrivacyPolicyConfig) transfers(section.Numbering) string {
	return section.Join(
		"Your information may be transferred to and processed in countries other than the one in which you "+
			"reside. These countries may have data protection laws that differ from those of your country.",
		section.Paragraph(c.GDPRCompliant,
			"Where we transfer personal data out of the European Economic Area or the United Kingdom, we rely on "+
				"adequacy decisions or the Standard Contractual Clauses approved by the European Commission."),
	)
}

func (c PrivacyPolicyConfig) rights(n section.Numbering) string {
	return section.Join(
		"Depending on where you live, you may have the right to access, correct, delete, or restrict the use "+
			"of your personal information, and to object to certain processing.",
		section.Paragraph(n.Has("gdpr"), "Residents of the European Economic Area and the United Kingdom should also see "+n.Ref("gdpr")+"."),
		section.Paragraph(n.Has("ccpa"), "California residents should also see "+n.Ref("ccpa")+"."),
		section.Paragraph(c.SendsMarketing, "You can unsubscribe from our marketing emails at any time using the link in each email."),
		"To exercise any of these rights, contact us using the details in "+n.Ref("contact")+". We will respond "+
			"within the time required by applicable law.",
	)
}

func (c PrivacyPolicyConfig) gdpr(n section.Numbering) string {
	dpo := ""
	if e := strings.TrimSpace(c.DPOEmail); e != "" {
		dpo = "You can contact our Data Protection Officer at " + e + "."
	}
	return section.Join(
		"If you are in the European Economic Area or the United Kingdom, we process your personal data on the "+
			"following legal bases:",
		section.List(true, []string{
			section.Bold("Consent") + ", where you have given it for a specific purpose",
			section.Bold("Contract") + ", where processing is needed to provide our services to you",
			section.Bold("Legal obligation") + ", where we must comply with the law",
			section.Bold("Legitimate interests") + ", where they are not overridden by your rights",
		}),
		"Under the General Data Protection Regulation you have the right to:",
		section.List(true, []string{
			"Access the personal data we hold about you",
			"Have inaccurate personal data rectified",
			"Have your personal data erased",
			"Restrict or object to our processing of your personal data",
			"Receive your personal data in a portable format",
			"Withdraw your consent at any time, without affecting processing carried out before withdrawal",
			"Lodge a complaint with your local supervisory authority",
		}),
		dpo,
	)
}

func (c PrivacyPolicyConfig) ccpa(section.Numbering) string {
	optOut := "We do not sell or share personal information as those terms are defined by the CCPA."
	if c.SellsData {
		optOut = "You have the right to opt out of the sale or sharing of your personal information. " +
			"To exercise it, email us at " + c.contact().email() + " with the subject \"Do Not Sell My Personal Information\"."
	}
	return section.Join(
		"If you are a California resident, the California Consumer Privacy Act, as amended by the California "+
			"Privacy Rights Act, gives you the right to:",
		section.List(true, []string{
			"Know what personal information we collect, use, disclose, and sell",
			"Request deletion of your personal information",
			"Correct inaccurate personal information",
			"Limit the use of sensitive personal information",
		}),
		optOut,
		"We will not discriminate against you for exercising any of these rights.",
	)
}

func (c PrivacyPolicyConfig) coppa(n section.Numbering) string {
	return section.Join(
		"Some of our services are directed to children under 13. We comply with the Children's Online Privacy "+
			"Protection Act (COPPA) and collect personal information from children only with verifiable parental consent.",
		"Parents and guardians may review the information collected from their child, ask us to delete it, and "+
			"refuse further collection by contacting us as described in "+n.Ref("contact")+".",
	)
}

func (c PrivacyPolicyConfig) hipaa(section.Numbering) string {
	return section.Join(
		"Where we act as a covered entity or business associate under the Health Insurance Portability and "+
			"Accountability Act (HIPAA), protected health information is used and disclosed only as permitted by "+
			"HIPAA and our Notice of Privacy Practices.",
		"We maintain administrative, physical, and technical safeguards for protected health information and "+
			"will notify you of any breach of unsecured protected health information as required by law.",
	)
}

func (c PrivacyPolicyConfig) doNotTrack(section.Numbering) string {
	return "Most web browsers include a Do Not Track (DNT) feature. Because no uniform standard for recognizing " +
		"DNT signals has been finalized, we do not currently respond to them. If a standard is adopted that we " +
		"must follow, we will describe it in a revised version of this policy."
}

func (c PrivacyPolicyConfig) changes(section.Numbering) string {
	return "We may update this Privacy Policy from time to time. The updated version will be indicated by the " +
		"\"Last Updated\" date at the top of this policy. We encourage you to review it regularly."
}
