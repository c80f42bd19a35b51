package policygen

import (
	"strconv"
	"strings"

	"github.com/ElSguidge/policygen/internal/section"
)

// ServiceType describes what the terms govern.
type ServiceType string

// Service types.
const (
	ServiceWebsite     ServiceType = "website"
	ServiceSaaS        ServiceType = "saas"
	ServiceEcommerce   ServiceType = "ecommerce"
	ServiceMarketplace ServiceType = "marketplace"
	ServiceMobileApp   ServiceType = "mobile_app"
)

// Noun returns the descriptive phrase used in prose.
func (s ServiceType) Noun() string {
	switch s {
	case ServiceWebsite:
		return "website"
	case ServiceSaaS:
		return "software-as-a-service platform"
	case ServiceEcommerce:
		return "online store"
	case ServiceMarketplace:
		return "online marketplace"
	case ServiceMobileApp:
		return "mobile application"
	}
	return "service"
}

// LiabilityCap selects the limitation-of-liability paragraph.
type LiabilityCap string

// Liability caps.
const (
	CapFeesPaid    LiabilityCap = "fees_paid"
	CapFixedAmount LiabilityCap = "fixed_amount"
	CapNone        LiabilityCap = "none"
)

// adultAge is the age below which parental consent is required.
const adultAge = 18

// TermsOfServiceConfig holds the answers that drive terms of service.
type TermsOfServiceConfig struct {
	CompanyName   string `yaml:"companyName" validate:"required"`
	WebsiteURL    string `yaml:"websiteUrl" validate:"required_without=Address"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address"`
	Phone         string `yaml:"phone"`
	EffectiveDate string `yaml:"effectiveDate"`

	ServiceName string      `yaml:"serviceName"`
	ServiceType ServiceType `yaml:"serviceType"`
	MinimumAge  int         `yaml:"minimumAge" validate:"gte=0,lte=120"`

	HasUserAccounts   bool `yaml:"hasUserAccounts"`
	AllowsUserContent bool `yaml:"allowsUserContent"`
	AcceptsPayments   bool `yaml:"acceptsPayments"`
	HasSubscriptions  bool `yaml:"hasSubscriptions"`
	HasFreeTrial      bool `yaml:"hasFreeTrial"`

	HasMarketplaceTransactions bool `yaml:"hasMarketplaceTransactions"`

	LiabilityCap    LiabilityCap `yaml:"liabilityCap"`
	LiabilityAmount float64      `yaml:"liabilityAmount" validate:"gte=0"`
	Currency        string       `yaml:"currency"`

	RequiresArbitration bool   `yaml:"requiresArbitration"`
	ClassActionWaiver   bool   `yaml:"classActionWaiver"`
	GoverningLaw        string `yaml:"governingLaw"`
	TerminationNotice   int    `yaml:"terminationNoticeDays" validate:"gte=0"`
}

// DefaultTermsOfServiceConfig returns the wizard defaults.
func DefaultTermsOfServiceConfig() TermsOfServiceConfig {
	return TermsOfServiceConfig{
		ServiceType:     ServiceWebsite,
		MinimumAge:      adultAge,
		HasUserAccounts: true,
		LiabilityCap:    CapFeesPaid,
		LiabilityAmount: 100,
		Currency:        "USD",
	}
}

// Type implements Config.
func (c TermsOfServiceConfig) Type() DocumentType { return TypeTermsOfService }

// Validate implements Config.
func (c TermsOfServiceConfig) Validate() error { return validateStruct(c) }

// GenerateTermsOfService assembles terms of service.
func GenerateTermsOfService(c TermsOfServiceConfig) string {
	return Generate(c)
}

func (c TermsOfServiceConfig) contact() contact {
	return contact{Name: c.CompanyName, Email: c.Email, Website: c.WebsiteURL, Address: c.Address, Phone: c.Phone}
}

// service returns the product name, or "our <noun>".
func (c TermsOfServiceConfig) service() string {
	return section.Fallback(c.ServiceName, "our "+c.ServiceType.Noun())
}

func (c TermsOfServiceConfig) document() section.Document {
	who := c.contact()
	return section.Document{
		Header: documentHeader("Terms of Service", "Effective Date", c.EffectiveDate),
		Nodes: []section.Node{
			{ID: "acceptance", Title: "Acceptance of Terms", Include: true, Body: c.acceptance},
			{ID: "description", Title: "Description of Service", Include: true, Body: c.description},
			{ID: "eligibility", Title: "Eligibility", Include: true, Body: c.eligibility},
			{ID: "accounts", Title: "User Accounts", Include: c.HasUserAccounts, Body: c.accounts},
			{ID: "content", Title: "User-Generated Content", Include: c.AllowsUserContent, Body: c.userContent},
			{ID: "acceptable-use", Title: "Acceptable Use", Include: true, Body: c.acceptableUse},
			{ID: "payments", Title: "Purchases and Payments", Include: c.AcceptsPayments, Body: c.payments},
			{ID: "subscriptions", Title: "Subscriptions and Renewals", Include: c.HasSubscriptions, Body: c.subscriptions},
			{ID: "marketplace", Title: "Marketplace Transactions", Include: c.HasMarketplaceTransactions, Body: c.marketplace},
			{ID: "ip", Title: "Intellectual Property", Include: true, Body: c.intellectualProperty},
			{ID: "third-party", Title: "Third-Party Links and Services", Include: true, Body: c.thirdParty},
			{ID: "termination", Title: "Termination", Include: true, Body: c.termination},
			{ID: "disclaimers", Title: "Disclaimer of Warranties", Include: true, Body: c.disclaimers},
			{ID: "liability", Title: "Limitation of Liability", Include: true, Body: c.liability},
			{ID: "indemnification", Title: "Indemnification", Include: true, Body: c.indemnification},
			{ID: "disputes", Title: "Dispute Resolution and Arbitration", Include: c.RequiresArbitration, Body: c.disputes},
			{ID: "governing-law", Title: "Governing Law", Include: true, Body: c.governingLaw},
			{ID: "changes", Title: "Changes to These Terms", Include: true, Body: c.changes},
			{ID: "contact", Title: "Contact Information", Include: true, Body: func(section.Numbering) string {
				return section.Join("Questions about these Terms should be sent to:", who.block())
			}},
		},
		Footer: documentFooter(),
	}
}

func (c TermsOfServiceConfig) acceptance(n section.Numbering) string {
	who := c.contact()
	return section.Join(
		"These Terms of Service (\"Terms\") govern your access to and use of "+c.service()+", operated by "+
			who.name()+" (\"we\", \"us\", or \"our\") at "+who.site()+".",
		"By accessing or using the service you agree to be bound by these Terms. If you do not agree, do not use "+
			"the service. We may revise these Terms as described in "+n.Ref("changes")+".",
	)
}

func (c TermsOfServiceConfig) description(section.Numbering) string {
	what := "We provide " + article(c.ServiceType.Noun())
	if name := strings.TrimSpace(c.ServiceName); name != "" {
		what = name + " is " + article(c.ServiceType.Noun())
	}
	return what + " made available to you subject to these Terms. We may change, suspend, or discontinue any " +
		"part of the service at any time."
}

func (c TermsOfServiceConfig) eligibility(section.Numbering) string {
	age := c.MinimumAge
	if age <= 0 {
		age = adultAge
	}
	years := strconv.Itoa(age)
	return section.Join(
		"You must be at least "+years+" years old to use the service. By using it, you represent that you meet "+
			"this requirement and are legally able to enter into these Terms.",
		section.Paragraph(age < adultAge,
			"If you are under "+strconv.Itoa(adultAge)+", you may use the service only with the consent and "+
				"supervision of a parent or legal guardian who agrees to be bound by these Terms."),
	)
}

func (c TermsOfServiceConfig) accounts(section.Numbering) string {
	return section.Join(
		"To use certain features you must create an account. You agree to:",
		section.List(true, []string{
			"Provide accurate and complete registration information and keep it up to date",
			"Keep your password confidential and not share your account with others",
			"Notify us immediately of any unauthorized use of your account",
			"Accept responsibility for all activity that occurs under your account",
		}),
	)
}

func (c TermsOfServiceConfig) userContent(n section.Numbering) string {
	return section.Join(
		"The service allows you to post, upload, or share content (\"User Content\"). You retain ownership of your "+
			"User Content.",
		"By submitting User Content, you grant us a worldwide, non-exclusive, royalty-free license to host, store, "+
			"reproduce, display, and distribute it for the purpose of operating and improving the service.",
		"You are solely responsible for your User Content and represent that it does not violate "+
			n.Ref("acceptable-use")+" or any third party's rights. We may remove User Content at our discretion.",
	)
}

func (c TermsOfServiceConfig) acceptableUse(section.Numbering) string {
	return section.Join(
		"You agree not to:",
		section.List(true, []string{
			"Use the service for any unlawful purpose or in violation of any applicable law",
			"Harass, abuse, threaten, or impersonate any person",
			"Upload viruses or other malicious code",
			"Attempt to gain unauthorized access to the service or its related systems",
			"Scrape, crawl, or harvest data from the service without our written permission",
			"Interfere with or disrupt the integrity or performance of the service",
		}),
	)
}

func (c TermsOfServiceConfig) payments(section.Numbering) string {
	return section.Join(
		"If you purchase anything through the service, you agree to provide current, complete, and accurate "+
			"purchase and account information. All prices are shown in "+section.Fallback(c.Currency, "USD")+
			" unless stated otherwise.",
		"You authorize us and our payment processors to charge your chosen payment method for all fees incurred. "+
			"We may correct pricing errors and refuse or cancel any order.",
	)
}

func (c TermsOfServiceConfig) subscriptions(n section.Numbering) string {
	return section.Join(
		"Some parts of the service are billed on a subscription basis. Subscriptions renew automatically at the "+
			"end of each billing cycle unless you cancel before the renewal date.",
		section.Paragraph(c.HasFreeTrial,
			"We may offer a free trial. Unless you cancel before the trial ends, you will be charged the applicable "+
				"subscription fee when it ends."),
		"You can cancel at any time from your account settings. Cancellation takes effect at the end of the "+
			"current billing period. Billing follows "+n.RefOr("payments", "these Terms")+".",
	)
}

func (c TermsOfServiceConfig) marketplace(section.Numbering) string {
	who := c.contact()
	return section.Join(
		"The service connects buyers and sellers. "+who.name()+" is not a party to transactions between users, "+
			"does not take title to items listed, and does not guarantee the quality, safety, or legality of any listing.",
		"Sellers are responsible for the accuracy of their listings and for complying with all applicable laws. "+
			"Buyers are responsible for reading the full listing before committing to buy.",
	)
}

func (c TermsOfServiceConfig) intellectualProperty(section.Numbering) string {
	return "The service and its original content, features, and functionality are and will remain the exclusive " +
		"property of " + c.contact().name() + " and its licensors. Our trademarks may not be used in connection with " +
		"any product or service without our prior written consent."
}

func (c TermsOfServiceConfig) thirdParty(section.Numbering) string {
	return "The service may contain links to third-party websites or services that we do not own or control. " +
		"We are not responsible for their content, privacy policies, or practices, and you access them at your own risk."
}

func (c TermsOfServiceConfig) termination(n section.Numbering) string {
	notice := "We may suspend or terminate your access immediately, without prior notice, if you breach these Terms."
	if c.TerminationNotice > 0 {
		notice = "We may terminate your access for convenience on " + plural(c.TerminationNotice, "day") +
			" notice, or immediately if you breach these Terms."
	}
	return section.Join(
		notice,
		section.Paragraph(n.Has("accounts"),
			"You may close your account at any time as described in "+n.Ref("accounts")+"."),
		"Provisions that by their nature should survive termination will survive, including ownership provisions, "+
			"warranty disclaimers, and limitations of liability.",
	)
}

func (c TermsOfServiceConfig) disclaimers(section.Numbering) string {
	return strings.ToUpper("The service is provided on an \"as is\" and \"as available\" basis. To the fullest " +
		"extent permitted by law, we disclaim all warranties, express or implied, including warranties of " +
		"merchantability, fitness for a particular purpose, and non-infringement.")
}

func (c TermsOfServiceConfig) liability(section.Numbering) string {
	lead := "To the maximum extent permitted by law, " + c.contact().name() + " will not be liable for any " +
		"indirect, incidental, special, consequential, or punitive damages, or any loss of profits or revenues."
	var limit string
	switch c.LiabilityCap {
	case CapFixedAmount:
		limit = "Our total liability for any claim arising out of these Terms or the service will not exceed " +
			formatAmount(c.LiabilityAmount) + " " + section.Fallback(c.Currency, "USD") + "."
	case CapNone:
		limit = "Nothing in these Terms limits liability that cannot be limited under applicable law."
	default:
		limit = "Our total liability for any claim arising out of these Terms or the service will not exceed the " +
			"amount you paid us in the twelve (12) months before the event giving rise to the claim."
	}
	return section.Join(lead, limit)
}

func (c TermsOfServiceConfig) indemnification(section.Numbering) string {
	return "You agree to defend, indemnify, and hold harmless " + c.contact().name() + " and its officers, " +
		"directors, employees, and agents from any claims, damages, losses, and expenses, including reasonable " +
		"legal fees, arising out of your use of the service or your violation of these Terms."
}

func (c TermsOfServiceConfig) disputes(section.Numbering) string {
	return section.Join(
		"Any dispute arising out of or relating to these Terms or the service will be resolved by binding "+
			"arbitration, rather than in court, except that either party may bring claims in small claims court.",
		section.Paragraph(c.ClassActionWaiver,
			section.Bold("Class Action Waiver.")+" You and we agree that each may bring claims against the other "+
				"only in an individual capacity, and not as a plaintiff or class member in any purported class or "+
				"representative proceeding."),
		"Before starting arbitration, you agree to contact us and attempt to resolve the dispute informally for "+
			"at least thirty (30) days.",
	)
}

func (c TermsOfServiceConfig) governingLaw(n section.Numbering) string {
	law := section.Fallback(c.GoverningLaw, section.Placeholder)
	text := "These Terms are governed by the laws of " + law + ", without regard to its conflict of law provisions."
	if n.Has("disputes") {
		return section.Join(text, "Subject to "+n.Ref("disputes")+", the courts of "+law+
			" have exclusive jurisdiction over any dispute.")
	}
	return section.Join(text, "The courts of "+law+" have exclusive jurisdiction over any dispute.")
}

func (c TermsOfServiceConfig) changes(section.Numbering) string {
	return "We may modify these Terms at any time. If a revision is material, we will provide at least thirty (30) " +
		"days' notice before it takes effect. Continuing to use the service after the revised Terms take effect " +
		"means you accept them."
}

// formatAmount prints whole amounts without decimals and others with two.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
