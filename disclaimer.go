package policygen

import (
	"github.com/ElSguidge/policygen/internal/section"
)

// BusinessType describes the publisher of a disclaimer.
type BusinessType string

// Business types.
const (
	BusinessWebsite    BusinessType = "website"
	BusinessBlog       BusinessType = "blog"
	BusinessEcommerce  BusinessType = "ecommerce"
	BusinessSaaS       BusinessType = "saas"
	BusinessConsulting BusinessType = "consulting"
	BusinessHealthcare BusinessType = "healthcare"
	BusinessFinancial  BusinessType = "financial"
	BusinessEducation  BusinessType = "education"
	BusinessApp        BusinessType = "app"
)

// Noun returns the descriptive phrase used in prose.
func (b BusinessType) Noun() string {
	switch b {
	case BusinessWebsite:
		return "website"
	case BusinessBlog:
		return "blog"
	case BusinessEcommerce:
		return "online store"
	case BusinessSaaS:
		return "software service"
	case BusinessConsulting:
		return "consulting service"
	case BusinessHealthcare:
		return "health information service"
	case BusinessFinancial:
		return "financial information service"
	case BusinessEducation:
		return "educational platform"
	case BusinessApp:
		return "mobile application"
	}
	return "website"
}

// DisclaimerConfig holds the answers that drive a disclaimer.
type DisclaimerConfig struct {
	CompanyName   string `yaml:"companyName" validate:"required"`
	WebsiteURL    string `yaml:"websiteUrl" validate:"required_without=Address"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address"`
	EffectiveDate string `yaml:"effectiveDate"`

	BusinessType BusinessType `yaml:"businessType"`

	MedicalContent   bool `yaml:"medicalContent"`
	FinancialContent bool `yaml:"financialContent"`
	LegalContent     bool `yaml:"legalContent"`
	FitnessContent   bool `yaml:"fitnessContent"`
	TechnicalContent bool `yaml:"technicalContent"`
	UserContent      bool `yaml:"userContent"`
	ProductReviews   bool `yaml:"productReviews"`
	Testimonials     bool `yaml:"testimonials"`
	AffiliateLinks   bool `yaml:"affiliateLinks"`
	SponsoredContent bool `yaml:"sponsoredContent"`

	AffiliatePrograms []string `yaml:"affiliatePrograms"`
}

// DefaultDisclaimerConfig returns the wizard defaults.
func DefaultDisclaimerConfig() DisclaimerConfig {
	return DisclaimerConfig{BusinessType: BusinessWebsite}
}

// Type implements Config.
func (c DisclaimerConfig) Type() DocumentType { return TypeDisclaimer }

// Validate implements Config.
func (c DisclaimerConfig) Validate() error { return validateStruct(c) }

// GenerateDisclaimer assembles a disclaimer.
func GenerateDisclaimer(c DisclaimerConfig) string {
	return Generate(c)
}

func (c DisclaimerConfig) contact() contact {
	return contact{Name: c.CompanyName, Email: c.Email, Website: c.WebsiteURL, Address: c.Address}
}

func (c DisclaimerConfig) document() section.Document {
	who := c.contact()
	return section.Document{
		Header: documentHeader("Disclaimer", "Effective Date", c.EffectiveDate),
		Nodes: []section.Node{
			{ID: "general", Title: "General Information", Include: true, Body: c.general},
			{ID: "medical", Title: "Medical Disclaimer", Include: c.MedicalContent, Body: c.medical},
			{ID: "financial", Title: "Financial Disclaimer", Include: c.FinancialContent, Body: c.financial},
			{ID: "legal", Title: "Legal Disclaimer", Include: c.LegalContent, Body: c.legal},
			{ID: "fitness", Title: "Fitness and Exercise Disclaimer", Include: c.FitnessContent, Body: c.fitness},
			{ID: "technical", Title: "Technical Information Disclaimer", Include: c.TechnicalContent, Body: c.technical},
			{ID: "user-content", Title: "User-Generated Content", Include: c.UserContent, Body: c.userContent},
			{ID: "reviews", Title: "Product Reviews", Include: c.ProductReviews, Body: c.reviews},
			{ID: "testimonials", Title: "Testimonials", Include: c.Testimonials, Body: c.testimonials},
			{ID: "affiliate", Title: "Affiliate Disclosure", Include: c.AffiliateLinks, Body: c.affiliate},
			{ID: "sponsored", Title: "Sponsored Content", Include: c.SponsoredContent, Body: c.sponsored},
			{ID: "external-links", Title: "External Links", Include: true, Body: c.externalLinks},
			{ID: "errors", Title: "Errors and Omissions", Include: true, Body: c.errorsAndOmissions},
			{ID: "liability", Title: "Limitation of Liability", Include: true, Body: c.liability},
			{ID: "contact", Title: "Contact Us", Include: true, Body: func(section.Numbering) string {
				return section.Join("If you have questions about this Disclaimer, please contact us:", who.block())
			}},
		},
		Footer: documentFooter(),
	}
}

func (c DisclaimerConfig) general(section.Numbering) string {
	who := c.contact()
	return "The information provided by " + who.name() + " (\"we\", \"us\", or \"our\") on " + who.site() +
		", our " + c.BusinessType.Noun() + ", is for general informational purposes only. All information is " +
		"provided in good faith, but we make no representation or warranty of any kind, express or implied, " +
		"regarding its accuracy, adequacy, validity, reliability, or completeness."
}

func (c DisclaimerConfig) medical(section.Numbering) string {
	return section.Join(
		"The information on our "+c.BusinessType.Noun()+" is not medical advice and is not a substitute for "+
			"professional diagnosis or treatment. Always seek the advice of your physician or another qualified "+
			"health provider with any questions you may have about a medical condition.",
		section.Bold("If you think you may have a medical emergency, call your doctor or emergency services immediately."),
	)
}

func (c DisclaimerConfig) financial(section.Numbering) string {
	return "The financial information we provide is for educational purposes only and does not constitute " +
		"investment, tax, or financial advice. Past performance is not indicative of future results. Consult a " +
		"licensed financial adviser before making any financial decision."
}

func (c DisclaimerConfig) legal(section.Numbering) string {
	return "The legal information we provide is general in nature and is not legal advice. Reading it does not " +
		"create a lawyer-client relationship. Consult a qualified lawyer about your specific circumstances."
}

func (c DisclaimerConfig) fitness(section.Numbering) string {
	return "Consult your physician before beginning any exercise or nutrition program. You participate in any " +
		"exercise described on our " + c.BusinessType.Noun() + " at your own risk, and we are not responsible " +
		"for any injury that results."
}

func (c DisclaimerConfig) technical(section.Numbering) string {
	return "Technical content, including code samples, tutorials, and configuration guides, is provided without " +
		"warranty. Test it in a safe environment and back up your data before applying it to production systems."
}

func (c DisclaimerConfig) userContent(section.Numbering) string {
	return "Our " + c.BusinessType.Noun() + " may include content submitted by users. Such content reflects the " +
		"views of its authors, not ours, and we do not verify its accuracy."
}

func (c DisclaimerConfig) reviews(section.Numbering) string {
	return "Product reviews reflect our honest opinions at the time of writing. Products may change after a review " +
		"is published, and your experience may differ."
}

func (c DisclaimerConfig) testimonials(section.Numbering) string {
	return "Testimonials reflect the real-life experiences of individual customers. Results vary, and we do not " +
		"claim that any reader will achieve the same results."
}

func (c DisclaimerConfig) affiliate(section.Numbering) string {
	text := "Some links on our " + c.BusinessType.Noun() + " are affiliate links. If you click one and make a " +
		"purchase, we may earn a commission at no additional cost to you."
	var programs string
	if len(c.AffiliatePrograms) > 0 {
		programs = "We participate in the following affiliate programs:"
	}
	return section.Join(
		text,
		programs,
		section.List(true, c.AffiliatePrograms),
		"We only recommend products we believe are useful, in line with the disclosure rules of the U.S. Federal "+
			"Trade Commission and equivalent regulators.",
	)
}

func (c DisclaimerConfig) sponsored(n section.Numbering) string {
	text := "From time to time we publish content sponsored by third parties. Sponsored posts are clearly labeled " +
		"and always reflect our own views."
	if n.Has("affiliate") {
		text += " Sponsored content may also contain affiliate links as described in " + n.Ref("affiliate") + "."
	}
	return text
}

func (c DisclaimerConfig) externalLinks(section.Numbering) string {
	return "Our " + c.BusinessType.Noun() + " may contain links to other websites or content belonging to third " +
		"parties. We do not monitor or guarantee the accuracy of such external content and are not responsible " +
		"for any transactions between you and third-party providers."
}

func (c DisclaimerConfig) errorsAndOmissions(section.Numbering) string {
	return "While we try to keep our content accurate and up to date, it may contain errors or omissions. We are " +
		"not responsible for any errors or for results obtained from the use of this information."
}

func (c DisclaimerConfig) liability(section.Numbering) string {
	return "Under no circumstance will " + c.contact().name() + " be liable for any loss or damage incurred as a " +
		"result of the use of our " + c.BusinessType.Noun() + " or reliance on any information provided on it. " +
		"Your use of it is solely at your own risk."
}
