package policygen

import (
	"strconv"

	"github.com/ElSguidge/policygen/internal/section"
)

// ProcessingTime is how long an approved refund takes to arrive.
type ProcessingTime string

// Processing times.
const (
	ProcessingFast     ProcessingTime = "3-5"
	ProcessingStandard ProcessingTime = "5-10"
	ProcessingSlow     ProcessingTime = "10-14"
)

// Phrase returns the processing-time clause.
func (p ProcessingTime) Phrase() string {
	switch p {
	case ProcessingFast:
		return "within 3 to 5 business days"
	case ProcessingStandard:
		return "within 5 to 10 business days"
	case ProcessingSlow:
		return "within 10 to 14 business days"
	}
	return "within a reasonable time"
}

// RefundMethod is how refunds are paid out.
type RefundMethod string

// Refund methods.
const (
	RefundOriginal    RefundMethod = "original"
	RefundStoreCredit RefundMethod = "store_credit"
	RefundChoice      RefundMethod = "choice"
)

// Phrase returns the refund-method clause.
func (m RefundMethod) Phrase() string {
	switch m {
	case RefundStoreCredit:
		return "as store credit, which you can use on any future purchase"
	case RefundChoice:
		return "to your original payment method or as store credit, at your choice"
	}
	return "to your original method of payment"
}

// ShippingPayer says who pays for return shipping.
type ShippingPayer string

// Shipping payers.
const (
	ShippingCustomer ShippingPayer = "customer"
	ShippingBusiness ShippingPayer = "business"
)

// DefaultNonRefundableItems seeds the non-refundable list.
var DefaultNonRefundableItems = []string{
	"Gift cards",
	"Downloadable software products once accessed",
	"Personalized or custom-made items",
	"Perishable goods such as food or flowers",
	"Intimate or sanitary goods",
}

// RefundPolicyConfig holds the answers that drive a refund policy.
type RefundPolicyConfig struct {
	CompanyName   string `yaml:"companyName" validate:"required"`
	WebsiteURL    string `yaml:"websiteUrl" validate:"required_without=Address"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address"`
	Phone         string `yaml:"phone"`
	EffectiveDate string `yaml:"effectiveDate"`

	CoversPhysical      bool `yaml:"coversPhysical"`
	CoversDigital       bool `yaml:"coversDigital"`
	CoversSubscriptions bool `yaml:"coversSubscriptions"`

	ReturnWindowDays   int           `yaml:"returnWindowDays" validate:"gte=0"`
	AllowsExchanges    bool          `yaml:"allowsExchanges"`
	ExchangeWindowDays int           `yaml:"exchangeWindowDays" validate:"gte=0"`
	ReturnShipping     ShippingPayer `yaml:"returnShipping"`
	RestockingFee      int           `yaml:"restockingFeePercent" validate:"gte=0,lte=100"`

	DigitalRefundDays int `yaml:"digitalRefundDays" validate:"gte=0"`

	CancellationNoticeDays int  `yaml:"cancellationNoticeDays" validate:"gte=0"`
	ProratedRefunds        bool `yaml:"proratedRefunds"`

	NonRefundableItems []string       `yaml:"nonRefundableItems"`
	ProcessingTime     ProcessingTime `yaml:"processingTime"`
	RefundMethod       RefundMethod   `yaml:"refundMethod"`
}

// DefaultRefundPolicyConfig returns the wizard defaults.
func DefaultRefundPolicyConfig() RefundPolicyConfig {
	return RefundPolicyConfig{
		CoversPhysical:     true,
		ReturnWindowDays:   30,
		ExchangeWindowDays: 30,
		ReturnShipping:     ShippingCustomer,
		DigitalRefundDays:  14,
		NonRefundableItems: append([]string(nil), DefaultNonRefundableItems...),
		ProcessingTime:     ProcessingStandard,
		RefundMethod:       RefundOriginal,
	}
}

// Type implements Config.
func (c RefundPolicyConfig) Type() DocumentType { return TypeRefundPolicy }

// Validate implements Config.
func (c RefundPolicyConfig) Validate() error { return validateStruct(c) }

// GenerateRefundPolicy assembles a refund policy.
func GenerateRefundPolicy(c RefundPolicyConfig) string {
	return Generate(c)
}

func (c RefundPolicyConfig) contact() contact {
	return contact{Name: c.CompanyName, Email: c.Email, Website: c.WebsiteURL, Address: c.Address, Phone: c.Phone}
}

// days renders a day count, or the placeholder when unset.
func days(n int) string {
	if n <= 0 {
		return section.Placeholder + " days"
	}
	return plural(n, "day")
}

func (c RefundPolicyConfig) document() section.Document {
	who := c.contact()
	return section.Document{
		Header: documentHeader("Refund Policy", "Effective Date", c.EffectiveDate),
		Nodes: []section.Node{
			{ID: "overview", Title: "Overview", Include: true, Body: c.overview},
			{ID: "physical", Title: "Physical Products", Include: c.CoversPhysical, Children: []section.Node{
				{ID: "returns", Title: "Returns", Include: true, Body: c.returns},
				{ID: "exchanges", Title: "Exchanges", Include: c.AllowsExchanges, Body: c.exchanges},
				{ID: "return-shipping", Title: "Return Shipping", Include: true, Body: c.returnShipping},
				{ID: "damaged", Title: "Damaged or Defective Items", Include: true, Body: c.damaged},
			}},
			{ID: "digital", Title: "Digital Products", Include: c.CoversDigital, Children: []section.Node{
				{ID: "digital-eligibility", Title: "Eligibility", Include: true, Body: c.digitalEligibility},
				{ID: "digital-non-eligibility", Title: "Non-Eligibility", Include: true, Body: c.digitalNonEligibility},
			}},
			{ID: "subscriptions", Title: "Subscriptions", Include: c.CoversSubscriptions, Children: []section.Node{
				{ID: "cancellation", Title: "Cancellation", Include: true, Body: c.cancellation},
				{ID: "prorated", Title: "Prorated Refunds", Include: c.ProratedRefunds, Body: c.prorated},
			}},
			{ID: "non-refundable", Title: "Non-Refundable Items", Include: hasText(c.NonRefundableItems), Body: func(section.Numbering) string {
				return section.Join("The following items cannot be returned or refunded:", section.List(true, c.NonRefundableItems))
			}},
			{ID: "request", Title: "How to Request a Refund", Include: true, Body: c.request},
			{ID: "processing", Title: "Refund Processing", Include: true, Body: c.processing},
			{ID: "changes", Title: "Changes to This Policy", Include: true, Body: func(section.Numbering) string {
				return "We may update this Refund Policy at any time. Changes apply to purchases made after the " +
					"updated policy is posted."
			}},
			{ID: "contact", Title: "Contact Us", Include: true, Body: func(section.Numbering) string {
				return section.Join("Questions about refunds and returns should be sent to:", who.block())
			}},
		},
		Footer: documentFooter(),
	}
}

func (c RefundPolicyConfig) overview(n section.Numbering) string {
	who := c.contact()
	var covered []string
	for _, id := range []string{"physical", "digital", "subscriptions"} {
		if n.Has(id) {
			covered = append(covered, n.Section(id))
		}
	}
	text := "Thank you for shopping with " + who.name() + ". This policy explains when and how you can return " +
		"purchases made through " + who.site() + " and request a refund."
	if len(covered) == 0 {
		return text
	}
	return section.Join(text, "The rules for each kind of product are set out in "+joinWords(covered)+".")
}

func (c RefundPolicyConfig) returns(n section.Numbering) string {
	return section.Join(
		"You may return most new, unopened items within "+days(c.ReturnWindowDays)+" of delivery for a full refund. "+
			"To be eligible, items must be unused, in the same condition you received them, and in their original packaging.",
		section.Paragraph(c.RestockingFee > 0,
			"Returned items that are opened or show signs of use may be subject to a restocking fee of "+
				strconv.Itoa(c.RestockingFee)+"% of the purchase price."),
		section.Paragraph(n.Has("non-refundable"), "Some items are excluded; see "+n.Ref("non-refundable")+"."),
	)
}

func (c RefundPolicyConfig) exchanges(section.Numbering) string {
	return "If you need a different size or color, you may exchange an item within " + days(c.ExchangeWindowDays) +
		" of delivery, subject to availability. Exchanged items must meet the same conditions as returns."
}

func (c RefundPolicyConfig) returnShipping(section.Numbering) string {
	if c.ReturnShipping == ShippingBusiness {
		return "We cover the cost of return shipping. Contact us for a prepaid return label before sending the item back."
	}
	return "You are responsible for the cost of return shipping unless the item is damaged or defective. Shipping " +
		"costs are non-refundable. We recommend using a trackable shipping service."
}

func (c RefundPolicyConfig) damaged(section.Numbering) string {
	return "If your item arrives damaged or defective, contact us within 7 days of delivery with your order number " +
		"and photos of the problem. We will arrange a replacement or a full refund, including shipping costs."
}

func (c RefundPolicyConfig) digitalEligibility(section.Numbering) string {
	return "You may request a refund for a digital product within " + days(c.DigitalRefundDays) + " of purchase " +
		"if it is materially different from its description or does not work as described and we cannot fix it."
}

func (c RefundPolicyConfig) digitalNonEligibility(section.Numbering) string {
	return section.Join(
		"Refunds are not available for digital products when:",
		section.List(true, []string{
			"The product has been downloaded or accessed, unless it is faulty",
			"The license key has been activated",
			"The refund window has passed",
			"You changed your mind after purchase",
		}),
	)
}

func (c RefundPolicyConfig) cancellation(section.Numbering) string {
	notice := "You can cancel your subscription at any time from your account settings."
	if c.CancellationNoticeDays > 0 {
		notice = "You can cancel your subscription by giving at least " + days(c.CancellationNoticeDays) +
			" notice before your next billing date."
	}
	return section.Join(
		notice,
		"Cancellation takes effect at the end of the current billing period, and you keep access until then.",
	)
}

func (c RefundPolicyConfig) prorated(section.Numbering) string {
	return "If you cancel an annual plan part-way through the term, we will refund the unused portion of your " +
		"subscription on a prorated basis, calculated from the date we receive your cancellation."
}

func (c RefundPolicyConfig) request(n section.Numbering) string {
	return section.Join(
		"To request a refund or return:",
		section.OrderedList(true, []string{
			"Contact us at " + c.contact().email() + " with your order number and the reason for your request",
			"Wait for our confirmation and return instructions",
			"Send the item back if required, using the instructions we provide",
		}),
		"Refunds are handled as described in "+n.Ref("processing")+".",
	)
}

func (c RefundPolicyConfig) processing(section.Numbering) string {
	return section.Join(
		"Once we receive and inspect your return, we will email you to confirm whether your refund is approved.",
		"Approved refunds are issued "+c.RefundMethod.Phrase()+" "+c.ProcessingTime.Phrase()+". Your bank or card "+
			"issuer may take additional time to post the refund.",
	)
}
