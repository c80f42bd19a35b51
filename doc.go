// Package policygen generates legal and compliance documents as Markdown.
//
// # Quick Start
//
// Fill in a configuration, validate it, and generate:
//
//	cfg := policygen.DefaultPrivacyPolicyConfig()
//	cfg.CompanyName = "Acme Pty Ltd"
//	cfg.WebsiteURL = "https://acme.example"
//	cfg.Email = "privacy@acme.example"
//	cfg.GDPRCompliant = true
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	md := policygen.Generate(cfg)
//
// Generation never fails. Validate reports the fields a reviewer must
// supply; anything left empty is printed as a blank to fill in by hand.
//
// # Document Types
//
// Seven documents are supported, each with its own configuration type:
//
//   - PrivacyPolicyConfig (privacy-policy)
//   - TermsOfServiceConfig (terms-of-service)
//   - CookiePolicyConfig (cookie-policy)
//   - EULAConfig (eula)
//   - RefundPolicyConfig (refund-policy)
//   - DisclaimerConfig (disclaimer)
//   - SWMSConfig (swms), a Safe Work Method Statement for construction work
//
// Each document is a fixed plan of sections. Flags in the configuration
// include or omit sections, and the included ones are numbered without
// gaps. Cross-references such as "see Section 5 (Cookies)" always match
// the printed headings. Outline lists the headings without rendering.
//
// # Request Files
//
// DecodeRequest reads a YAML request naming the type and its fields:
//
//	type: refund-policy
//	config:
//	  companyName: Acme Goods
//	  email: support@acme.example
//	  returnWindowDays: 30
//
// Unknown keys are rejected. EncodeRequest writes the same format.
//
// # Output Formats
//
// ToHTML wraps the Markdown in a standalone HTML page and marks risk
// levels and checkboxes in tables with CSS classes. ToPlainText strips
// the markup for email or plain-text display. PDFRenderer prints the
// HTML with headless Chrome:
//
//	r := policygen.NewPDFRenderer(policygen.DefaultPDFTimeout)
//	defer r.Close()
//
//	pdf, err := r.Render(ctx, html, policygen.PDFOptions{
//	    Page: policygen.PageSettings{Size: "a4", Orientation: "landscape", Margin: 0.5},
//	})
//
// # Errors
//
// Errors wrap sentinel values and can be checked with errors.Is:
//
//	if errors.Is(err, policygen.ErrMissingField) {
//	    // prompt for the field
//	}
//
// The generated text is a template and not legal advice. Have it reviewed
// before publishing.
package policygen
