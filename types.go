package policygen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ElSguidge/policygen/internal/section"
)

// DocumentType identifies one of the supported document kinds.
type DocumentType string

// Supported document types.
const (
	TypePrivacyPolicy  DocumentType = "privacy-policy"
	TypeTermsOfService DocumentType = "terms-of-service"
	TypeCookiePolicy   DocumentType = "cookie-policy"
	TypeEULA           DocumentType = "eula"
	TypeRefundPolicy   DocumentType = "refund-policy"
	TypeDisclaimer     DocumentType = "disclaimer"
	TypeSWMS           DocumentType = "swms"
)

// DocumentTypes lists every supported type in display order.
var DocumentTypes = []DocumentType{
	TypePrivacyPolicy,
	TypeTermsOfService,
	TypeCookiePolicy,
	TypeEULA,
	TypeRefundPolicy,
	TypeDisclaimer,
	TypeSWMS,
}

// typeAliases maps shorthand names accepted by ParseDocumentType.
var typeAliases = map[string]DocumentType{
	"privacy":          TypePrivacyPolicy,
	"terms":            TypeTermsOfService,
	"tos":              TypeTermsOfService,
	"terms-of-use":     TypeTermsOfService,
	"cookies":          TypeCookiePolicy,
	"cookie":           TypeCookiePolicy,
	"refund":           TypeRefundPolicy,
	"returns":          TypeRefundPolicy,
	"jsa":              TypeSWMS,
	"rams":             TypeSWMS,
	"safe-work-method": TypeSWMS,
}

// DocumentTypeAliases returns the shorthand names ParseDocumentType
// accepts, sorted.
func DocumentTypeAliases() []string {
	names := make([]string, 0, len(typeAliases))
	for name := range typeAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseDocumentType resolves a type name or alias (case-insensitive).
func ParseDocumentType(s string) (DocumentType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	for _, t := range DocumentTypes {
		if string(t) == name {
			return t, nil
		}
	}
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
}

// Title returns the human-readable document name.
func (t DocumentType) Title() string {
	switch t {
	case TypePrivacyPolicy:
		return "Privacy Policy"
	case TypeTermsOfService:
		return "Terms of Service"
	case TypeCookiePolicy:
		return "Cookie Policy"
	case TypeEULA:
		return "End User License Agreement"
	case TypeRefundPolicy:
		return "Refund Policy"
	case TypeDisclaimer:
		return "Disclaimer"
	case TypeSWMS:
		return "Safe Work Method Statement"
	}
	return string(t)
}

// Config is a document configuration. It is implemented by the seven
// configuration types of this package.
type Config interface {
	// Type reports which document the configuration produces.
	Type() DocumentType
	// Validate checks the fields the generator cannot invent: the
	// entity name, contact email and a website or address.
	Validate() error

	document() section.Document
}

// Compile-time interface checks.
var (
	_ Config = PrivacyPolicyConfig{}
	_ Config = TermsOfServiceConfig{}
	_ Config = CookiePolicyConfig{}
	_ Config = EULAConfig{}
	_ Config = RefundPolicyConfig{}
	_ Config = DisclaimerConfig{}
	_ Config = SWMSConfig{}
)

// Generate assembles the Markdown document for cfg.
// It never fails: missing values render as placeholders.
func Generate(cfg Config) string {
	if cfg == nil {
		return ""
	}
	return section.Print(cfg.document())
}

// OutlineEntry is one heading of a generated document.
type OutlineEntry struct {
	ID     string
	Number string // empty for unnumbered headings
	Title  string
	Level  int // 1 for top-level sections
}

// Outline returns the headings Generate would print for cfg, in order.
func Outline(cfg Config) []OutlineEntry {
	if cfg == nil {
		return nil
	}
	entries := section.Outline(cfg.document())
	out := make([]OutlineEntry, len(entries))
	for i, e := range entries {
		out[i] = OutlineEntry{ID: e.ID, Number: e.Label, Title: e.Title, Level: e.Level}
	}
	return out
}

// DefaultConfig returns the configuration of type t populated with defaults.
func DefaultConfig(t DocumentType) (Config, error) {
	switch t {
	case TypePrivacyPolicy:
		return DefaultPrivacyPolicyConfig(), nil
	case TypeTermsOfService:
		return DefaultTermsOfServiceConfig(), nil
	case TypeCookiePolicy:
		return DefaultCookiePolicyConfig(), nil
	case TypeEULA:
		return DefaultEULAConfig(), nil
	case TypeRefundPolicy:
		return DefaultRefundPolicyConfig(), nil
	case TypeDisclaimer:
		return DefaultDisclaimerConfig(), nil
	case TypeSWMS:
		return DefaultSWMSConfig(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, t)
}
