package policygen

import (
	"fmt"
	"strings"

	"github.com/ElSguidge/policygen/internal/yamlutil"
)

// A request file names a document type and carries its configuration:
//
//	type: privacy-policy
//	config:
//	  companyName: Acme Pty Ltd
//	  gdprCompliant: true
//
// Keys omitted under config keep the type's defaults.

type requestHeader struct {
	Type string `yaml:"type"`
}

type envelope[T Config] struct {
	Type   string `yaml:"type"`
	Config T      `yaml:"config"`
}

// DecodeRequest parses a YAML request file into the configuration it names.
// Unknown configuration keys are rejected.
func DecodeRequest(data []byte) (Config, error) {
	var hdr requestHeader
	if err := yamlutil.Unmarshal(data, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestParse, err)
	}
	if strings.TrimSpace(hdr.Type) == "" {
		return nil, fmt.Errorf("%w: missing \"type\"", ErrRequestParse)
	}
	t, err := ParseDocumentType(hdr.Type)
	if err != nil {
		return nil, err
	}

	switch t {
	case TypePrivacyPolicy:
		return decodeAs(data, DefaultPrivacyPolicyConfig())
	case TypeTermsOfService:
		return decodeAs(data, DefaultTermsOfServiceConfig())
	case TypeCookiePolicy:
		return decodeAs(data, DefaultCookiePolicyConfig())
	case TypeEULA:
		return decodeAs(data, DefaultEULAConfig())
	case TypeRefundPolicy:
		return decodeAs(data, DefaultRefundPolicyConfig())
	case TypeDisclaimer:
		return decodeAs(data, DefaultDisclaimerConfig())
	case TypeSWMS:
		return decodeAs(data, DefaultSWMSConfig())
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, hdr.Type)
}

// decodeAs decodes the request strictly over defaults.
func decodeAs[T Config](data []byte, defaults T) (Config, error) {
	env := envelope[T]{Config: defaults}
	if err := yamlutil.UnmarshalStrict(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestParse, err)
	}
	return env.Config, nil
}

// EncodeRequest renders cfg as a request file that DecodeRequest accepts.
func EncodeRequest(cfg Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil configuration", ErrUnknownDocumentType)
	}
	return yamlutil.Marshal(struct {
		Type   DocumentType `yaml:"type"`
		Config Config       `yaml:"config"`
	}{cfg.Type(), cfg})
}

// EffectiveDate returns the date field of cfg.
func EffectiveDate(cfg Config) string {
	switch c := cfg.(type) {
	case PrivacyPolicyConfig:
		return c.EffectiveDate
	case TermsOfServiceConfig:
		return c.EffectiveDate
	case CookiePolicyConfig:
		return c.EffectiveDate
	case EULAConfig:
		return c.EffectiveDate
	case RefundPolicyConfig:
		return c.EffectiveDate
	case DisclaimerConfig:
		return c.EffectiveDate
	case SWMSConfig:
		return c.EffectiveDate
	}
	return ""
}

// WithEffectiveDate returns a copy of cfg with its date field set.
func WithEffectiveDate(cfg Config, date string) Config {
	switch c := cfg.(type) {
	case PrivacyPolicyConfig:
		c.EffectiveDate = date
		return c
	case TermsOfServiceConfig:
		c.EffectiveDate = date
		return c
	case CookiePolicyConfig:
		c.EffectiveDate = date
		return c
	case EULAConfig:
		c.EffectiveDate = date
		return c
	case RefundPolicyConfig:
		c.EffectiveDate = date
		return c
	case DisclaimerConfig:
		c.EffectiveDate = date
		return c
	case SWMSConfig:
		c.EffectiveDate = date
		return c
	}
	return cfg
}
