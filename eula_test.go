package policygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEULAConfig() EULAConfig {
	c := DefaultEULAConfig()
	c.CompanyName = "Acme Software Inc."
	c.WebsiteURL = "https://acme.example"
	c.Email = "licensing@acme.example"
	c.EffectiveDate = "2025-02-01"
	c.SoftwareName = "AcmeCAD"
	c.ProhibitCompetitiveUse = true
	c.ProhibitExport = true
	c.CollectsData = true
	c.ThirdPartyComponents = true
	c.ExportCompliance = true
	return c
}

func TestEULAConfig_Restrictions(t *testing.T) {
	t.Parallel()

	c := fullEULAConfig()
	got := c.restrictions()
	require.Len(t, got, 6+len(restrictionTail))
	assert.True(t, strings.HasPrefix(got[0], "Reverse engineer"))
	assert.True(t, strings.HasPrefix(got[5], "Export or re-export"))
	assert.Equal(t, restrictionTail, got[6:])

	assert.Equal(t, restrictionTail, EULAConfig{}.restrictions())
}

func TestGenerateEULA_FreeLicense(t *testing.T) {
	t.Parallel()

	c := fullEULAConfig()
	c.LicenseType = LicenseFree
	got := GenerateEULA(c)

	for _, absent := range []string{"License Fees", "subscription", "Subscription", "license fee", "non-refundable", "payment"} {
		assert.NotContains(t, got, absent)
	}
	assert.Contains(t, got, "at no charge.")
	for _, tail := range restrictionTail {
		assert.Contains(t, got, "- "+tail)
	}
	assert.Equal(t, "3", labels(c)["restrictions"])
}

func TestGenerateEULA_LicenseGrant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		license LicenseType
		want    string
	}{
		{LicensePerpetual, "grants you a perpetual, non-exclusive"},
		{LicenseSubscription, "for the duration of your active subscription"},
		{LicenseFreemium, "Premium features are licensed separately"},
		{LicenseFree, "purposes at no charge."},
		{LicenseTrial, "to evaluate AcmeCAD for 30 days from installation"},
		{"bogus", "grants you a perpetual, non-exclusive"},
	}
	for _, tt := range tests {
		t.Run(string(tt.license), func(t *testing.T) {
			t.Parallel()
			c := fullEULAConfig()
			c.LicenseType = tt.license
			assert.Contains(t, GenerateEULA(c), tt.want)
		})
	}
}

func TestGenerateEULA_OptionalSections(t *testing.T) {
	t.Parallel()

	c := fullEULAConfig()
	assert.Equal(t, "10", labels(c)["termination"])
	assert.Contains(t, GenerateEULA(c), "if you fail to comply with Section 4 (Restrictions).")

	c.ProvidesUpdates = false
	c.CollectsData = false
	c.ThirdPartyComponents = false
	c.ExportCompliance = false
	assert.Equal(t, "6", labels(c)["termination"])
}

func TestGenerateEULA_UnnamedSoftware(t *testing.T) {
	t.Parallel()

	got := GenerateEULA(EULAConfig{})
	assert.Contains(t, got, "The Software is licensed, not sold.")
	assert.Contains(t, got, "before installing or using the Software.")
}
