package policygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullCookieConfig() CookiePolicyConfig {
	c := DefaultCookiePolicyConfig()
	c.CompanyName = "Acme Pty Ltd"
	c.WebsiteURL = "https://acme.example"
	c.Email = "privacy@acme.example"
	c.EffectiveDate = "2025-06-30"
	c.UsesFunctional = true
	c.UsesTargeting = true
	c.UsesSocialMedia = true
	c.UsesGoogleAnalytics = true
	c.UsesStripe = true
	return c
}

func TestGenerateCookiePolicy_Categories(t *testing.T) {
	t.Parallel()

	c := fullCookieConfig()
	got := labels(c)
	assert.Equal(t, "2.1", got["essential"])
	assert.Equal(t, "2.5", got["social"])

	c.UsesPerformance = false
	got = labels(c)
	assert.NotContains(t, got, "performance")
	assert.Equal(t, "2.2", got["functional"])
	assert.Equal(t, "2.4", got["social"])
	assert.Contains(t, GenerateCookiePolicy(c),
		"We use the categories of cookies described in Section 2.1, Section 2.2, Section 2.3, and Section 2.4.")
}

func TestGenerateCookiePolicy_ThirdPartyTable(t *testing.T) {
	t.Parallel()

	got := GenerateCookiePolicy(fullCookieConfig())
	assert.Contains(t, got, "| Provider | Cookie | Purpose | Duration |")
	assert.Equal(t, 2, strings.Count(got, "| Google Analytics |"))
	assert.Equal(t, 2, strings.Count(got, "| Stripe |"))
	assert.Less(t, strings.Index(got, "| Google Analytics |"), strings.Index(got, "| Stripe |"))

	c := fullCookieConfig()
	c.UsesGoogleAnalytics, c.UsesStripe = false, false
	assert.NotContains(t, labels(c), "third-party")
	assert.Equal(t, "3", labels(c)["managing"])
}

func TestGenerateCookiePolicy_ConsentBanner(t *testing.T) {
	t.Parallel()

	c := fullCookieConfig()
	assert.Contains(t, GenerateCookiePolicy(c), "a cookie banner asks for your consent")

	c.HasConsentBanner = false
	assert.NotContains(t, GenerateCookiePolicy(c), "cookie banner")
}

func TestGenerateCookiePolicy_NoCategories(t *testing.T) {
	t.Parallel()

	got := GenerateCookiePolicy(CookiePolicyConfig{})
	assert.Contains(t, got, "We do not currently set any first-party cookies.")
	assert.Contains(t, got, "## 2. How We Use Cookies")
	assert.NotContains(t, got, "###")
}
