package policygen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML_SWMSBadges(t *testing.T) {
	t.Parallel()

	c := threeStepSWMS()
	c.HighRiskWork = []string{"falls"}
	got, err := ToHTML(context.Background(), GenerateSWMS(c))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>Safe Work Method Statement (SWMS)</title>")
	assert.Contains(t, got, "<style>")
	assert.Contains(t, got, `<td class="risk risk-extreme">EXTREME</td>`)
	assert.Contains(t, got, `<td class="checkbox checkbox-checked">[X]</td>`)
	assert.Contains(t, got, `<td class="checkbox checkbox-unchecked">[ ]</td>`)
}

func TestToHTML_Options(t *testing.T) {
	t.Parallel()

	md := GenerateDisclaimer(DefaultDisclaimerConfig())

	got, err := ToHTML(context.Background(), md, WithTitle("Custom"), WithLang("en-AU"), WithCSS(""))
	require.NoError(t, err)
	assert.Contains(t, got, "<title>Custom</title>")
	assert.Contains(t, got, `<html lang="en-AU">`)
	assert.NotContains(t, got, "<style>")

	got, err = ToHTML(context.Background(), md, WithCSS("h1 { color: teal; }"))
	require.NoError(t, err)
	assert.Contains(t, got, "h1 { color: teal; }")
}

func TestToHTML_Errors(t *testing.T) {
	t.Parallel()

	_, err := ToHTML(context.Background(), "  \n")
	assert.ErrorIs(t, err, ErrEmptyMarkdown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ToHTML(ctx, "# Title")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToPlainText_Assembled(t *testing.T) {
	t.Parallel()

	cfg := fullPrivacyConfig()
	got := ToPlainText(GeneratePrivacyPolicy(cfg))

	assert.True(t, strings.HasPrefix(got, "Privacy Policy\n==============\n"))
	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "## ")
	assert.NotContains(t, got, "|---|")
	assert.Contains(t, got, "Google Analytics")
}
