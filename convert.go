package policygen

import (
	"context"
	"fmt"
	"strings"

	"github.com/ElSguidge/policygen/internal/assets"
	"github.com/ElSguidge/policygen/internal/pipeline"
)

// Compile-time interface checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Shared conversion stages. Both are stateless and safe for concurrent use.
var (
	preprocessor  pipeline.MarkdownPreprocessor = &pipeline.CommonMarkPreprocessor{}
	htmlConverter pipeline.HTMLConverter        = pipeline.NewGoldmarkConverter()
)

// HTMLOption configures ToHTML.
type HTMLOption func(*htmlOptions)

type htmlOptions struct {
	title  string
	lang   string
	css    string
	cssSet bool
}

// WithTitle sets the <title>. By default it is the document's first heading.
func WithTitle(title string) HTMLOption {
	return func(o *htmlOptions) { o.title = title }
}

// WithLang sets the lang attribute of the <html> element.
func WithLang(lang string) HTMLOption {
	return func(o *htmlOptions) { o.lang = lang }
}

// WithCSS replaces the built-in stylesheet. An empty string omits styling.
func WithCSS(css string) HTMLOption {
	return func(o *htmlOptions) {
		o.css = css
		o.cssSet = true
	}
}

// ToHTML renders markdown as a standalone HTML document with an inline
// stylesheet. Table cells holding a risk label (LOW, MEDIUM, HIGH,
// EXTREME) or a checkbox marker ([X], [ ]) get classes for styling.
func ToHTML(ctx context.Context, markdown string, opts ...HTMLOption) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", ErrEmptyMarkdown
	}

	o := htmlOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.cssSet {
		css, err := assets.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return "", fmt.Errorf("loading default style: %w", err)
		}
		o.css = css
	}
	if o.title == "" {
		o.title = pipeline.DocumentTitle(markdown)
	}

	md := preprocessor.PreprocessMarkdown(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := htmlConverter.ToHTML(ctx, md)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	body = pipeline.ConvertMarkPlaceholders(body)

	body, err = pipeline.AnnotateCells(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}

	return pipeline.WrapPage(pipeline.Page{Title: o.title, Lang: o.lang, CSS: o.css}, body), nil
}

// ToPlainText renders markdown as plain text: headings underlined, bullets
// as "•", emphasis and table pipes removed, links as "text (url)".
func ToPlainText(markdown string) string {
	return pipeline.ToPlainText(markdown)
}
