package pipeline

import (
	"html"
	"strings"
)

// pageTemplate wraps a converted fragment in a standalone HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{title}}</title>
{{style}}</head>
<body>
<main class="document">
{{body}}</main>
</body>
</html>
`

// defaultLang is used when Page.Lang is empty.
const defaultLang = "en"

// Page describes the document an HTML fragment is wrapped in.
type Page struct {
	Title string
	Lang  string
	CSS   string
}

// WrapPage returns body inside a complete HTML document with p.CSS inlined.
func WrapPage(p Page, body string) string {
	lang := p.Lang
	if lang == "" {
		lang = defaultLang
	}
	title := p.Title
	if title == "" {
		title = "Document"
	}
	style := ""
	if strings.TrimSpace(p.CSS) != "" {
		style = "<style>\n" + sanitizeCSS(p.CSS) + "\n</style>\n"
	}

	return strings.NewReplacer(
		"{{lang}}", html.EscapeString(lang),
		"{{title}}", html.EscapeString(title),
		"{{style}}", style,
		"{{body}}", body,
	).Replace(pageTemplate)
}

// sanitizeCSS escapes "</" so stylesheet content cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// DocumentTitle returns the text of the first level-1 ATX heading, or "".
func DocumentTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return stripInline(strings.TrimSpace(strings.TrimRight(line[2:], "# ")))
		}
	}
	return ""
}
