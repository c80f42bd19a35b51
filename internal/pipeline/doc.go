// Package pipeline turns generated Markdown into export formats.
//
// Stages:
//   - Markdown preprocessing (line normalization, ==highlight== placeholders)
//   - Markdown to HTML conversion via Goldmark
//   - Cell annotation: risk labels and checkbox markers in table cells get
//     CSS classes so stylesheets can colour them
//   - Page wrapping with an inline stylesheet
//   - Markdown to plain text
//
// PDF rendering is handled by the root policygen package using headless
// Chrome (go-rod). Nothing here touches the filesystem or a browser.
package pipeline
