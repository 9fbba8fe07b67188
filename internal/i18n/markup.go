package i18n

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// The biography is authored in Markdown with inline highlight spans. Inline
// HTML is let through goldmark and then cut down to this policy.
var (
	markdown = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

	bodyPolicy = func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowElements("p", "strong", "em", "br", "span")
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^highlight$`)).OnElements("span")
		return p
	}()
)

func renderBody(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(bodyPolicy.SanitizeBytes(buf.Bytes())), nil
}
