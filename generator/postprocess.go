package generator

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

// DefaultStyle is prepended when the model forgets to emit its own <style>
// block, so every saved file renders as a standalone page.
const DefaultStyle = `<style>
    body { font-family: Arial, sans-serif; line-height: 1.8; margin: 0; background-color: #ffffff; color: #000000; }
    h1 { font-size: 2.5rem; margin-top: 20px; border-bottom: 2px solid #000000; padding-bottom: 10px; }
    h2 { font-size: 2rem; margin-top: 30px; border-bottom: 1px solid #000000; padding-bottom: 5px; color: #000000; }
    p { margin: 15px 0; }
    ul { margin: 10px 0; padding-left: 20px; }
    ul li { margin-bottom: 10px; list-style-type: disc; }
    a { color: #000000; text-decoration: underline; }
    .callout { margin: 30px 0; padding: 20px; background-color: #f1f1f1; border: 1px solid #000000; text-align: center; }
</style>`

var (
	openFenceRe  = regexp.MustCompile("```html\\s*")
	closeFenceRe = regexp.MustCompile("```\\s*$")
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	extraLinesRe = regexp.MustCompile(`\n{3,}`)
	listMarkRe   = regexp.MustCompile(`(?m)^\s*[-*]\s`)
	brRe         = regexp.MustCompile(`<br\s*/>`)
	hrRe         = regexp.MustCompile(`<hr\s*/>`)
	tagGapRe     = regexp.MustCompile(`>\s+<`)

	anyHTMLTagRe = regexp.MustCompile(`(?i)</?(?:html|head|body|style|p|h[1-6]|div|span|a|ul|ol|li|br|hr|table|strong|em|blockquote)\b`)
)

// Preprocess cleans raw model output into presentable HTML. The substitution
// order is load-bearing: span conversion must run before entity unescaping,
// and newline collapsing before tag-gap reflow.
//
// The bold/italic conversion is a best-effort text filter, not a markdown
// parser; nested or unbalanced markers come out wrong.
func Preprocess(content string) string {
	content = stripFences(content)

	content = boldRe.ReplaceAllString(content, "<strong>$1</strong>")
	content = italicRe.ReplaceAllString(content, "<em>$1</em>")

	// Sequential on purpose: "&amp;lt;" must end up as "<".
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")

	content = extraLinesRe.ReplaceAllString(content, "\n\n")
	content = listMarkRe.ReplaceAllString(content, "")

	content = brRe.ReplaceAllString(content, "<br>")
	content = hrRe.ReplaceAllString(content, "<hr>")

	content = tagGapRe.ReplaceAllString(content, ">\n<")

	return strings.TrimSpace(content)
}

func stripFences(content string) string {
	content = openFenceRe.ReplaceAllString(content, "")
	return closeFenceRe.ReplaceAllString(content, "")
}

// EnsureHTML renders the content through goldmark when the model ignored the
// HTML instruction entirely and answered in plain markdown. Fences come off
// before the check so a fenced markdown body is not mistaken for code.
// Content that already carries any HTML tag is returned untouched; goldmark
// would strip the raw tags otherwise. Callers run Preprocess on the result.
func EnsureHTML(content string) (string, error) {
	stripped := stripFences(content)
	if anyHTMLTagRe.MatchString(stripped) {
		return content, nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(stripped), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CountBacklinks reports how many anchors point at the target domain.
func CountBacklinks(content, domain string) int {
	return strings.Count(content, `href="`+domain)
}
