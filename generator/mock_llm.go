package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is an offline stand-in that never calls an external model. Its
// output exercises the whole pipeline: fenced, markdown-flavored, and with
// enough backlinks to clear the default acceptance gate.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	title := strings.TrimPrefix(prompt.User, articleRequestPrefix)

	var sb strings.Builder
	sb.WriteString("```html\n")
	sb.WriteString("<h1>" + title + "</h1>\n")
	sb.WriteString("<p>This is a **locally generated** placeholder article.</p>\n")
	for i := 1; i <= DefaultMinBacklinks; i++ {
		fmt.Fprintf(&sb, "<p>See <a href=\"%s/guide-%d\">our guide %d</a> for more.</p>\n",
			DefaultBacklinkDomain, i, i)
	}
	sb.WriteString("```\n")
	return sb.String(), nil
}
