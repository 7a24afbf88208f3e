package generator

// Prompt is the message set sent to the LLM.
type Prompt struct {
	System  string
	User    string
	History []Message
}

// Message carries one turn of prior context.
type Message struct {
	Role    string
	Content string
}

const articleRequestPrefix = "Write a blog post about: "

// BuildArticlePrompt seeds the conversation with the prompt template as prior
// user context and asks for a post about the given title.
func BuildArticlePrompt(template, title string) Prompt {
	return Prompt{
		User: articleRequestPrefix + title,
		History: []Message{
			{Role: "user", Content: template},
		},
	}
}
