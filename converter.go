package autohext

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML chunk into Markdown for previewing.
	Convert(html string) (string, error)
}
