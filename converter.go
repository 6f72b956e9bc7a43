package novelgrab

// Converter renders extracted chapter HTML as Markdown text. It is the
// second half of an alternative extraction engine: an HTMLExtractor
// isolates the chapter markup, a Converter flattens it to text that the
// cleanup and validation passes can work on.
type Converter interface {
	Convert(html string) (string, error)
}
