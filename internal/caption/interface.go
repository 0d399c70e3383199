package caption

// Parser decodes subtitle files into timed segments.
type Parser interface {
	ParseFile(path string) ([]Segment, error)
}
