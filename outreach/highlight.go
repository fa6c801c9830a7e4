package outreach

// Segment is one span of template content: either plain text or a variable
// token (braces included in Text, name in Name).
type Segment struct {
	Text     string
	Name     string
	Variable bool
}

// Highlighter iterates the segments of a template, alternating plain text
// and variable spans in content order. Zero-length segments are skipped.
// The iterator is restartable via Reset.
type Highlighter struct {
	content string
	pos     int
}

// NewHighlighter ...
func NewHighlighter(content string) *Highlighter {
	return &Highlighter{content: content}
}

// Reset rewinds the iterator to the start of the content.
func (h *Highlighter) Reset() {
	h.pos = 0
}

// Next returns the next segment, lazily scanning the content. The second
// result is false when the content is exhausted.
func (h *Highlighter) Next() (Segment, bool) {
	if h.pos >= len(h.content) {
		return Segment{}, false
	}

	rest := h.content[h.pos:]
	loc := varPattern.FindStringIndex(rest)
	if loc == nil {
		seg := Segment{Text: rest}
		h.pos = len(h.content)
		return seg, true
	}

	if loc[0] > 0 {
		seg := Segment{Text: rest[:loc[0]]}
		h.pos += loc[0]
		return seg, true
	}

	token := rest[loc[0]:loc[1]]
	h.pos += loc[1]
	return Segment{
		Text:     token,
		Name:     token[1 : len(token)-1],
		Variable: true,
	}, true
}

// Highlight collects all segments of the content.
func Highlight(content string) []Segment {
	h := NewHighlighter(content)

	var segments []Segment
	for {
		seg, ok := h.Next()
		if !ok {
			return segments
		}
		segments = append(segments, seg)
	}
}
