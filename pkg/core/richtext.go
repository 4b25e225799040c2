package core

import "strings"

// Span is an inline child of a rich-text block carrying literal text.
type Span struct {
	Type string `json:"_type,omitempty" yaml:"type,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Block is one element of a rich-text document. Only blocks of type "block"
// carry displayable text; other types (images, embeds) are skipped during
// extraction.
type Block struct {
	Type     string `json:"_type,omitempty" yaml:"type,omitempty"`
	Children []Span `json:"children,omitempty" yaml:"children,omitempty"`
}

// RichText is an ordered sequence of blocks as stored by the CMS.
type RichText []Block

// PlainText flattens rich text into display paragraphs. For each text block
// the children are concatenated and trimmed; blocks that come out empty are
// dropped. Order is preserved and the input is never mutated, so extraction
// is idempotent.
func (rt RichText) PlainText() []string {
	if len(rt) == 0 {
		return nil
	}
	out := make([]string, 0, len(rt))
	for _, block := range rt {
		if block.Type != "" && block.Type != "block" {
			continue
		}
		var b strings.Builder
		for _, child := range block.Children {
			b.WriteString(child.Text)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			out = append(out, text)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
