package slack

// HeaderBlock returns a header block with plain text.
func HeaderBlock(text string) Block {
	return Block{
		Type: BlockTypeHeader,
		Text: &Text{Type: TextTypePlain, Text: text},
	}
}

// SectionBlock returns a section block with markdown text.
func SectionBlock(markdown string) Block {
	return Block{
		Type: BlockTypeSection,
		Text: &Text{Type: TextTypeMarkdown, Text: markdown},
	}
}

// FieldsBlock returns a section block with up to 10 markdown fields.
func FieldsBlock(fields ...string) Block {
	texts := make([]Text, 0, len(fields))
	for _, f := range fields {
		texts = append(texts, Text{Type: TextTypeMarkdown, Text: f})
	}
	return Block{
		Type:   BlockTypeSection,
		Fields: texts,
	}
}

// ContextBlock returns a context block with markdown elements.
func ContextBlock(elements ...string) Block {
	texts := make([]Text, 0, len(elements))
	for _, e := range elements {
		texts = append(texts, Text{Type: TextTypeMarkdown, Text: e})
	}
	return Block{
		Type:     BlockTypeContext,
		Elements: texts,
	}
}

// DividerBlock returns a divider block.
func DividerBlock() Block {
	return Block{Type: BlockTypeDivider}
}
