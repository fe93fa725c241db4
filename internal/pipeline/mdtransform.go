package pipeline

import (
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of body files saved by some editors.
const byteOrderMark = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// SourcePreprocessor normalizes raw body text before conversion.
type SourcePreprocessor struct{}

// PreprocessMarkdown removes a leading BOM and converts \r\n and \r to \n.
func (p *SourcePreprocessor) PreprocessMarkdown(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	return crlfOrCR.ReplaceAllString(content, "\n")
}
