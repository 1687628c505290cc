package checkout

import (
	"fmt"
	"net/url"
	"strings"
)

const separator = "--------------------------------"

// MessageBuilder assembles a plain multi-line message. Encoding for the
// transport happens once, in EncodeForTransport.
type MessageBuilder struct {
	lines []string
}

// Linef appends a formatted line.
func (b *MessageBuilder) Linef(format string, args ...any) *MessageBuilder {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
	return b
}

// Lines appends pre-rendered lines verbatim.
func (b *MessageBuilder) Lines(lines ...string) *MessageBuilder {
	b.lines = append(b.lines, lines...)
	return b
}

// Blank appends an empty line.
func (b *MessageBuilder) Blank() *MessageBuilder {
	b.lines = append(b.lines, "")
	return b
}

// Separator appends the dashed rule used around the totals block.
func (b *MessageBuilder) Separator() *MessageBuilder {
	b.lines = append(b.lines, separator)
	return b
}

// String joins the lines with "\n".
func (b *MessageBuilder) String() string {
	return strings.Join(b.lines, "\n")
}

// EncodeForTransport percent-encodes msg for use as a query value. Spaces become
// %20 rather than '+', line breaks become %0A.
func EncodeForTransport(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

// HandoffURL joins the contact endpoint and the encoded message into the link
// the storefront opens.
func HandoffURL(endpoint, msg string) string {
	return strings.TrimRight(endpoint, "?") + "?text=" + EncodeForTransport(msg)
}
