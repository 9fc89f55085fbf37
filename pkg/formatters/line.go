package formatters

import (
	"github.com/wayneeseguin/minlog/internal/buffer"
	"github.com/wayneeseguin/minlog/pkg/types"
)

// Line assembles complete log lines from a label table and an optional
// fixed tag inserted between the timestamp and the label. The stdout
// logger uses the tag for its pid marker; the file logger leaves it
// empty. The zero value formats with plain labels and no tag.
type Line struct {
	// Colored selects ColorLabels over PlainLabels.
	Colored bool
	// Tag is emitted verbatim right after the timestamp. May be empty.
	Tag string
}

// Format renders '<timestamp><tag><label><message>\n' in a single pass
// on a pooled buffer. The message is not inspected or escaped; embedded
// newlines pass through untouched.
func (l Line) Format(level types.Level, message string) string {
	buf := buffer.Get()
	defer buffer.Put(buf)

	buf.WriteString(Timestamp())
	buf.WriteString(l.Tag)
	buf.WriteString(Label(level, l.Colored))
	buf.WriteString(message)
	buf.WriteByte('\n')
	return buf.String()
}
