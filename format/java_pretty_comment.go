package format

import "strings"

// emitCommentsBefore writes, each on its own lines, the comments that start
// before the given source offset.
func (p *JavaPrettyPrinter) emitCommentsBefore(offset int) {
	for p.commentIndex < len(p.comments) {
		comment := p.comments[p.commentIndex]
		if comment.Span.Start.Offset >= offset {
			break
		}
		if !p.atLineStart {
			p.newline()
		}
		if comment.Span.Start.Line > p.lastLine+1 {
			p.newline()
		}
		p.writeIndent()
		p.write(reindentComment(comment.Text, strings.Repeat(p.indentStr, p.indent)))
		p.newline()
		p.lastLine = comment.Span.End.Line
		p.commentIndex++
	}
}

func (p *JavaPrettyPrinter) emitRemainingComments() {
	p.emitCommentsBefore(int(^uint(0) >> 1))
}

// emitTrailingLineComment emits a line comment on the given line if one exists.
// This is used to emit trailing comments that appear at the end of a line after code.
func (p *JavaPrettyPrinter) emitTrailingLineComment(line int) {
	if p.commentIndex >= len(p.comments) {
		return
	}
	comment := p.comments[p.commentIndex]
	if comment.Line && comment.Span.Start.Line == line {
		p.write(" ")
		p.write(comment.Text)
		p.lastLine = comment.Span.End.Line
		p.commentIndex++
	}
}

// reindentComment replaces the source indentation of a block comment's
// continuation lines with prefix.
func reindentComment(text, prefix string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if strings.HasPrefix(trimmed, "*") {
			trimmed = " " + trimmed
		}
		lines[i] = prefix + trimmed
	}
	return strings.Join(lines, "\n")
}
