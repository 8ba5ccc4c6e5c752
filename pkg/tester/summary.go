package tester

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MarkerPass labels passed assertions in a summary.
	MarkerPass = "PASS"
	// MarkerFail labels failed assertions in a summary.
	MarkerFail = "FAIL"

	// NoPassedSentinel is the passed section when nothing passed.
	NoPassedSentinel = " => No tests passed :("
	// NoFailedSentinel is the failed section when nothing failed.
	NoFailedSentinel = " => No tests failed!"

	wrapWidth   = 60
	ruleWidth   = 78
	preOpen     = "<PRE>"
	preClose    = "</PRE>"
	trimCutset  = " \t\n\r\x00\x0B"
	wrapIndent  = 12
	linePrefix  = " => "
	lineDivider = " :: "
)

var (
	whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r ]+`)
	wrapBreak     = "\n" + strings.Repeat(" ", wrapIndent)
	rule          = strings.Repeat("-", ruleWidth)
)

// SummaryPassed returns one formatted line per passed assertion,
// or NoPassedSentinel.
func (r *Recorder) SummaryPassed() string {
	if r.CountPassed() == 0 {
		return NoPassedSentinel
	}
	return formatAll(r.passed, MarkerPass)
}

// SummaryFailed returns one formatted line per failed assertion,
// or NoFailedSentinel.
func (r *Recorder) SummaryFailed() string {
	if r.CountFailed() == 0 {
		return NoFailedSentinel
	}
	return formatAll(r.failed, MarkerFail)
}

// SummaryTotal returns the total, passing and failing counts.
func (r *Recorder) SummaryTotal() string {
	return fmt.Sprintf(
		" => Number of tests: %d\n"+
			" => Passing: %d\n"+
			" => Failing: %d",
		r.CountTotal(),
		r.CountPassed(),
		r.CountFailed(),
	)
}

// Summary returns the passed, failed and total sections separated
// by rule lines. Outside plain-text mode the text is wrapped in a
// <PRE> block.
func (r *Recorder) Summary() string {
	head, tail := preOpen, preClose
	if r.plainText {
		head, tail = "", ""
	}

	sections := []string{
		head,
		r.SummaryPassed(),
		r.SummaryFailed(),
		r.SummaryTotal(),
		tail,
	}

	return strings.TrimLeft(
		strings.Join(sections, "\n"+rule+"\n"),
		trimCutset,
	)
}

// FormatDescription renders a single summary line. Whitespace
// runs collapse to one space and the text wraps at 60 columns
// with continuation lines indented by 12 spaces.
func FormatDescription(description, marker string) string {
	text := strings.Trim(description, trimCutset)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = WordWrap(text, wrapWidth, wrapBreak)
	text = strings.Trim(text, trimCutset)
	return linePrefix + marker + lineDivider + text
}

func formatAll(descriptions []string, marker string) string {
	lines := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		lines = append(lines, FormatDescription(d, marker))
	}
	return strings.Join(lines, "\n")
}

// WordWrap breaks text at spaces so that no line exceeds width
// bytes, inserting brk at each break. Words longer than width are
// left intact. Occurrences of brk already present in text reset
// the line length.
func WordWrap(text string, width int, brk string) string {
	if text == "" || brk == "" {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	lastStart, lastSpace := 0, 0
	for cur := 0; cur < len(text); cur++ {
		switch {
		case text[cur] == brk[0] &&
			cur+len(brk) < len(text) &&
			text[cur:cur+len(brk)] == brk:
			sb.WriteString(text[lastStart : cur+len(brk)])
			cur += len(brk) - 1
			lastStart = cur + 1
			lastSpace = lastStart
		case text[cur] == ' ':
			if cur-lastStart >= width {
				sb.WriteString(text[lastStart:cur])
				sb.WriteString(brk)
				lastStart = cur + 1
			}
			lastSpace = cur
		case cur-lastStart >= width && lastStart < lastSpace:
			sb.WriteString(text[lastStart:lastSpace])
			sb.WriteString(brk)
			lastSpace++
			lastStart = lastSpace
		}
	}

	if lastStart < len(text) {
		sb.WriteString(text[lastStart:])
	}
	return sb.String()
}
