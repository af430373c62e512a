package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/autohext"
)

// Ensure LoggingParser implements autohext.DocumentParser.
var _ autohext.DocumentParser = (*LoggingParser)(nil)

// LoggingParser wraps a DocumentParser with debug logging.
type LoggingParser struct {
	next   autohext.DocumentParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next autohext.DocumentParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the resulting tree size.
func (p *LoggingParser) Parse(html string) (doc autohext.Document, err error) {
	defer func(begin time.Time) {
		p.log("parse document", len(html), doc, time.Since(begin), err)
	}(time.Now())
	return p.next.Parse(html)
}

// ParseFragment delegates to the wrapped parser and logs the resulting tree size.
func (p *LoggingParser) ParseFragment(html string) (doc autohext.Document, err error) {
	defer func(begin time.Time) {
		p.log("parse fragment", len(html), doc, time.Since(begin), err)
	}(time.Now())
	return p.next.ParseFragment(html)
}

func (p *LoggingParser) log(msg string, size int, doc autohext.Document, d time.Duration, err error) {
	nodes, roots, selected := 0, 0, 0
	if doc != nil {
		tree := doc.Tree()
		nodes = tree.Len()
		roots = len(tree.Roots())
		selected = len(tree.Selected())
	}
	p.logger.Debug(msg,
		"bytes", size,
		"nodes", nodes,
		"roots", roots,
		"selected", selected,
		"duration", d,
		"err", err,
	)
}
