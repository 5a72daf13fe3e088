package slog

import (
	"log/slog"
	"time"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
)

// Ensure LoggingParser implements rosh.ComponentParser and rosh.ComponentMutator.
var (
	_ rosh.ComponentParser  = (*LoggingParser)(nil)
	_ rosh.ComponentMutator = (*LoggingMutator)(nil)
)

// LoggingParser wraps a ComponentParser with debug logging.
type LoggingParser struct {
	next   rosh.ComponentParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next rosh.ComponentParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseComponents delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseComponents(html, css string) (components []*rosh.Component) {
	defer func(begin time.Time) {
		p.logger.Debug("parse components",
			"bytes", len(html),
			"count", len(components),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.ParseComponents(html, css)
}

// LoggingMutator wraps a ComponentMutator with debug logging.
type LoggingMutator struct {
	next   rosh.ComponentMutator
	logger *slog.Logger
}

// NewLoggingMutator creates a new LoggingMutator.
func NewLoggingMutator(next rosh.ComponentMutator, logger *slog.Logger) *LoggingMutator {
	return &LoggingMutator{next: next, logger: logger}
}

// UpdateComponent delegates to the wrapped mutator and logs whether the
// document changed.
func (m *LoggingMutator) UpdateComponent(html, id string, upd rosh.ComponentUpdate) (out string) {
	defer func(begin time.Time) {
		m.logger.Debug("update component",
			"id", id,
			"properties", len(upd.Properties),
			"styles", len(upd.Styles),
			"content", upd.Content != nil,
			"changed", out != html,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return m.next.UpdateComponent(html, id, upd)
}
