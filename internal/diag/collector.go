// Package diag accumulates non-fatal diagnostics for one extraction run.
// A Collector is owned by a single page walk at a time; parallel drivers
// give each worker its own Collector and Merge them afterwards.
package diag

import (
	"fmt"
	"log/slog"
)

// Severity classifies a diagnostic entry.
type Severity string

const (
	SeverityDebug   Severity = "DEBUG"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

func (s Severity) String() string { return string(s) }

// Entry is one recorded diagnostic.
type Entry struct {
	Severity Severity
	Message  string
	// Context identifies where the diagnostic originated: a template
	// name, a section title, or a page title.
	Context string
}

// Collector gathers diagnostics and coverage counters. It is not safe
// for concurrent use; ownership follows the page walk.
type Collector struct {
	log *slog.Logger

	entries []Entry

	// Unrecognized template invocations by "name (context)".
	UnrecognizedTemplates map[string]int

	// Section headings that matched no known heading kind, by title.
	SectionCounts map[string]int
}

// New creates a Collector. logger may be nil; when set, warnings and
// errors are also echoed to it.
func New(logger *slog.Logger) *Collector {
	return &Collector{
		log:                   logger,
		UnrecognizedTemplates: make(map[string]int),
		SectionCounts:         make(map[string]int),
	}
}

// Entries returns all recorded diagnostics in order.
func (c *Collector) Entries() []Entry { return c.entries }

// CountBySeverity returns the number of entries with the given severity.
func (c *Collector) CountBySeverity(s Severity) int {
	n := 0
	for _, e := range c.entries {
		if e.Severity == s {
			n++
		}
	}
	return n
}

func (c *Collector) add(sev Severity, context, format string, args ...any) {
	e := Entry{Severity: sev, Message: fmt.Sprintf(format, args...), Context: context}
	c.entries = append(c.entries, e)
	if c.log == nil {
		return
	}
	switch sev {
	case SeverityWarning:
		c.log.Warn(e.Message, slog.String("context", context))
	case SeverityError:
		c.log.Error(e.Message, slog.String("context", context))
	default:
		c.log.Debug(e.Message, slog.String("context", context))
	}
}

// Debugf records a debug-level diagnostic.
func (c *Collector) Debugf(context, format string, args ...any) {
	c.add(SeverityDebug, context, format, args...)
}

// Warningf records a warning. Processing always continues.
func (c *Collector) Warningf(context, format string, args ...any) {
	c.add(SeverityWarning, context, format, args...)
}

// Errorf records an error-level diagnostic. Errors here are still
// non-fatal: the walk continues past the offending node.
func (c *Collector) Errorf(context, format string, args ...any) {
	c.add(SeverityError, context, format, args...)
}

// UnrecognizedTemplate records a template invocation that matched no
// rule, family pattern or ignore entry. context names the caller
// ("inside gloss", "linkage", "pronunciation", "translation").
func (c *Collector) UnrecognizedTemplate(name, context string) {
	c.UnrecognizedTemplates[name+" ("+context+")"]++
	c.add(SeverityDebug, name, "unrecognized template in %s", context)
}

// UnknownValue records a template argument value outside its expected
// enumerated set. The value contributes nothing to the output.
func (c *Collector) UnknownValue(template, value string) {
	c.add(SeverityWarning, template, "unknown value %q", value)
}

// MergeConflict records two scopes asserting different scalar values
// for the same field. The first value wins.
func (c *Collector) MergeConflict(field, kept, dropped string) {
	c.add(SeverityWarning, field, "conflicting values for %s: %q vs %q", field, kept, dropped)
}

// CountSection bumps the counter for an unrecognized section heading.
func (c *Collector) CountSection(title string) {
	c.SectionCounts[title]++
}

// Merge folds other into c. Used by parallel page drivers to combine
// per-worker collectors after all pages complete.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.entries = append(c.entries, other.entries...)
	for k, v := range other.UnrecognizedTemplates {
		c.UnrecognizedTemplates[k] += v
	}
	for k, v := range other.SectionCounts {
		c.SectionCounts[k] += v
	}
}
