package extract

import (
	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
)

// scopes holds the staging buffers for one language walk. Ownership is
// exclusive to the walk; nothing here survives the call that created it.
//
// A record captures fields at the level where they were observed. Flushing
// merges the outer scope into every record staged beneath it, so a sense
// record ends up carrying its own fields plus the part-of-speech,
// etymology and base fields, first writer winning on scalars.
type scopes struct {
	base  domain.Record
	etym  domain.Record
	pos   domain.Record
	sense domain.Record

	// etymOpen/posOpen track which scope is the innermost active one,
	// which decides where section extractors write their output.
	etymOpen bool
	posOpen  bool

	posRecords  []domain.Record
	etymRecords []domain.Record
	page        []domain.Record
}

func newScopes(word, lang, code string) *scopes {
	return &scopes{
		base: domain.Record{Word: word, Lang: lang, LangCode: code},
	}
}

// target returns the record that section-level extractors should write
// into: the part-of-speech scope when one is the innermost active scope,
// else the etymology scope, else the base.
func (s *scopes) target() *domain.Record {
	if s.posOpen {
		return &s.pos
	}
	if s.etymOpen {
		return &s.etym
	}
	return &s.base
}

// pronTarget is the destination for pronunciation variants: the
// etymology scope when one is open, else the page base.
func (s *scopes) pronTarget() *domain.Record {
	if s.etymOpen {
		return &s.etym
	}
	return &s.base
}

// pushSense stages the current sense as one pending record. An empty
// sense scope must not emit.
func (s *scopes) pushSense() {
	if s.sense.IsEmpty() {
		s.sense = domain.Record{}
		return
	}
	s.posRecords = append(s.posRecords, s.sense)
	s.sense = domain.Record{}
}

// pushPOS flushes the sense scope, merges the part-of-speech scope into
// every staged sense record and stages the results at etymology level.
// A part-of-speech scope with no senses still emits one record.
func (s *scopes) pushPOS(dc *diag.Collector) {
	s.pushSense()
	if len(s.posRecords) == 0 {
		if !s.pos.IsEmpty() {
			s.etymRecords = append(s.etymRecords, s.pos)
		}
	} else {
		for i := range s.posRecords {
			rec := s.posRecords[i]
			rec.MergeFrom(&s.pos, dc.MergeConflict)
			s.etymRecords = append(s.etymRecords, rec)
		}
	}
	s.pos = domain.Record{}
	s.posRecords = nil
	s.posOpen = false
}

// pushEtym flushes the scopes beneath it and stages the merged records
// at page level.
func (s *scopes) pushEtym(dc *diag.Collector) {
	s.pushPOS(dc)
	if len(s.etymRecords) == 0 {
		if !s.etym.IsEmpty() {
			s.page = append(s.page, s.etym)
		}
	} else {
		for i := range s.etymRecords {
			rec := s.etymRecords[i]
			rec.MergeFrom(&s.etym, dc.MergeConflict)
			s.page = append(s.page, rec)
		}
	}
	s.etym = domain.Record{}
	s.etymRecords = nil
	s.etymOpen = false
}

// finalize flushes everything still open, merges the base into each
// staged record and returns the finished records in document order.
func (s *scopes) finalize(dc *diag.Collector) []domain.Record {
	s.pushEtym(dc)
	if len(s.page) == 0 {
		// Sounds or other base-level content with no headings beneath
		// still yields one record.
		if s.base.IsEmpty() {
			return nil
		}
		return []domain.Record{s.base}
	}
	out := make([]domain.Record, 0, len(s.page))
	for i := range s.page {
		rec := s.page[i]
		rec.MergeFrom(&s.base, dc.MergeConflict)
		out = append(out, rec)
	}
	s.page = nil
	return out
}
