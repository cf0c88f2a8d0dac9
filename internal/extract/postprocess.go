package extract

import "github.com/heartmarshall/wiktparse/internal/domain"

// conjSharePairs lists the (recipient, donor) part-of-speech pairs
// allowed to share an inflection table, beyond identical parts of
// speech.
var conjSharePairs = map[[2]string]bool{
	{"noun", "adj"}:  true,
	{"noun", "name"}: true,
	{"name", "noun"}: true,
	{"name", "adj"}:  true,
	{"adj", "noun"}:  true,
	{"adj", "name"}:  true,
}

// postprocess runs the corpus-level passes over one language group:
// conjugation sharing between compatible parts of speech, then topic
// propagation from the group's last record.
func postprocess(records []domain.Record) {
	shareConjugations(records)
	propagateTopics(records)
}

func shareConjugations(records []domain.Record) {
	for i := range records {
		if len(records[i].Conjugation) > 0 {
			continue
		}
		for j := range records {
			if i == j || len(records[j].Conjugation) == 0 {
				continue
			}
			if conjShareAllowed(&records[i], &records[j]) {
				records[i].Conjugation = append(records[i].Conjugation, records[j].Conjugation...)
				break
			}
		}
	}
}

func conjShareAllowed(recipient, donor *domain.Record) bool {
	if recipient.POS == donor.POS {
		return true
	}
	if conjSharePairs[[2]string{recipient.POS, donor.POS}] {
		return true
	}
	// A verb's table serves an adjective reading of its participle.
	return donor.POS == "verb" && recipient.POS == "adj" && recipient.HasTag("participle")
}

// propagateTopics copies topics seen only on the last record of the
// group to every other record. Category links sit at the end of an
// article, so their topics land on the last sense walked; after the
// copy every record in the group, source included, carries them marked
// inaccurate because the granularity is the article, not the sense.
func propagateTopics(records []domain.Record) {
	if len(records) < 2 {
		return
	}
	last := &records[len(records)-1]
	if len(last.Topics) == 0 {
		return
	}
	for i := range records[:len(records)-1] {
		for _, t := range last.Topics {
			records[i].Topics = append(records[i].Topics, domain.Topic{Word: t.Word, Inaccurate: true})
		}
	}
	for i := range last.Topics {
		last.Topics[i].Inaccurate = true
	}
}
