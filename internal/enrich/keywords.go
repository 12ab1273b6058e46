package enrich

import (
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/reviewlead-cli/internal/model"
	"github.com/sells-group/reviewlead-cli/internal/sentiment"
)

// maxKeywords caps how many complaint terms a record reports.
const maxKeywords = 5

// ComplaintLexicon is an ordered list of complaint terms. Enumeration
// order is the tie-break for equal counts, so it must stay stable.
type ComplaintLexicon []string

// LoadComplaintLexicon reads a complaint-term list from a YAML file.
func LoadComplaintLexicon(path string) (ComplaintLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: read complaint lexicon file")
	}

	var lex ComplaintLexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, eris.Wrap(err, "enrich: parse complaint lexicon yaml")
	}
	if len(lex) == 0 {
		return nil, eris.New("enrich: complaint lexicon file has no entries")
	}
	return lex, nil
}

// DefaultComplaintLexicon returns the embedded complaint-term table.
func DefaultComplaintLexicon() ComplaintLexicon {
	return ComplaintLexicon{
		"rude",
		"slow",
		"dirty",
		"expensive",
		"overpriced",
		"wait",
		"waiting",
		"cold",
		"stale",
		"broken",
		"unprofessional",
		"scam",
		"fraud",
		"refund",
		"cancelled",
		"ignored",
		"poor service",
		"bad service",
		"never again",
		"terrible",
		"horrible",
		"disgusting",
		"disappointed",
		"avoid",
	}
}

// NegativeKeywords counts complaint-term occurrences across negative
// reviews. A review is negative when it is rated 2 or below or when its
// freshly computed sentiment label is negative; any sentiment stored on
// the review is ignored here. Returns at most five terms, count
// descending, ties broken by lexicon order.
func NegativeKeywords(reviews []model.Review, analyzer *sentiment.Analyzer, lexicon ComplaintLexicon) []model.KeywordCount {
	var negative []string
	for _, r := range reviews {
		if r.Rating <= 2 || analyzer.Analyze(r.Text).Label == model.SentimentNegative {
			if r.Text != "" {
				negative = append(negative, strings.ToLower(r.Text))
			}
		}
	}
	if len(negative) == 0 {
		return nil
	}

	type ranked struct {
		word  string
		count int
		order int
	}
	var hits []ranked
	for i, term := range lexicon {
		count := 0
		for _, text := range negative {
			count += strings.Count(text, term)
		}
		if count > 0 {
			hits = append(hits, ranked{word: term, count: count, order: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].order < hits[j].order
	})

	if len(hits) > maxKeywords {
		hits = hits[:maxKeywords]
	}

	result := make([]model.KeywordCount, len(hits))
	for i, h := range hits {
		result[i] = model.KeywordCount{Word: h.word, Count: h.count}
	}
	return result
}
