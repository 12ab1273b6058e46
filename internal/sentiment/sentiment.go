package sentiment

import (
	"strings"
	"unicode"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// Analyzer scores free text against a word-polarity lexicon.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	weights map[string]int
}

// NewAnalyzer builds an Analyzer from the given lexicon. A nil lexicon
// falls back to the embedded default table.
func NewAnalyzer(lex Lexicon) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	weights := make(map[string]int, len(lex))
	for _, e := range lex {
		weights[e.Word] = e.Weight
	}
	return &Analyzer{weights: weights}
}

// Analyze computes the polarity of text. Empty text yields score 0 and a
// neutral label. The result depends only on the text and the lexicon.
func (a *Analyzer) Analyze(text string) model.Sentiment {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return model.Sentiment{Label: model.SentimentNeutral}
	}

	score := 0
	var positive, negative []string
	for _, tok := range tokens {
		w, ok := a.weights[tok]
		if !ok {
			continue
		}
		score += w
		if w > 0 {
			positive = append(positive, tok)
		} else if w < 0 {
			negative = append(negative, tok)
		}
	}

	label := model.SentimentNeutral
	switch {
	case score > 0:
		label = model.SentimentPositive
	case score < 0:
		label = model.SentimentNegative
	}

	return model.Sentiment{
		Score:         score,
		Comparative:   float64(score) / float64(len(tokens)),
		Label:         label,
		PositiveWords: positive,
		NegativeWords: negative,
	}
}

// tokenize lowercases text and splits it on non-letter runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
