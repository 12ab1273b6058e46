package sentiment

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Entry is one lexicon word with its polarity weight.
type Entry struct {
	Word   string `yaml:"word"`
	Weight int    `yaml:"weight"`
}

// Lexicon is an ordered word-polarity table. Order does not affect
// sentiment scoring but is preserved for reproducible serialization.
type Lexicon []Entry

// LoadLexicon reads a lexicon from a YAML file: a sequence of
// {word, weight} entries.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "sentiment: read lexicon file")
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, eris.Wrap(err, "sentiment: parse lexicon yaml")
	}
	if len(lex) == 0 {
		return nil, eris.New("sentiment: lexicon file has no entries")
	}
	return lex, nil
}

// DefaultLexicon returns the embedded AFINN-style polarity table used
// when no lexicon file is configured.
func DefaultLexicon() Lexicon {
	return Lexicon{
		{Word: "amazing", Weight: 4},
		{Word: "excellent", Weight: 3},
		{Word: "fantastic", Weight: 4},
		{Word: "great", Weight: 3},
		{Word: "wonderful", Weight: 4},
		{Word: "awesome", Weight: 4},
		{Word: "perfect", Weight: 3},
		{Word: "love", Weight: 3},
		{Word: "loved", Weight: 3},
		{Word: "best", Weight: 3},
		{Word: "good", Weight: 3},
		{Word: "nice", Weight: 3},
		{Word: "friendly", Weight: 2},
		{Word: "helpful", Weight: 2},
		{Word: "clean", Weight: 2},
		{Word: "fresh", Weight: 1},
		{Word: "fast", Weight: 1},
		{Word: "recommend", Weight: 2},
		{Word: "recommended", Weight: 2},
		{Word: "professional", Weight: 2},
		{Word: "delicious", Weight: 3},
		{Word: "tasty", Weight: 2},
		{Word: "happy", Weight: 3},
		{Word: "satisfied", Weight: 2},
		{Word: "bad", Weight: -3},
		{Word: "terrible", Weight: -3},
		{Word: "horrible", Weight: -3},
		{Word: "awful", Weight: -3},
		{Word: "worst", Weight: -3},
		{Word: "poor", Weight: -2},
		{Word: "hate", Weight: -3},
		{Word: "hated", Weight: -3},
		{Word: "disgusting", Weight: -3},
		{Word: "dirty", Weight: -2},
		{Word: "rude", Weight: -2},
		{Word: "slow", Weight: -2},
		{Word: "unprofessional", Weight: -2},
		{Word: "disappointed", Weight: -2},
		{Word: "disappointing", Weight: -2},
		{Word: "overpriced", Weight: -2},
		{Word: "expensive", Weight: -1},
		{Word: "cold", Weight: -1},
		{Word: "stale", Weight: -2},
		{Word: "broken", Weight: -2},
		{Word: "scam", Weight: -4},
		{Word: "fraud", Weight: -4},
		{Word: "refund", Weight: -1},
		{Word: "avoid", Weight: -2},
		{Word: "never", Weight: -1},
		{Word: "waiting", Weight: -1},
		{Word: "wait", Weight: -1},
		{Word: "ignored", Weight: -2},
		{Word: "cancelled", Weight: -1},
	}
}
