package sentiment

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

func TestAnalyze_EmptyText(t *testing.T) {
	a := NewAnalyzer(nil)
	s := a.Analyze("")
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, model.SentimentNeutral, s.Label)
	assert.Empty(t, s.PositiveWords)
	assert.Empty(t, s.NegativeWords)
}

func TestAnalyze_Positive(t *testing.T) {
	a := NewAnalyzer(nil)
	s := a.Analyze("Great food and friendly staff")
	assert.Positive(t, s.Score)
	assert.Equal(t, model.SentimentPositive, s.Label)
	assert.Contains(t, s.PositiveWords, "great")
	assert.Contains(t, s.PositiveWords, "friendly")
}

func TestAnalyze_Negative(t *testing.T) {
	a := NewAnalyzer(nil)
	s := a.Analyze("Terrible service, rude and slow.")
	assert.Negative(t, s.Score)
	assert.Equal(t, model.SentimentNegative, s.Label)
	assert.Contains(t, s.NegativeWords, "terrible")
	assert.Contains(t, s.NegativeWords, "rude")
	assert.Contains(t, s.NegativeWords, "slow")
}

func TestAnalyze_MixedCancelsToNeutral(t *testing.T) {
	lex := Lexicon{
		{Word: "good", Weight: 2},
		{Word: "bad", Weight: -2},
	}
	a := NewAnalyzer(lex)
	s := a.Analyze("good but bad")
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, model.SentimentNeutral, s.Label)
}

func TestAnalyze_Comparative(t *testing.T) {
	lex := Lexicon{{Word: "great", Weight: 3}}
	a := NewAnalyzer(lex)
	s := a.Analyze("great place today")
	// 3 points over 3 tokens
	assert.InDelta(t, 1.0, s.Comparative, 0.001)
}

func TestAnalyze_CaseAndPunctuation(t *testing.T) {
	a := NewAnalyzer(nil)
	s := a.Analyze("GREAT!!! Absolutely great.")
	assert.Equal(t, []string{"great", "great"}, s.PositiveWords)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := NewAnalyzer(nil)
	first := a.Analyze("horrible wait, never again")
	second := a.Analyze("horrible wait, never again")
	assert.Equal(t, first, second)
}

func TestLoadLexicon_FromYAML(t *testing.T) {
	path := t.TempDir() + "/lex.yaml"
	data := "- word: splendid\n  weight: 4\n- word: dreadful\n  weight: -4\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	require.Len(t, lex, 2)
	assert.Equal(t, "splendid", lex[0].Word)
	assert.Equal(t, -4, lex[1].Weight)

	a := NewAnalyzer(lex)
	assert.Equal(t, model.SentimentNegative, a.Analyze("dreadful").Label)
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	_, err := LoadLexicon(t.TempDir() + "/absent.yaml")
	assert.Error(t, err)
}

func TestLoadLexicon_Empty(t *testing.T) {
	path := t.TempDir() + "/empty.yaml"
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))
	_, err := LoadLexicon(path)
	assert.Error(t, err)
}
