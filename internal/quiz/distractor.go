package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/vocabcoach/pkg/models"
)

// How far apart two items may be created and still count as "learned
// around the same time" for distractor selection.
const recencyWindow = 14 * 24 * time.Hour

// Meaning lengths within this many characters count as similar, which
// makes a distractor less obviously wrong.
const lengthSimilarity = 10

// OptionSet is the answer block for one question: the correct answer
// plus three distractors, shuffled together.
type OptionSet struct {
	CorrectAnswer string
	Options       []string
}

// Generator builds wrong answers for multiple-choice questions. The
// random source is injectable so tests can seed it.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds the 4-option answer block for the target item. Three
// distractors are drawn from the pool through layered strategies: same
// source, same level, learned around the same time, then random fill.
// Each of the first three strategies contributes at most one distractor.
// When the pool cannot supply three distinct wrong answers, the missing
// slots are padded with synthetic placeholders so the quiz always shows
// exactly 4 options.
func (g *Generator) Generate(target models.VocabularyItem, pool []models.VocabularyItem, difficulty models.Difficulty) OptionSet {
	// Candidacy: never the target itself, never anything that spells
	// the correct answer.
	candidates := make([]models.VocabularyItem, 0, len(pool))
	for _, item := range pool {
		if item.ID == target.ID || item.Meaning == target.Meaning {
			continue
		}
		candidates = append(candidates, item)
	}

	picked := make([]string, 0, 3)
	taken := map[string]bool{target.Meaning: true}

	pick := func(match func(models.VocabularyItem) bool) {
		if len(picked) >= 3 {
			return
		}
		eligible := make([]models.VocabularyItem, 0, len(candidates))
		for _, c := range candidates {
			if !taken[c.Meaning] && match(c) {
				eligible = append(eligible, c)
			}
		}
		if len(eligible) == 0 {
			return
		}
		chosen := g.choose(eligible, target, difficulty)
		picked = append(picked, chosen.Meaning)
		taken[chosen.Meaning] = true
	}

	// Strategy 1: same source.
	if target.SourceID != "" {
		pick(func(c models.VocabularyItem) bool { return c.SourceID == target.SourceID })
	}
	// Strategy 2: same level.
	pick(func(c models.VocabularyItem) bool { return c.LevelTag == target.LevelTag })
	// Strategy 3: learned around the same time.
	pick(func(c models.VocabularyItem) bool {
		d := c.CreatedAt.Sub(target.CreatedAt)
		if d < 0 {
			d = -d
		}
		return d <= recencyWindow
	})
	// Strategy 4: random fill until 3 distractors or candidates run out.
	for len(picked) < 3 {
		remaining := make([]models.VocabularyItem, 0, len(candidates))
		for _, c := range candidates {
			if !taken[c.Meaning] {
				remaining = append(remaining, c)
			}
		}
		if len(remaining) == 0 {
			break
		}
		chosen := remaining[g.rng.Intn(len(remaining))]
		picked = append(picked, chosen.Meaning)
		taken[chosen.Meaning] = true
	}

	// Pad with placeholders distinct from every real answer.
	for n := 1; len(picked) < 3; n++ {
		placeholder := fmt.Sprintf("Option %d", n)
		if taken[placeholder] {
			continue
		}
		picked = append(picked, placeholder)
		taken[placeholder] = true
	}

	options := append(picked, target.Meaning)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return OptionSet{CorrectAnswer: target.Meaning, Options: options}
}

// choose picks one of the eligible candidates at random, biased by
// difficulty: medium and hard questions prefer meanings whose length is
// close to the target's, easy questions prefer length-dissimilar ones.
func (g *Generator) choose(eligible []models.VocabularyItem, target models.VocabularyItem, difficulty models.Difficulty) models.VocabularyItem {
	preferred := make([]models.VocabularyItem, 0, len(eligible))
	for _, c := range eligible {
		if lengthSimilar(c.Meaning, target.Meaning) != (difficulty == models.DifficultyEasy) {
			preferred = append(preferred, c)
		}
	}
	if len(preferred) > 0 {
		return preferred[g.rng.Intn(len(preferred))]
	}
	return eligible[g.rng.Intn(len(eligible))]
}

func lengthSimilar(a, b string) bool {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d <= lengthSimilarity
}
