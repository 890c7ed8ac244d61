package service

import (
	"math/rand"
	"sort"
	"time"

	"github.com/aliskhannn/amateur-radio-quiz/internal/domain/entities"
)

// BankBuilder assembles an exam out of the full question bank.
// It is not safe for concurrent use.
type BankBuilder struct {
	rng *rand.Rand
}

// NewBankBuilder creates a BankBuilder drawing randomness from rng.
// A nil rng is replaced by a time-seeded one.
func NewBankBuilder(rng *rand.Rand) *BankBuilder {
	if rng == nil {
		rng = NewRand(0)
	}
	return &BankBuilder{rng: rng}
}

// NewRand returns a random source seeded with seed, or with the current time when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Build shuffles records and selects at most targetCount of them.
//
// With stratify set, every category observed in records gets the same quota
// ceil(targetCount / categories) and the shuffled list is walked once, admitting
// a record while its category is under quota. Short categories make the result
// smaller than targetCount; the ceiling can make it larger by up to
// categories-1 records.
func (b *BankBuilder) Build(records []entities.QuestionRecord, targetCount int, stratify bool) []entities.QuestionRecord {
	if len(records) == 0 || targetCount <= 0 {
		return nil
	}
	if targetCount > len(records) {
		targetCount = len(records)
	}

	shuffled := b.shuffled(records)
	if !stratify {
		return shuffled[:targetCount]
	}

	cutoff := categoryCutoff(targetCount, len(Categories(records)))
	counts := make(map[string]int)
	out := make([]entities.QuestionRecord, 0, targetCount)
	for _, r := range shuffled {
		if counts[r.Category] >= cutoff {
			continue
		}
		out = append(out, r)
		counts[r.Category]++
	}

	return out
}

// shuffled returns a shuffled copy of the input slice.
func (b *BankBuilder) shuffled(in []entities.QuestionRecord) []entities.QuestionRecord {
	out := append([]entities.QuestionRecord(nil), in...)
	b.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Categories returns the distinct categories of records in ascending order.
func Categories(records []entities.QuestionRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}

// categoryCutoff returns ceil(target / categories).
func categoryCutoff(target, categories int) int {
	if categories <= 0 {
		return 0
	}
	return (target + categories - 1) / categories
}
