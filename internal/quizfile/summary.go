package quizfile

import (
	"sort"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// CategorySummary aggregates the questions of one category.
type CategorySummary struct {
	Category  string
	Questions int
	Points    int
}

// Summarize groups questions by category, sorted by category name.
func Summarize(qs []quiz.Question) []CategorySummary {
	byCat := make(map[string]*CategorySummary)
	for i := range qs {
		c := byCat[qs[i].Category]
		if c == nil {
			c = &CategorySummary{Category: qs[i].Category}
			byCat[qs[i].Category] = c
		}
		c.Questions++
		c.Points += qs[i].Points
	}

	out := make([]CategorySummary, 0, len(byCat))
	for _, c := range byCat {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
