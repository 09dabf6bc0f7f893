package bank

import (
	"context"
	"regexp"
	"strings"

	"github.com/iniiswil/speed-quiz/games"
)

const questionsDir = "questions"

// Prompt files are named {kind}-{category}.csv (or .txt), one prompt per
// line. Lines starting with # and blank lines are ignored.
var promptFilePattern = regexp.MustCompile(`^(speed|body)-([a-z0-9-]+)\.(csv|txt)$`)

func (b *Bank) loadQuestions(ctx context.Context) ([]games.QuestionItem, error) {
	names, err := b.source.List(ctx, questionsDir)
	if err != nil {
		// A missing collaborator is the same as empty content.
		return nil, nil
	}

	var items []games.QuestionItem
	for _, name := range names {
		match := promptFilePattern.FindStringSubmatch(strings.ToLower(name))
		if match == nil {
			continue
		}

		kind := games.QuestionKind(match[1])
		category := match[2]

		data, err := b.source.Read(ctx, questionsDir+"/"+name)
		if err != nil {
			// Per-file failures are tolerated; the pool is whatever loaded.
			continue
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			items = append(items, games.QuestionItem{
				Text:     line,
				Kind:     kind,
				Category: category,
			})
		}
	}

	return items, nil
}
