package bank

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/iniiswil/speed-quiz/games"
)

// One file holds all O/X questions: a header row, then one question per row
// with exactly three fields (question, answer, explanation). Quoted fields
// may embed delimiters.
const oxFile = "questions/oxquiz.csv"

func (b *Bank) loadTrueFalseItems(ctx context.Context) ([]games.TrueFalseItem, error) {
	data, err := b.source.Read(ctx, oxFile)
	if err != nil {
		return nil, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var items []games.TrueFalseItem
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row is dropped, not fatal.
			continue
		}
		if first {
			first = false
			continue
		}
		if len(record) != 3 {
			continue
		}

		answer := games.OXChoice(strings.ToUpper(strings.TrimSpace(record[1])))
		if answer != games.ChoiceO && answer != games.ChoiceX {
			continue
		}

		question := strings.TrimSpace(record[0])
		if question == "" {
			continue
		}

		items = append(items, games.TrueFalseItem{
			Question:    question,
			Answer:      answer,
			Explanation: strings.TrimSpace(record[2]),
		})
	}

	return items, nil
}
