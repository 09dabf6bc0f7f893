package bank

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iniiswil/speed-quiz/games"
)

// fakeSource is an in-memory Source: directories map to file name lists,
// paths map to contents.
type fakeSource struct {
	dirs  map[string][]string
	files map[string]string
	reads int
	lists int
}

func (f *fakeSource) List(_ context.Context, dir string) ([]string, error) {
	f.lists++
	names, ok := f.dirs[dir]
	if !ok {
		return nil, errors.New("no such directory")
	}
	return names, nil
}

func (f *fakeSource) Read(_ context.Context, name string) ([]byte, error) {
	f.reads++
	data, ok := f.files[name]
	if !ok {
		return nil, errors.New("no such file")
	}
	return []byte(data), nil
}

func TestQuestionsParseKindAndCategoryFromFilename(t *testing.T) {
	source := &fakeSource{
		dirs: map[string][]string{
			"questions": {"speed-objects.csv", "body-proverbs.txt", "notes.md", "oxquiz.csv"},
		},
		files: map[string]string{
			"questions/speed-objects.csv": "apple\n\n# a comment\nbanana\n",
			"questions/body-proverbs.txt": "  early bird  \n",
		},
	}

	items, err := New(source, 0).Questions(context.Background())
	if err != nil {
		t.Fatalf("questions: %v", err)
	}

	want := []games.QuestionItem{
		{Text: "apple", Kind: games.KindSpeed, Category: "objects"},
		{Text: "banana", Kind: games.KindSpeed, Category: "objects"},
		{Text: "early bird", Kind: games.KindBody, Category: "proverbs"},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, item := range items {
		if item != want[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, want[i], item)
		}
	}
}

func TestQuestionsMissingDirIsEmpty(t *testing.T) {
	source := &fakeSource{dirs: map[string][]string{}}

	items, err := New(source, 0).Questions(context.Background())
	if err != nil {
		t.Fatalf("expected missing directory to be tolerated, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty pool, got %v", items)
	}
}

func TestCatchmindImagesSuffixPoints(t *testing.T) {
	source := &fakeSource{
		dirs: map[string][]string{
			"catchmind": {"cat_30.png", "dog_20.JPG", "bird.webp", "readme.txt"},
		},
	}

	images, err := New(source, 0).CatchmindImages(context.Background())
	if err != nil {
		t.Fatalf("images: %v", err)
	}

	want := map[string]int{
		"catchmind/cat_30.png": 30,
		"catchmind/dog_20.JPG": 20,
		"catchmind/bird.webp":  10,
	}
	if len(images) != len(want) {
		t.Fatalf("expected %d images, got %d: %v", len(want), len(images), images)
	}
	for _, image := range images {
		if points, ok := want[image.Path]; !ok || image.Points != points {
			t.Fatalf("unexpected image %+v", image)
		}
	}
}

func TestPhotoSetsKeepOnlyCompleteTriples(t *testing.T) {
	source := &fakeSource{
		dirs: map[string][]string{
			"pictures": {
				"cat_1.jpg", "cat_2.jpg", "cat_3.jpg",
				"dog_1.jpg", "dog_2.jpg", // incomplete
				"fish_1.jpg", "fish_3.jpg", "fish_2.jpg", // out of order
				"loose.jpg", // no member suffix
			},
		},
	}

	sets, err := New(source, 0).PhotoSets(context.Background())
	if err != nil {
		t.Fatalf("photo sets: %v", err)
	}

	if len(sets) != 2 {
		t.Fatalf("expected cat and fish sets, got %v", sets)
	}
	if sets[0].Base != "cat" || sets[1].Base != "fish" {
		t.Fatalf("expected sets sorted by base name, got %v", sets)
	}
	wantFish := [3]string{"pictures/fish_1.jpg", "pictures/fish_2.jpg", "pictures/fish_3.jpg"}
	if sets[1].Images != wantFish {
		t.Fatalf("expected hint order by member number, got %v", sets[1].Images)
	}
}

func TestSongsDeriveTitles(t *testing.T) {
	source := &fakeSource{
		dirs: map[string][]string{
			"songs": {"Bohemian Rhapsody.mp3", "cover.png", "track.M4A"},
		},
	}

	songs, err := New(source, 0).Songs(context.Background())
	if err != nil {
		t.Fatalf("songs: %v", err)
	}

	if len(songs) != 2 {
		t.Fatalf("expected 2 tracks, got %v", songs)
	}
	if songs[0].Title != "Bohemian Rhapsody" || songs[0].Path != "songs/Bohemian Rhapsody.mp3" {
		t.Fatalf("unexpected track %+v", songs[0])
	}
}

func TestTrueFalseItemsParsing(t *testing.T) {
	source := &fakeSource{
		files: map[string]string{
			"questions/oxquiz.csv": `question,answer,explanation
"Commas, inside quotes",O,fine
Lowercase answer,x,normalized
Bad answer,maybe,dropped
,O,empty question dropped
Too few fields,O
Kept,X,last one
`,
		},
	}

	items, err := New(source, 0).TrueFalseItems(context.Background())
	if err != nil {
		t.Fatalf("items: %v", err)
	}

	want := []games.TrueFalseItem{
		{Question: "Commas, inside quotes", Answer: games.ChoiceO, Explanation: "fine"},
		{Question: "Lowercase answer", Answer: games.ChoiceX, Explanation: "normalized"},
		{Question: "Kept", Answer: games.ChoiceX, Explanation: "last one"},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, item := range items {
		if item != want[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, want[i], item)
		}
	}
}

func TestCacheRespectsTTL(t *testing.T) {
	source := &fakeSource{
		dirs: map[string][]string{"songs": {"a.mp3"}},
	}

	now := time.Unix(0, 0)
	b := New(source, time.Minute)
	b.clock = func() time.Time { return now }

	ctx := context.Background()
	if _, err := b.Songs(ctx); err != nil {
		t.Fatalf("songs: %v", err)
	}
	if _, err := b.Songs(ctx); err != nil {
		t.Fatalf("songs: %v", err)
	}
	if source.lists != 1 {
		t.Fatalf("expected one backing load within the TTL, got %d", source.lists)
	}

	now = now.Add(2 * time.Minute)
	if _, err := b.Songs(ctx); err != nil {
		t.Fatalf("songs: %v", err)
	}
	if source.lists != 2 {
		t.Fatalf("expected a reload after expiry, got %d", source.lists)
	}
}

func TestInvalidateDropsCache(t *testing.T) {
	source := &fakeSource{
		dirs: map[string][]string{"songs": {"a.mp3"}},
	}
	b := New(source, time.Hour)

	ctx := context.Background()
	b.Songs(ctx)
	b.Invalidate()
	b.Songs(ctx)

	if source.lists != 2 {
		t.Fatalf("expected invalidate to force a reload, got %d loads", source.lists)
	}
}
