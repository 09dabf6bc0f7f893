package bank

import (
	"context"
	"path"
	"strings"

	"github.com/iniiswil/speed-quiz/games"
)

const songsDir = "songs"

var audioExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".ogg": true,
	".m4a": true,
}

func (b *Bank) loadSongs(ctx context.Context) ([]games.SongAsset, error) {
	names, err := b.source.List(ctx, songsDir)
	if err != nil {
		return nil, nil
	}

	var songs []games.SongAsset
	for _, name := range names {
		ext := strings.ToLower(path.Ext(name))
		if !audioExtensions[ext] {
			continue
		}
		songs = append(songs, games.SongAsset{
			Path:  songsDir + "/" + name,
			Title: strings.TrimSuffix(name, path.Ext(name)),
		})
	}

	return songs, nil
}
