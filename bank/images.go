package bank

import (
	"context"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/iniiswil/speed-quiz/games"
)

const (
	catchmindDir = "catchmind"
	picturesDir  = "pictures"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Photo sets are three files sharing a base name: {base}_1, {base}_2,
// {base}_3. Anything else in the folder is ignored.
var photoMemberPattern = regexp.MustCompile(`^(.+)_([123])$`)

func isImage(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// imagePoints implements the picture-guess bonus convention: a _30 or _20
// suffix on the stem marks a bonus image, everything else is worth 10.
func imagePoints(name string) int {
	stem := strings.TrimSuffix(name, path.Ext(name))
	switch {
	case strings.HasSuffix(stem, "_30"):
		return 30
	case strings.HasSuffix(stem, "_20"):
		return 20
	default:
		return 10
	}
}

func (b *Bank) loadCatchmindImages(ctx context.Context) ([]games.ImageAsset, error) {
	names, err := b.source.List(ctx, catchmindDir)
	if err != nil {
		return nil, nil
	}

	var images []games.ImageAsset
	for _, name := range names {
		if !isImage(name) {
			continue
		}
		images = append(images, games.ImageAsset{
			Path:   catchmindDir + "/" + name,
			Points: imagePoints(name),
		})
	}

	return images, nil
}

func (b *Bank) loadPhotoSets(ctx context.Context) ([]games.PhotoSet, error) {
	names, err := b.source.List(ctx, picturesDir)
	if err != nil {
		return nil, nil
	}

	groups := make(map[string]*[3]string)
	for _, name := range names {
		if !isImage(name) {
			continue
		}

		stem := strings.TrimSuffix(name, path.Ext(name))
		match := photoMemberPattern.FindStringSubmatch(stem)
		if match == nil {
			continue
		}

		base := match[1]
		hint := int(match[2][0] - '0')

		group, ok := groups[base]
		if !ok {
			group = &[3]string{}
			groups[base] = group
		}
		group[hint-1] = picturesDir + "/" + name
	}

	// Only complete triples are usable; incomplete groups are dropped
	// silently.
	var sets []games.PhotoSet
	for base, group := range groups {
		if group[0] == "" || group[1] == "" || group[2] == "" {
			continue
		}
		sets = append(sets, games.PhotoSet{
			Base:   base,
			Images: *group,
		})
	}

	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Base < sets[j].Base
	})

	return sets, nil
}
