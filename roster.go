package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iniiswil/speed-quiz/games"
)

type rosterFile struct {
	Participants []struct {
		Name     string `yaml:"name"`
		Portrait string `yaml:"portrait"`
	} `yaml:"participants"`
}

// loadRoster reads the participant roster from a YAML file. Portrait paths
// are relative to the content directory and served under /media/.
func loadRoster(path string) (*games.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	members := make([]games.Participant, 0, len(file.Participants))
	for _, p := range file.Participants {
		members = append(members, games.Participant{
			Name:     p.Name,
			Portrait: p.Portrait,
		})
	}

	return games.NewRoster(members)
}
