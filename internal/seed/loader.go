// Package seed reads hand-written YAML fixtures of features to preload a board.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"

	"gopkg.in/yaml.v3"
)

var ErrNoFeatures = errors.New("fixture contains no features")

// File is the fixture layout:
//
//	features:
//	  - title: Dark mode toggle
//	    description: Add an accessible dark mode with system preference support.
//	    status: Planned
//	    votes: 24
type File struct {
	Features []Record `yaml:"features"`
}

type Record struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Votes       int    `yaml:"votes"`
}

// Decode parses a fixture. Unknown keys are rejected so typos surface early.
func Decode(r io.Reader) ([]dto.ImportFeatureRequest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoFeatures
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if len(file.Features) == 0 {
		return nil, ErrNoFeatures
	}

	reqs := make([]dto.ImportFeatureRequest, 0, len(file.Features))
	for _, rec := range file.Features {
		reqs = append(reqs, dto.ImportFeatureRequest{
			CreateFeatureRequest: dto.CreateFeatureRequest{
				Title:       rec.Title,
				Description: rec.Description,
				Status:      entity.FeatureStatus(rec.Status),
			},
			Votes: rec.Votes,
		})
	}
	return reqs, nil
}

func LoadFile(path string) ([]dto.ImportFeatureRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}
