package memory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"
	"feature-feedback-board/internal/pkg/idgen"
	"feature-feedback-board/internal/repository/specification"
)

var (
	ErrEmptyTitle       = errors.New("feature title is empty")
	ErrEmptyDescription = errors.New("feature description is empty")
	ErrInvalidStatus    = errors.New("feature status is invalid")
	ErrNegativeVotes    = errors.New("feature votes are negative")
	ErrDuplicateId      = errors.New("id generator returned an id already in use")
)

// FeatureStore keeps the board in insertion order. New features are appended,
// so Seq grows from front to back. Not safe for concurrent use.
type FeatureStore struct {
	ids      idgen.Generator
	features []entity.Feature
	index    map[string]int
	seq      uint64
	revision uint64
}

func NewFeatureStore(ids idgen.Generator) *FeatureStore {
	return &FeatureStore{
		ids:   ids,
		index: make(map[string]int),
	}
}

func (s *FeatureStore) Create(req dto.CreateFeatureRequest) (entity.Feature, error) {
	feature, err := s.build(req, 0)
	if err != nil {
		return entity.Feature{}, err
	}
	s.append(feature)
	return feature, nil
}

// Import adds fixture records in order, keeping their votes. Either every record
// is added or none is.
func (s *FeatureStore) Import(reqs []dto.ImportFeatureRequest) ([]entity.Feature, error) {
	built := make([]entity.Feature, 0, len(reqs))
	pending := make(map[string]struct{}, len(reqs))
	for i, req := range reqs {
		if req.Votes < 0 {
			return nil, fmt.Errorf("record %d: %w", i, ErrNegativeVotes)
		}
		feature, err := s.build(req.CreateFeatureRequest, req.Votes)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := pending[feature.Id]; dup {
			return nil, fmt.Errorf("record %d: %w", i, ErrDuplicateId)
		}
		pending[feature.Id] = struct{}{}
		built = append(built, feature)
	}

	for _, feature := range built {
		s.append(feature)
	}
	return slices.Clone(built), nil
}

func (s *FeatureStore) build(req dto.CreateFeatureRequest, votes int) (entity.Feature, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return entity.Feature{}, ErrEmptyTitle
	}
	if description == "" {
		return entity.Feature{}, ErrEmptyDescription
	}
	if !req.Status.IsValid() {
		return entity.Feature{}, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	id := s.ids.NewId()
	if _, exists := s.index[id]; exists {
		return entity.Feature{}, fmt.Errorf("%w: %s", ErrDuplicateId, id)
	}

	return entity.Feature{
		Id:          id,
		Title:       title,
		Description: description,
		Status:      req.Status,
		Votes:       votes,
	}, nil
}

func (s *FeatureStore) append(feature entity.Feature) {
	s.seq++
	feature.Seq = s.seq
	s.index[feature.Id] = len(s.features)
	s.features = append(s.features, feature)
	s.revision++
}

// replace swaps the record with the given id for an updated copy.
func (s *FeatureStore) replace(id string, update func(entity.Feature) entity.Feature) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.features[pos] = update(s.features[pos])
	s.revision++
	return true
}

func (s *FeatureStore) Vote(id string) bool {
	return s.replace(id, func(f entity.Feature) entity.Feature {
		f.Votes++
		return f
	})
}

func (s *FeatureStore) SetStatus(id string, status entity.FeatureStatus) bool {
	if !status.IsValid() {
		return false
	}
	return s.replace(id, func(f entity.Feature) entity.Feature {
		f.Status = status
		return f
	})
}

// All returns a copy of the collection in insertion order.
func (s *FeatureStore) All() []entity.Feature {
	out := slices.Clone(s.features)
	if out == nil {
		out = []entity.Feature{}
	}
	return out
}

func (s *FeatureStore) FindOne(specs ...specification.Specification) (entity.Feature, bool) {
	for _, f := range s.features {
		if specification.SatisfiesAll(f, specs...) {
			return f, true
		}
	}
	return entity.Feature{}, false
}

func (s *FeatureStore) FindAll(specs ...specification.Specification) []entity.Feature {
	out := make([]entity.Feature, 0, len(s.features))
	for _, f := range s.features {
		if specification.SatisfiesAll(f, specs...) {
			out = append(out, f)
		}
	}
	return out
}

func (s *FeatureStore) Count() int {
	return len(s.features)
}

// Revision changes on every successful mutation.
func (s *FeatureStore) Revision() uint64 {
	return s.revision
}
