package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yoockh/workmatch/internal/matching"
	"github.com/yoockh/workmatch/internal/models"
	pgrepo "github.com/yoockh/workmatch/internal/repositories/postgres"
	"github.com/yoockh/workmatch/internal/utils"
)

// CatalogService maintains the synonym and location tables the engine reads.
type CatalogService interface {
	PutSynonyms(ctx context.Context, skill string, synonyms []string) (*models.SkillSynonym, error)
	PutLocation(ctx context.Context, name string, parent *string) (*models.Location, error)
}

type catalogService struct {
	synonyms  pgrepo.SynonymRepository
	locations pgrepo.LocationRepository
}

func NewCatalogService(synonyms pgrepo.SynonymRepository, locations pgrepo.LocationRepository) CatalogService {
	return &catalogService{synonyms: synonyms, locations: locations}
}

func (s *catalogService) PutSynonyms(ctx context.Context, skill string, synonyms []string) (*models.SkillSynonym, error) {
	const op = "CatalogService.PutSynonyms"

	skill = matching.Normalize(skill)
	if skill == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "skill is required", nil)
	}

	cleaned := make([]string, 0, len(synonyms))
	seen := map[string]struct{}{skill: {}}
	for _, syn := range synonyms {
		syn = matching.Normalize(syn)
		if syn == "" {
			continue
		}
		if _, dup := seen[syn]; dup {
			continue
		}
		seen[syn] = struct{}{}
		cleaned = append(cleaned, syn)
	}

	if err := s.synonyms.Upsert(ctx, skill, cleaned); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save synonyms", err)
	}
	return &models.SkillSynonym{Skill: skill, Synonyms: cleaned}, nil
}

// PutLocation creates or re-parents a location. parent is a location name.
func (s *catalogService) PutLocation(ctx context.Context, name string, parent *string) (*models.Location, error) {
	const op = "CatalogService.PutLocation"

	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}

	loc := &models.Location{ID: uuid.NewString(), Name: name}
	existing, err := s.locations.FindByName(ctx, name)
	switch {
	case err == nil:
		loc.ID = existing.ID
		loc.Name = existing.Name
	case !errors.Is(err, utils.ErrNotFound):
		return nil, utils.E(utils.CodeInternal, op, "failed to look up location", err)
	}

	if parent != nil && strings.TrimSpace(*parent) != "" {
		p, err := s.locations.FindByName(ctx, strings.TrimSpace(*parent))
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return nil, utils.E(utils.CodeInvalidArgument, op, "parent location not found", err)
			}
			return nil, utils.E(utils.CodeInternal, op, "failed to look up parent location", err)
		}
		if p.ID == loc.ID {
			return nil, utils.E(utils.CodeInvalidArgument, op, "location cannot be its own parent", nil)
		}
		loc.ParentID = &p.ID
	}

	if err := s.locations.Upsert(ctx, loc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save location", err)
	}
	return loc, nil
}
