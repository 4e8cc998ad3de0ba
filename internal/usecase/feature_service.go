package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"go.uber.org/zap"
)

// FeatureService manages per-gym feature toggles. The dependency rule —
// a feature may not be enabled while its declared dependency is disabled —
// is enforced here by cascading: enabling walks up the dependency chain,
// disabling walks down to dependents.
type FeatureService struct {
	features repository.FeatureRepository
	logger   *zap.Logger
}

// NewFeatureService creates a new feature service
func NewFeatureService(features repository.FeatureRepository, logger *zap.Logger) *FeatureService {
	return &FeatureService{
		features: features,
		logger:   logger,
	}
}

// List returns every platform feature joined with the gym's enablement.
func (s *FeatureService) List(ctx context.Context, gymID uuid.UUID) ([]*entity.GymFeatureState, error) {
	features, err := s.features.ListFeatures(ctx)
	if err != nil {
		return nil, err
	}
	enabled, err := s.features.ListEnabled(ctx, gymID)
	if err != nil {
		return nil, err
	}

	states := make([]*entity.GymFeatureState, len(features))
	for i, f := range features {
		states[i] = &entity.GymFeatureState{
			Key:         f.Key,
			Name:        f.Name,
			Description: f.Description,
			DependsOn:   f.DependsOn,
			Enabled:     enabled[f.Key],
		}
	}
	return states, nil
}

// SetEnabled toggles a feature for a gym, cascading through the dependency
// graph, and returns the keys whose state changed.
func (s *FeatureService) SetEnabled(ctx context.Context, gymID uuid.UUID, featureKey string, enabled bool) ([]string, error) {
	features, err := s.features.ListFeatures(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]*entity.Feature, len(features))
	for _, f := range features {
		byKey[f.Key] = f
	}
	if _, ok := byKey[featureKey]; !ok {
		return nil, domainErrors.ErrFeatureNotFound
	}

	currentlyEnabled, err := s.features.ListEnabled(ctx, gymID)
	if err != nil {
		return nil, err
	}

	var toChange []string
	if enabled {
		toChange, err = s.dependencyChain(byKey, featureKey, currentlyEnabled)
		if err != nil {
			return nil, err
		}
	} else {
		toChange = s.dependentsOf(byKey, featureKey, currentlyEnabled)
	}

	for _, key := range toChange {
		if err := s.features.SetEnabled(ctx, gymID, key, enabled); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Feature state changed",
		zap.String("gym_id", gymID.String()),
		zap.String("feature", featureKey),
		zap.Bool("enabled", enabled),
		zap.Strings("changed", toChange))

	return toChange, nil
}

// dependencyChain returns the feature and its disabled dependencies,
// dependencies first, so enabling never leaves a gap in the chain.
func (s *FeatureService) dependencyChain(byKey map[string]*entity.Feature, featureKey string, enabled map[string]bool) ([]string, error) {
	var chain []string
	visited := make(map[string]bool)

	key := featureKey
	for {
		if visited[key] {
			return nil, fmt.Errorf("%w: at %s", domainErrors.ErrDependencyCycle, key)
		}
		visited[key] = true

		feature := byKey[key]
		if feature == nil {
			// Dangling depends_on key; never written to the gym's state.
			break
		}
		if key != featureKey && enabled[key] {
			break
		}
		// Prepend so dependencies come first.
		chain = append([]string{key}, chain...)

		if feature.DependsOn == nil {
			break
		}
		key = *feature.DependsOn
	}

	return chain, nil
}

// dependentsOf returns the feature plus every enabled feature that depends
// on it, directly or transitively.
func (s *FeatureService) dependentsOf(byKey map[string]*entity.Feature, featureKey string, enabled map[string]bool) []string {
	dependents := map[string][]string{}
	for _, f := range byKey {
		if f.DependsOn != nil {
			dependents[*f.DependsOn] = append(dependents[*f.DependsOn], f.Key)
		}
	}

	var result []string
	queue := []string{featureKey}
	visited := map[string]bool{}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if visited[key] {
			continue
		}
		visited[key] = true

		if key == featureKey || enabled[key] {
			result = append(result, key)
			queue = append(queue, dependents[key]...)
		}
	}
	return result
}
