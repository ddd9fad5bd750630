package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/eventbus"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type ActivityService struct {
	repo      activity.Repository
	publisher eventbus.EventBus
	cache     *DescendantCache
}

// NewActivityService builds the service; cache may be nil to always hit the repository.
func NewActivityService(repo activity.Repository, publisher eventbus.EventBus, cache *DescendantCache) *ActivityService {
	if cache != nil {
		cache.Subscribe(publisher)
	}
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
	}
}

func (s *ActivityService) GetBySID(ctx context.Context, sid uuid.UUID) (activity.Activity, error) {
	return s.repo.GetBySID(ctx, sid)
}

// GetByName fails with activity.ErrNotFound when no activity carries the name.
func (s *ActivityService) GetByName(ctx context.Context, name string) (activity.Activity, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *ActivityService) GetAll(ctx context.Context) ([]activity.Activity, error) {
	return s.repo.GetAll(ctx)
}

// GetAllDescendantActivitySIDs returns the named activity's sid and all of its
// descendants. An unknown name is not an error and yields an empty slice.
func (s *ActivityService) GetAllDescendantActivitySIDs(ctx context.Context, activityName string) ([]uuid.UUID, error) {
	var generation uint64
	if s.cache != nil {
		if sids, ok := s.cache.Get(activityName); ok {
			return sids, nil
		}
		generation = s.cache.Generation()
	}
	sids, err := s.repo.GetAllDescendantActivitySIDs(ctx, activityName)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(sids) > 0 {
		s.cache.Set(activityName, sids, generation)
	}
	return sids, nil
}

// Create inserts a new activity. A parent already at activity.MaxDepth is
// refused with activity.ErrExceedMaxDepth and nothing is written.
func (s *ActivityService) Create(ctx context.Context, dto *activity.CreateDTO) (activity.Activity, error) {
	if dto == nil {
		return activity.Activity{}, serrors.Validation(nil).WithCause("missing payload")
	}
	if err := dto.Ok(); err != nil {
		return activity.Activity{}, err
	}
	logger := composables.UseLogger(ctx).WithField("activity", dto.Name)

	var created activity.Activity
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		if dto.ParentSID != nil {
			if err := s.checkParent(txCtx, *dto.ParentSID, logger); err != nil {
				return err
			}
		}
		var err error
		created, err = s.repo.Create(txCtx, dto.ToEntity())
		return err
	})
	if err != nil {
		return activity.Activity{}, err
	}

	s.publisher.Publish(&activity.CreatedEvent{Result: created})
	logger.WithField("sid", created.SID()).Debug("activity created")
	return created, nil
}

func (s *ActivityService) checkParent(ctx context.Context, parentSID uuid.UUID, logger *logrus.Entry) error {
	depth, err := s.repo.Depth(ctx, parentSID)
	if errors.Is(err, activity.ErrNotFound) {
		return serrors.New(activity.ErrParentNotFound).WithCause("parent %s", parentSID)
	}
	if err != nil {
		return err
	}
	if depth >= activity.MaxDepth {
		depthRejections.Inc()
		logger.WithFields(logrus.Fields{
			"parent": parentSID,
			"depth":  depth,
		}).Warn("activity would exceed maximum depth")
		return serrors.New(activity.ErrExceedMaxDepth).
			WithCause("parent %s is at depth %d, maximum is %d", parentSID, depth, activity.MaxDepth)
	}
	return nil
}

func (s *ActivityService) Update(ctx context.Context, sid uuid.UUID, dto *activity.UpdateDTO) (activity.Activity, error) {
	if dto == nil {
		return activity.Activity{}, serrors.Validation(nil).WithCause("missing payload")
	}
	if err := dto.Ok(); err != nil {
		return activity.Activity{}, err
	}
	var before, updated activity.Activity
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		if before, err = s.repo.GetBySID(txCtx, sid); err != nil {
			return err
		}
		updated, err = s.repo.Update(txCtx, before.Rename(dto.Name))
		return err
	})
	if err != nil {
		return activity.Activity{}, err
	}
	s.publisher.Publish(&activity.UpdatedEvent{Data: before, Result: updated})
	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, sid uuid.UUID) (activity.Activity, error) {
	var deleted activity.Activity
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		if deleted, err = s.repo.GetBySID(txCtx, sid); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, sid)
	})
	if err != nil {
		return activity.Activity{}, err
	}
	s.publisher.Publish(&activity.DeletedEvent{Result: deleted})
	return deleted, nil
}
