package activity

import (
	"context"
	"time"

	"github.com/muhammadheryan/warehouse-tracker/constant"
	"github.com/muhammadheryan/warehouse-tracker/model"
	activityrepo "github.com/muhammadheryan/warehouse-tracker/repository/activity"
	"github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/muhammadheryan/warehouse-tracker/utils/logger"
	"go.uber.org/zap"
)

type ActivityApp interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	GetActivity(ctx context.Context, id string) (*model.Activity, error)
	RecordActivity(ctx context.Context, req *model.RecordActivityRequest) (*model.Activity, error)
}

type activityAppImpl struct {
	activityRepo activityrepo.ActivityRepository
}

func NewActivityApp(activityRepo activityrepo.ActivityRepository) ActivityApp {
	return &activityAppImpl{activityRepo: activityRepo}
}

func (s *activityAppImpl) ListActivities(ctx context.Context) ([]model.Activity, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		logger.Error("[ListActivities] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return activities, nil
}

func (s *activityAppImpl) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	a, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetActivity] get failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if a == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return a, nil
}

func (s *activityAppImpl) RecordActivity(ctx context.Context, req *model.RecordActivityRequest) (*model.Activity, error) {
	action := constant.ActivityAction(req.Action)
	if _, ok := constant.ValidActivityActions[action]; !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	a, err := s.activityRepo.Create(ctx, &model.Activity{
		Action:    action,
		Details:   req.Details,
		Timestamp: time.Now(),
	})
	if err != nil {
		logger.Error("[RecordActivity] create failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return a, nil
}
