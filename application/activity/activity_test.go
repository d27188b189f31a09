package activity_test

import (
	"context"
	"errors"
	"testing"

	appactivity "github.com/muhammadheryan/warehouse-tracker/application/activity"
	"github.com/muhammadheryan/warehouse-tracker/constant"
	activitymocks "github.com/muhammadheryan/warehouse-tracker/mocks/repository/activity"
	"github.com/muhammadheryan/warehouse-tracker/model"
	cerr "github.com/muhammadheryan/warehouse-tracker/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestActivityApp_RecordActivity(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.RecordActivityRequest
		mockCall func(m *activitymocks.ActivityRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: record known action",
			req:  &model.RecordActivityRequest{Action: "Item Added", Details: "Office Chair (PROD-001) added to inventory"},
			mockCall: func(m *activitymocks.ActivityRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
					return a.Action == constant.ActivityItemAdded && !a.Timestamp.IsZero()
				})).Return(&model.Activity{ID: "act-1", Action: constant.ActivityItemAdded}, nil).Once()
			},
			wantErr: false,
		},
		{
			name:     "error: unknown action rejected",
			req:      &model.RecordActivityRequest{Action: "Stocktake", Details: "annual stocktake"},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: repository create fails",
			req:  &model.RecordActivityRequest{Action: "Item Added", Details: "x"},
			mockCall: func(m *activitymocks.ActivityRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := activitymocks.NewActivityRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appactivity.NewActivityApp(repo)

			got, err := app.RecordActivity(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecordActivity() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID == "" {
				t.Fatal("RecordActivity() ID should not be empty")
			}
		})
	}
}

func TestActivityApp_GetActivity(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		mockCall func(m *activitymocks.ActivityRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: get activity",
			id:   "act-1",
			mockCall: func(m *activitymocks.ActivityRepository) {
				m.On("GetByID", mock.Anything, "act-1").Return(&model.Activity{ID: "act-1"}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: activity not found",
			id:   "missing",
			mockCall: func(m *activitymocks.ActivityRepository) {
				m.On("GetByID", mock.Anything, "missing").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := activitymocks.NewActivityRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appactivity.NewActivityApp(repo)

			_, err := app.GetActivity(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetActivity() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
