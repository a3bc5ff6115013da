package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/infras/otel/mocks"
	availMocks "resthouse/internal/domains/availability/mocks"
	"resthouse/internal/domains/availability/model"
	"resthouse/internal/domains/availability/model/dto"
	"resthouse/internal/domains/availability/service"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func day(value string) time.Time {
	parsed, _ := time.Parse(constant.DayDateFormat, value)

	return parsed
}

func TestAvailabilityService_QueryRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availMocks.NewMockAvailability(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "successful query",
			setupMock: func() {
				entries := []model.RoomAvailability{
					{ID: "entry-1", RoomID: "room-id", Date: day("2026-10-01"), IsBooked: true, BookingID: strPtr("booking-id")},
					{ID: "entry-2", RoomID: "room-id", Date: day("2026-10-02"), IsBooked: true},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(entries, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.QueryRange(context.Background(), "room-id", day("2026-10-01"), day("2026-10-05"))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Entries, tt.wantLen)
		})
	}
}

func TestAvailabilityService_QueryRangeAllRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availMocks.NewMockAvailability(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	entries := []model.RoomAvailability{
		{ID: "entry-1", RoomID: "room-a", Date: day("2026-10-01"), IsBooked: true, BookingID: strPtr("booking-id")},
		{ID: "entry-2", RoomID: "room-b", Date: day("2026-10-01"), IsBooked: true},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RoomAvailability, error) {
			// no room filter: only the two date bounds
			assert.Len(t, filter.Filters, 2)
			for _, raw := range filter.Filters {
				f, ok := raw.(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldDate, f.Field)
			}

			return entries, nil
		})

	res, err := svc.QueryRange(context.Background(), "", day("2026-10-01"), day("2026-10-05"))

	assert.NoError(t, err)
	assert.Len(t, res.Entries, 2)
}

func TestAvailabilityService_IsRangeFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availMocks.NewMockAvailability(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantFree  bool
	}{
		{
			name: "range free",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantFree: true,
		},
		{
			name: "range taken",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantFree: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			free, err := svc.IsRangeFree(context.Background(), "room-id", day("2026-10-01"), day("2026-10-05"))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFree, free)
		})
	}
}

func TestAvailabilityService_SetBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availMocks.NewMockAvailability(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	blockReq := dto.SetBlockRequest{
		RoomID:      "3f6f4b9e-58d4-47dd-b8f1-3a2f5e3a1c01",
		Date:        "2026-10-01",
		ShouldBlock: true,
	}

	unblockReq := dto.SetBlockRequest{
		RoomID:      "3f6f4b9e-58d4-47dd-b8f1-3a2f5e3a1c01",
		Date:        "2026-10-01",
		ShouldBlock: false,
	}

	tests := []struct {
		name      string
		req       dto.SetBlockRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "block a free date",
			req:  blockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry model.RoomAvailability) error {
						assert.True(t, entry.IsBooked)
						assert.Nil(t, entry.BookingID)

						return nil
					})
			},
		},
		{
			name: "block an already blocked date is a no-op",
			req:  blockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{ID: "entry-id", IsBooked: true}, nil)
			},
		},
		{
			name: "block a booking-owned date",
			req:  blockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{ID: "entry-id", IsBooked: true, BookingID: strPtr("booking-id")}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "block loses insert race",
			req:  blockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unblock a blocked date",
			req:  unblockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{ID: "entry-id", IsBooked: true}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unblock a free date is a no-op",
			req:  unblockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{}, nil)
			},
		},
		{
			name: "unblock a booking-owned date",
			req:  unblockReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomAvailability{ID: "entry-id", IsBooked: true, BookingID: strPtr("booking-id")}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "invalid date format",
			req: dto.SetBlockRequest{
				RoomID:      "3f6f4b9e-58d4-47dd-b8f1-3a2f5e3a1c01",
				Date:        "01/10/2026",
				ShouldBlock: true,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-admin")
			err := svc.SetBlock(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
