package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/infras/otel/mocks"
	bookingMocks "resthouse/internal/domains/booking/mocks"
	"resthouse/internal/domains/booking/model"
	"resthouse/internal/domains/booking/model/dto"
	"resthouse/internal/domains/booking/service"
	eventMocks "resthouse/internal/events/mocks"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/failure"
)

func confirmedBooking() model.Booking {
	checkIn, _ := time.Parse(constant.DayDateFormat, "2026-10-01")
	checkOut, _ := time.Parse(constant.DayDateFormat, "2026-10-04")

	return model.Booking{
		ID:            "booking-id",
		CustomerID:    "customer-id",
		RoomID:        "room-id",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        2,
		TotalAmount:   5400,
		Status:        constant.BookingStatusConfirmed,
		PaymentStatus: constant.PaymentStatusPending,
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDispatcher, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedBooking()}, nil)
			},
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 1, res.TotalData)
			assert.Len(t, res.Bookings, 1)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDispatcher, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(), nil)
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-id", res.ID)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDispatcher, mockOtel)

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "unknown status",
			status:    "archived",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:   "booking not found",
			status: constant.BookingStatusCancelled,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "same status is a no-op",
			status: constant.BookingStatusConfirmed,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(), nil)
			},
		},
		{
			name:   "confirmed cannot go back to pending",
			status: constant.BookingStatusPending,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:   "cancellation releases nights and emits event",
			status: constant.BookingStatusCancelled,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(), nil)

				mockRepo.EXPECT().
					UpdateWithRelease(gomock.Any(), "booking-id", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
						assert.Equal(t, constant.BookingStatusCancelled, fields[model.FieldStatus])
						assert.NotContains(t, fields, model.FieldPaymentStatus)

						return nil
					})

				mockDispatcher.EXPECT().
					BookingCancelled(gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "cancelling a paid booking marks the payment refunded",
			status: constant.BookingStatusCancelled,
			setupMock: func() {
				paid := confirmedBooking()
				paid.PaymentStatus = constant.PaymentStatusPaid

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)

				mockRepo.EXPECT().
					UpdateWithRelease(gomock.Any(), "booking-id", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
						assert.Equal(t, constant.PaymentStatusRefunded, fields[model.FieldPaymentStatus])

						return nil
					})

				mockDispatcher.EXPECT().
					BookingCancelled(gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "pending booking can be confirmed",
			status: constant.BookingStatusConfirmed,
			setupMock: func() {
				pending := confirmedBooking()
				pending.Status = constant.BookingStatusPending

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-admin")
			err := svc.UpdateStatus(ctx, "booking-id", dto.UpdateBookingRequest{Status: tt.status})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockDispatcher, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete releases nights",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(), nil)

				mockRepo.EXPECT().
					DeleteWithRelease(gomock.Any(), "booking-id").
					Return(nil)

				mockDispatcher.EXPECT().
					BookingCancelled(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
