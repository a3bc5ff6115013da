package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/infras/otel/mocks"
	availModel "resthouse/internal/domains/availability/model"
	bookingModel "resthouse/internal/domains/booking/model"
	customerModel "resthouse/internal/domains/customer/model"
	customerServiceMocks "resthouse/internal/domains/customer/service/mocks"
	reservationMocks "resthouse/internal/domains/reservation/mocks"
	"resthouse/internal/domains/reservation/model/dto"
	"resthouse/internal/domains/reservation/service"
	roomMocks "resthouse/internal/domains/room/mocks"
	roomModel "resthouse/internal/domains/room/model"
	"resthouse/internal/events"
	eventMocks "resthouse/internal/events/mocks"
	"resthouse/shared/constant"
	"resthouse/shared/failure"
)

func TestReservationService_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockCustomers := customerServiceMocks.NewMockCustomer(ctrl)
	mockDispatcher := eventMocks.NewMockDispatcher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRooms, mockCustomers, mockDispatcher, mockOtel)

	deluxe := roomModel.Room{
		ID:       "room-id",
		RoomType: "Deluxe",
		Price:    1800,
		Active:   true,
	}

	customer := customerModel.Customer{
		ID:    "customer-id",
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}

	validReq := dto.CreateReservationRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		RoomType: "Deluxe",
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-04",
		Guests:   2,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.CreateReservationResponse)
	}{
		{
			name: "successful reservation for three nights",
			req:  validReq,
			setupMock: func() {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockCustomers.EXPECT().
					GetOrCreate(gomock.Any(), "Jane Doe", "jane@example.com", "").
					Return(customer, nil)

				mockRepo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking bookingModel.Booking, nights []availModel.RoomAvailability) error {
						assert.Equal(t, "room-id", booking.RoomID)
						assert.Equal(t, "customer-id", booking.CustomerID)
						assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
						assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
						assert.InDelta(t, 5400, booking.TotalAmount, 0.001)
						assert.Len(t, nights, 3)

						for _, night := range nights {
							assert.True(t, night.IsBooked)
							assert.NotNil(t, night.BookingID)
							assert.Equal(t, booking.ID, *night.BookingID)
						}

						return nil
					})

				mockDispatcher.EXPECT().
					BookingConfirmed(gomock.Any(), gomock.Any())
			},
			wantErr: false,
			check: func(t *testing.T, res dto.CreateReservationResponse) {
				t.Helper()

				assert.Equal(t, "Deluxe", res.RoomType)
				assert.Equal(t, 3, res.Nights)
				assert.InDelta(t, 5400, res.TotalAmount, 0.001)
				assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
			},
		},
		{
			name: "guests omitted defaults to one",
			req: dto.CreateReservationRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				Phone:    "+66812345678",
				RoomType: "Deluxe",
				CheckIn:  "2026-10-01",
				CheckOut: "2026-10-02",
			},
			setupMock: func() {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockCustomers.EXPECT().
					GetOrCreate(gomock.Any(), "Jane Doe", "jane@example.com", "+66812345678").
					Return(customer, nil)

				mockRepo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking bookingModel.Booking, nights []availModel.RoomAvailability) error {
						assert.Equal(t, 1, booking.Guests)
						assert.Len(t, nights, 1)

						return nil
					})

				mockDispatcher.EXPECT().
					BookingConfirmed(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, event events.BookingEvent) {
						assert.Equal(t, 1, event.Guests)
					})
			},
			wantErr: false,
			check: func(t *testing.T, res dto.CreateReservationResponse) {
				t.Helper()

				assert.Equal(t, 1, res.Guests)
			},
		},
		{
			name: "invalid check_in format",
			req: dto.CreateReservationRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				RoomType: "Deluxe",
				CheckIn:  "01-10-2026",
				CheckOut: "2026-10-04",
				Guests:   2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "check_out not after check_in",
			req: dto.CreateReservationRequest{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				RoomType: "Deluxe",
				CheckIn:  "2026-10-04",
				CheckOut: "2026-10-04",
				Guests:   2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown room type",
			req:  validReq,
			setupMock: func() {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "dates already taken",
			req:  validReq,
			setupMock: func() {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockCustomers.EXPECT().
					GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(customer, nil)

				mockRepo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(failure.Conflict("dates no longer available"))
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "customer lookup failure",
			req:  validReq,
			setupMock: func() {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxe, nil)

				mockCustomers.EXPECT().
					GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Reserve(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}
