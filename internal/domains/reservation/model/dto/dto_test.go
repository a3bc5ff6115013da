package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resthouse/internal/domains/reservation/model/dto"
	"resthouse/shared/failure"
	"resthouse/shared/validator"
)

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		Name:     "A",
		Email:    "a@x.com",
		Phone:    "+66812345678",
		RoomType: "Deluxe",
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-04",
	}
}

func TestCreateReservationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateReservationRequest)
		wantErr bool
	}{
		{
			name:   "guests omitted is valid",
			mutate: func(req *dto.CreateReservationRequest) {},
		},
		{
			name: "explicit guests is valid",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Guests = 2
			},
		},
		{
			name: "negative guests rejected",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Guests = -1
			},
			wantErr: true,
		},
		{
			name: "missing phone rejected",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Phone = ""
			},
			wantErr: true,
		},
		{
			name: "missing email rejected",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Email = ""
			},
			wantErr: true,
		},
		{
			name: "malformed check_in rejected",
			mutate: func(req *dto.CreateReservationRequest) {
				req.CheckIn = "01-10-2026"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
