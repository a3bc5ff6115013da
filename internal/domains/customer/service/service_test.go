package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/infras/otel/mocks"
	customerMocks "resthouse/internal/domains/customer/mocks"
	"resthouse/internal/domains/customer/model"
	"resthouse/internal/domains/customer/service"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
)

func TestCustomerService_GetOrCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	existing := model.Customer{
		ID:    "existing-id",
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
		wantNewID bool
	}{
		{
			name: "existing customer is reused",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)
			},
			wantID: "existing-id",
		},
		{
			name: "new customer is created",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customer model.Customer) error {
						assert.NotEmpty(t, customer.ID)
						assert.Equal(t, "jane@example.com", customer.Email)
						assert.Equal(t, "jane@example.com", customer.CreatedBy)

						return nil
					})
			},
			wantNewID: true,
		},
		{
			name: "lost insert race falls back to the winner",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)
			},
			wantID: "existing-id",
		},
		{
			name: "insert failure",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			customer, err := svc.GetOrCreate(context.Background(), "Jane Doe", "jane@example.com", "")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.wantNewID {
				assert.NotEmpty(t, customer.ID)
				assert.NotEqual(t, "existing-id", customer.ID)

				return
			}

			assert.Equal(t, tt.wantID, customer.ID)
		})
	}
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

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
					Return([]model.Customer{{ID: "customer-id", Name: "Jane Doe", Email: "jane@example.com"}}, nil)
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
			assert.Len(t, res.Customers, 1)
		})
	}
}
