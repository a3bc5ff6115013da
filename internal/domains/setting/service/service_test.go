package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resthouse/config"
	"resthouse/infras/otel/mocks"
	settingMocks "resthouse/internal/domains/setting/mocks"
	"resthouse/internal/domains/setting/model"
	"resthouse/internal/domains/setting/service"
	cacheMocks "resthouse/shared/cache/mocks"
)

func TestSettingService_GetMap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		want      map[string]string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "setting:map", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*map[string]string)
						*res = map[string]string{"property_name": "Resthouse"}

						return nil
					})
			},
			want: map[string]string{"property_name": "Resthouse"},
		},
		{
			name: "cache miss reads repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "setting:map", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Setting{
						{Key: "property_name", Value: "Resthouse"},
						{Key: "currency", Value: "THB"},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "setting:map", gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
			want: map[string]string{"property_name": "Resthouse", "currency": "THB"},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "setting:map", gomock.Any()).
					Return(errors.New("cache miss"))

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

			res, err := svc.GetMap(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestSettingService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSetting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		settings  map[string]string
		setupMock func()
		wantErr   bool
	}{
		{
			name:     "successful upsert invalidates the cache",
			settings: map[string]string{"check_in_time": "15:00"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, models []model.Setting) error {
						assert.Len(t, models, 1)
						assert.Equal(t, "check_in_time", models[0].Key)
						assert.Equal(t, "15:00", models[0].Value)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), "setting:map*").
					Return(nil)
			},
		},
		{
			name:      "empty map is a no-op",
			settings:  map[string]string{},
			setupMock: func() {},
		},
		{
			name:     "repository error",
			settings: map[string]string{"check_in_time": "15:00"},
			setupMock: func() {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Upsert(context.Background(), tt.settings)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
