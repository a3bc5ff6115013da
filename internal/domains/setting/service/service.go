package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"resthouse/config"
	"resthouse/infras/otel"
	"resthouse/internal/domains/setting/model"
	"resthouse/internal/domains/setting/repository"
	"resthouse/shared"
	"resthouse/shared/cache"
	"resthouse/shared/constant"
	gDto "resthouse/shared/dto"
	"resthouse/shared/timezone"
)

const (
	cacheGetSettings = "setting:map"
)

type Setting interface {
	GetMap(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, settings map[string]string) error
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetMap(ctx context.Context) (res map[string]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMap")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSettings, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSettings).Msg("cache hit for settings")

		return res, nil
	}

	settings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res = make(map[string]string, len(settings))
	for _, setting := range settings {
		res[setting.Key] = setting.Value
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Upsert(ctx context.Context, settings map[string]string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(settings) == 0 {
		return nil
	}

	models := make([]model.Setting, 0, len(settings))
	for key, value := range settings {
		models = append(models, model.Setting{
			Key:        key,
			Value:      value,
			ModifiedAt: timezone.Now(),
		})
	}

	if err = s.repo.Upsert(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to upsert settings")

		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetSettings)

	return nil
}
