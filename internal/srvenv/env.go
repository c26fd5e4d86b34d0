package srvenv

import (
	"context"

	"petal/internal/classifier"
	"petal/internal/database"
	"petal/internal/flower/model"
	"petal/internal/normalize"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	database   *database.DB
	classifier classifier.ProvideFn
	flowers    []model.Flower
	stats      normalize.Stats
}

func (s *SrvEnv) ProvideClassifier() classifier.ProvideFn {
	return s.classifier
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

// Flowers returns the loaded (and possibly normalized) dataset.
func (s *SrvEnv) Flowers() []model.Flower {
	return s.flowers
}

// Stats returns the min-max statistics the dataset was normalized
// with, nil when normalization is off.
func (s *SrvEnv) Stats() normalize.Stats {
	return s.stats
}

func WithClassifier(fn classifier.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.classifier = fn
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

func WithFlowers(flowers []model.Flower) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.flowers = flowers
		return s
	}
}

func WithStats(stats normalize.Stats) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.stats = stats
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
