// Package backend opens the durable storage selected by the configuration.
package backend

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/storage/kv"
	filekv "github.com/baseldt/lms/storage/kv/file"
	inmemkv "github.com/baseldt/lms/storage/kv/inmem"
	pgkv "github.com/baseldt/lms/storage/kv/postgres"
	rediskv "github.com/baseldt/lms/storage/kv/redis"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the store of conf.Session.Backend and what must be closed once done with it.
func Open(ctx context.Context, conf *core.Config) (kv.Store, io.Closer, error) {
	switch conf.Session.Backend {
	case core.BackendMemory:
		return inmemkv.NewStore(), nopCloser{}, nil

	case core.BackendFile:
		store, err := filekv.NewStore(conf.Session.FileDir)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening file storage")
		}
		return store, nopCloser{}, nil

	case core.BackendRedis:
		client, err := rediskv.Open(ctx, conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening redis storage")
		}
		return rediskv.NewStore(client), client, nil

	case core.BackendPostgres:
		db, err := pgkv.Open(ctx, conf.Database.URL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening postgres storage")
		}
		return pgkv.NewStore(db), db, nil
	}
	return nil, nil, errors.Errorf("unknown session backend %q", conf.Session.Backend)
}
