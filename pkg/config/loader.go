package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type. Each type is parsed at
// most once; later Load calls copy the cached value out.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

var (
	global = newCache()

	dotenvOnce sync.Once
)

// LoadEnv reads the given .env files into the process environment. With no
// arguments it reads ./.env. Variables that are already set are not
// overridden, so real environment always wins over files.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: %v", ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from environment variables according to its `env` tags.
//
// The first call in a process also reads ./.env when present. Each config
// type is parsed once; subsequent calls for the same type return the cached
// value even if the environment changed in between (use ResetCache in tests).
//
//	type SenderConfig struct {
//		Provider string `env:"EMAIL_PROVIDER" envDefault:"sendgrid"`
//		From     string `env:"DEFAULT_FROM_EMAIL,required"`
//	}
//
//	var cfg SenderConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if global.get(key, v) {
		return nil
	}

	global.mu.Lock()
	once, ok := global.onces[key]
	if !ok {
		once = new(sync.Once)
		global.onces[key] = once
	}
	global.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if perr := env.Parse(&parsed); perr != nil {
			err = errors.Join(ErrParsingConfig, perr)
			// allow a retry once the environment is fixed
			global.mu.Lock()
			delete(global.onces, key)
			global.mu.Unlock()
			return
		}

		global.mu.Lock()
		global.values[key] = parsed
		global.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if global.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load re-parses the
// environment.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.values = make(map[string]any)
	global.onces = make(map[string]*sync.Once)
}

func (c *cache) get(key string, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}

func typeKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
