package estimator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrModelNotFound = errors.New("price model not found")

// ModelStore persists the fitted model. SaveIfAbsent must be atomic so an
// existing model is never overwritten by a concurrent bootstrap.
type ModelStore interface {
	Load(ctx context.Context) (Model, error)
	Save(ctx context.Context, model Model) error
	SaveIfAbsent(ctx context.Context, model Model) (bool, error)
}

// FileStore keeps the model as a JSON file. Writes go to a temp file in the
// same directory first, so readers never see a partial model.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (Model, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Model{}, ErrModelNotFound
		}
		return Model{}, fmt.Errorf("failed to read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return Model{}, fmt.Errorf("failed to unmarshal model file: %w", err)
	}

	return model, nil
}

func (s *FileStore) Save(_ context.Context, model Model) error {
	tmp, err := s.writeTemp(model)
	if err != nil {
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace model file: %w", err)
	}

	return nil
}

// SaveIfAbsent hard-links the temp file into place, which fails if the
// target already exists.
func (s *FileStore) SaveIfAbsent(_ context.Context, model Model) (bool, error) {
	tmp, err := s.writeTemp(model)
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, s.path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create model file: %w", err)
	}

	return true, nil
}

func (s *FileStore) writeTemp(model Model) (string, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return "", fmt.Errorf("failed to marshal model: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	file, err := os.CreateTemp(dir, ".price_model-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create temp model file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to write temp model file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to close temp model file: %w", err)
	}

	return file.Name(), nil
}

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore shares one model between every instance behind the same redis.
type RedisStore struct {
	redis RedisClient
	key   string
}

func NewRedisStore(redis RedisClient, key string) *RedisStore {
	return &RedisStore{
		redis: redis,
		key:   key,
	}
}

func (s *RedisStore) Load(ctx context.Context) (Model, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Model{}, ErrModelNotFound
		}
		return Model{}, fmt.Errorf("failed to get model: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return Model{}, fmt.Errorf("failed to unmarshal model: %w", err)
	}

	return model, nil
}

func (s *RedisStore) Save(ctx context.Context, model Model) error {
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	if err := s.redis.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}

	return nil
}

func (s *RedisStore) SaveIfAbsent(ctx context.Context, model Model) (bool, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return false, fmt.Errorf("failed to marshal model: %w", err)
	}

	created, err := s.redis.SetNX(ctx, s.key, data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set model: %w", err)
	}

	return created, nil
}
