package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"propertyhub/internal/models"
)

type CacheService interface {
	// Unit snapshot caching
	GetUnit(ctx context.Context, unitID uuid.UUID) (*models.Unit, error)
	SetUnit(ctx context.Context, unit *models.Unit, ttl time.Duration) error
	DeleteUnit(ctx context.Context, unitID uuid.UUID) error

	// Building snapshot caching
	GetBuilding(ctx context.Context, buildingID uuid.UUID) (*models.Building, error)
	SetBuilding(ctx context.Context, building *models.Building, ttl time.Duration) error
	DeleteBuilding(ctx context.Context, buildingID uuid.UUID) error

	// Generic string operations for refresh tokens and the token blacklist
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as bare host:port.
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetUnit(ctx context.Context, unitID uuid.UUID) (*models.Unit, error) {
	key := fmt.Sprintf("propertyhub:unit:%s", unitID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var unit models.Unit
	if err := json.Unmarshal(data, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *redisCacheService) SetUnit(ctx context.Context, unit *models.Unit, ttl time.Duration) error {
	key := fmt.Sprintf("propertyhub:unit:%s", unit.ID.String())
	data, err := json.Marshal(unit)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteUnit(ctx context.Context, unitID uuid.UUID) error {
	key := fmt.Sprintf("propertyhub:unit:%s", unitID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetBuilding(ctx context.Context, buildingID uuid.UUID) (*models.Building, error) {
	key := fmt.Sprintf("propertyhub:building:%s", buildingID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var building models.Building
	if err := json.Unmarshal(data, &building); err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *redisCacheService) SetBuilding(ctx context.Context, building *models.Building, ttl time.Duration) error {
	key := fmt.Sprintf("propertyhub:building:%s", building.ID.String())
	data, err := json.Marshal(building)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteBuilding(ctx context.Context, buildingID uuid.UUID) error {
	key := fmt.Sprintf("propertyhub:building:%s", buildingID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil // cache miss
		}
		return "", err
	}
	return val, nil
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
