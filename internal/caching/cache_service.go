package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"bizsetu/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Business draft caching
	GetBusinessDraft(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error)
	SetBusinessDraft(ctx context.Context, draft *models.BusinessDraft, ttl time.Duration) error
	DeleteBusinessDraft(ctx context.Context, ownerID uuid.UUID) error

	// Location caching
	GetLocations(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error)
	SetLocations(ctx context.Context, ownerID uuid.UUID, locations []*models.BusinessLocation, ttl time.Duration) error
	DeleteLocations(ctx context.Context, ownerID uuid.UUID) error

	// Brand catalog caching
	GetBrands(ctx context.Context, kind string) ([]*models.Brand, error)
	SetBrands(ctx context.Context, kind string, brands []*models.Brand, ttl time.Duration) error
	DeleteBrands(ctx context.Context, kind string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
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

func draftKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("bizsetu:draft:%s", ownerID.String())
}

func locationsKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("bizsetu:locations:%s", ownerID.String())
}

func brandsKey(kind string) string {
	return fmt.Sprintf("bizsetu:brands:%s", kind)
}

func (r *redisCacheService) GetBusinessDraft(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error) {
	data, err := r.client.Get(ctx, draftKey(ownerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var draft models.BusinessDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *redisCacheService) SetBusinessDraft(ctx context.Context, draft *models.BusinessDraft, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, draftKey(draft.OwnerID), data, ttl).Err()
}

func (r *redisCacheService) DeleteBusinessDraft(ctx context.Context, ownerID uuid.UUID) error {
	return r.client.Del(ctx, draftKey(ownerID)).Err()
}

func (r *redisCacheService) GetLocations(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error) {
	data, err := r.client.Get(ctx, locationsKey(ownerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var locations []*models.BusinessLocation
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *redisCacheService) SetLocations(ctx context.Context, ownerID uuid.UUID, locations []*models.BusinessLocation, ttl time.Duration) error {
	data, err := json.Marshal(locations)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, locationsKey(ownerID), data, ttl).Err()
}

func (r *redisCacheService) DeleteLocations(ctx context.Context, ownerID uuid.UUID) error {
	return r.client.Del(ctx, locationsKey(ownerID)).Err()
}

func (r *redisCacheService) GetBrands(ctx context.Context, kind string) ([]*models.Brand, error) {
	data, err := r.client.Get(ctx, brandsKey(kind)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var brands []*models.Brand
	if err := json.Unmarshal(data, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *redisCacheService) SetBrands(ctx context.Context, kind string, brands []*models.Brand, ttl time.Duration) error {
	data, err := json.Marshal(brands)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, brandsKey(kind), data, ttl).Err()
}

func (r *redisCacheService) DeleteBrands(ctx context.Context, kind string) error {
	return r.client.Del(ctx, brandsKey(kind)).Err()
}
