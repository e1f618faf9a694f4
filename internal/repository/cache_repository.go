package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CacheRepository хранит сериализованные результаты расчетов
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// CacheKey строит ключ кэша из имени инструмента и параметров.
// encoding/json сортирует ключи map, поэтому одинаковые параметры дают одинаковый ключ.
func CacheKey(tool string, params interface{}) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key params: %w", err)
	}
	return tool + ":" + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}
