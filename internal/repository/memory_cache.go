package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemoryCacheSize максимальное число записей кэша в памяти по умолчанию
const DefaultMemoryCacheSize = 10000

// MemoryCache кэш в памяти процесса, используется без Redis и в тестах.
// Записи живут не дольше ttl; при превышении size вытесняются самые старые.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

// NewMemoryCache создает кэш на size записей. ttl <= 0 отключает истечение.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size <= 0 {
		size = DefaultMemoryCacheSize
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	return m.lru.Get(key)
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.lru.Add(key, value)
	return nil
}

// Len возвращает количество записей
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
