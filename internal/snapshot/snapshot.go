// Package snapshot описывает непрозрачный снимок расчета, который
// прикрепляется к объекту предложения (offer) во внешнем хранилище.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Strategy тип инвестиционной стратегии
type Strategy string

const (
	StrategyBestand   Strategy = "bestand"
	StrategyAufteiler Strategy = "aufteiler"
)

// ParseStrategy разбирает имя стратегии
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBestand, StrategyAufteiler:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Snapshot снимок параметров и результата расчета
type Snapshot struct {
	ID        uuid.UUID       `json:"id"`
	OfferID   string          `json:"offer_id,omitempty"`
	Strategy  Strategy        `json:"strategy"`
	Params    json.RawMessage `json:"params"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// New создает снимок с новым идентификатором
func New(offerID string, strategy Strategy, params, result interface{}) (*Snapshot, error) {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %w", err)
	}
	rawResult, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return &Snapshot{
		ID:        uuid.New(),
		OfferID:   offerID,
		Strategy:  strategy,
		Params:    rawParams,
		Result:    rawResult,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Validate проверяет обязательные поля
func (s *Snapshot) Validate() error {
	if s.ID == uuid.Nil {
		return errors.New("snapshot: empty id")
	}
	if _, err := ParseStrategy(string(s.Strategy)); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if len(s.Params) == 0 || len(s.Result) == 0 {
		return errors.New("snapshot: params and result are required")
	}
	return nil
}

// Encode сериализует снимок для сохранения
func Encode(s *Snapshot) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// Decode восстанавливает снимок из сохраненной записи
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DecodeResult разбирает результат снимка в out
func (s *Snapshot) DecodeResult(out interface{}) error {
	return json.Unmarshal(s.Result, out)
}
