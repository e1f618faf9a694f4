package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/internal/metrics"
	"github.com/cloud-ru/mcp-realestate-go/internal/repository"
	"github.com/cloud-ru/mcp-realestate-go/internal/snapshot"
	"github.com/cloud-ru/mcp-realestate-go/internal/validators"
)

const (
	ToolBestand   = "calc_bestand"
	ToolAufteiler = "calc_aufteiler"
	ToolSnapshot  = "calc_snapshot"
)

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Deps зависимости обработчиков инструментов
type Deps struct {
	Config *config.Config
	Tracer trace.Tracer
	Cache  repository.CacheRepository
	Log    zerolog.Logger
}

func (d Deps) tracer() trace.Tracer {
	if d.Tracer == nil {
		return noop.NewTracerProvider().Tracer("tools")
	}
	return d.Tracer
}

// instrument оборачивает расчет в спан, метрики и логирование
func (d Deps) instrument(ctx context.Context, toolName string, calc func(context.Context, trace.Span) (interface{}, error)) (interface{}, error) {
	ctx, span := d.tracer().Start(ctx, toolName)
	defer span.End()

	metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()
	start := time.Now()

	result, err := calc(ctx, span)
	metrics.CalculationDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())

	if err != nil {
		status, errType := "error", "calculation"
		if errors.Is(err, ErrInvalidParams) {
			status, errType = "validation_error", "validation"
		}
		span.SetAttributes(attribute.String("error", errType+"_error"))
		span.SetStatus(codes.Error, err.Error())
		metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, errType).Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "error").Inc()
		d.Log.Warn().Err(err).Str("tool", toolName).Msg("tool call failed")
		return nil, err
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()
	d.Log.Debug().Str("tool", toolName).Dur("took", time.Since(start)).Msg("tool call completed")

	return result, nil
}

// cached возвращает результат из кэша или вычисляет и сохраняет его.
// Модели детерминированы, поэтому кэшированный результат совпадает с новым расчетом.
func cached[T any](ctx context.Context, d Deps, toolName string, params interface{}, compute func() T) T {
	if d.Cache == nil {
		return compute()
	}

	key, err := repository.CacheKey(toolName, params)
	if err != nil {
		return compute()
	}

	if raw, ok := d.Cache.Get(ctx, key); ok {
		var hit T
		if err := json.Unmarshal([]byte(raw), &hit); err == nil {
			metrics.CacheLookups.WithLabelValues(toolName, "hit").Inc()
			return hit
		}
	}
	metrics.CacheLookups.WithLabelValues(toolName, "miss").Inc()

	result := compute()
	if raw, err := json.Marshal(result); err == nil {
		if err := d.Cache.Set(ctx, key, string(raw)); err != nil {
			d.Log.Warn().Err(err).Str("tool", toolName).Msg("failed to cache result")
		}
	}
	return result
}

func (d Deps) runBestand(ctx context.Context, span trace.Span, params map[string]interface{}) (calculations.BestandParams, calculations.BestandResult, error) {
	p, err := BestandParamsFrom(params)
	if err != nil {
		return p, calculations.BestandResult{}, err
	}

	span.SetAttributes(
		attribute.Float64("purchase_price", p.PurchasePrice),
		attribute.Float64("monthly_rent", p.MonthlyRent),
		attribute.Float64("equity_percent", p.EquityPercent),
		attribute.Float64("interest_rate", p.InterestRate),
		attribute.Float64("repayment_rate", p.RepaymentRate),
	)

	if err := validators.CheckBestand(d.Config, p); err != nil {
		return p, calculations.BestandResult{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	result := cached(ctx, d, ToolBestand, p, func() calculations.BestandResult {
		return calculations.CalcBestandFull(p)
	})

	span.SetAttributes(
		attribute.Float64("yearly_annuity", result.YearlyAnnuity),
		attribute.Float64("gross_yield", result.GrossYield),
		attribute.Int("full_repayment_year", result.FullRepaymentYear),
	)
	return p, result, nil
}

func (d Deps) runAufteiler(ctx context.Context, span trace.Span, params map[string]interface{}) (calculations.AufteilerParams, calculations.AufteilerResult, error) {
	p, err := AufteilerParamsFrom(params)
	if err != nil {
		return p, calculations.AufteilerResult{}, err
	}

	span.SetAttributes(
		attribute.Float64("purchase_price", p.PurchasePrice),
		attribute.Float64("yearly_rent", p.YearlyRent),
		attribute.Float64("target_yield", p.TargetYield),
		attribute.Float64("holding_period_months", p.HoldingPeriodMonths),
	)

	if err := validators.CheckAufteiler(d.Config, p); err != nil {
		return p, calculations.AufteilerResult{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	result := cached(ctx, d, ToolAufteiler, p, func() calculations.AufteilerResult {
		return calculations.CalcAufteilerFull(p)
	})

	span.SetAttributes(
		attribute.Float64("sales_price_gross", result.SalesPriceGross),
		attribute.Float64("profit", result.Profit),
	)
	return p, result, nil
}

// CalcBestandHandler обрабатывает запрос на расчет стратегии удержания
func CalcBestandHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return d.instrument(ctx, ToolBestand, func(ctx context.Context, span trace.Span) (interface{}, error) {
			_, result, err := d.runBestand(ctx, span, params)
			if err != nil {
				return nil, err
			}
			return result, nil
		})
	}
}

// CalcAufteilerHandler обрабатывает запрос на расчет стратегии перепродажи
func CalcAufteilerHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return d.instrument(ctx, ToolAufteiler, func(ctx context.Context, span trace.Span) (interface{}, error) {
			_, result, err := d.runAufteiler(ctx, span, params)
			if err != nil {
				return nil, err
			}
			return result, nil
		})
	}
}

// CalcSnapshotHandler рассчитывает выбранную стратегию и возвращает снимок для сохранения в offer
func CalcSnapshotHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return d.instrument(ctx, ToolSnapshot, func(ctx context.Context, span trace.Span) (interface{}, error) {
			name, err := getString(params, "strategy", true)
			if err != nil {
				return nil, err
			}
			strategy, err := snapshot.ParseStrategy(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidParams, err)
			}
			offerID, err := getString(params, "offer_id", false)
			if err != nil {
				return nil, err
			}
			inner, ok := params["params"].(map[string]interface{})
			if !ok {
				return nil, invalidParam("params")
			}

			span.SetAttributes(
				attribute.String("strategy", string(strategy)),
				attribute.String("offer_id", offerID),
			)

			var p, result interface{}
			switch strategy {
			case snapshot.StrategyBestand:
				p, result, err = d.runBestand(ctx, span, inner)
			case snapshot.StrategyAufteiler:
				p, result, err = d.runAufteiler(ctx, span, inner)
			}
			if err != nil {
				return nil, err
			}

			s, err := snapshot.New(offerID, strategy, p, result)
			if err != nil {
				return nil, fmt.Errorf("ошибка при создании снимка: %w", err)
			}
			return s, nil
		})
	}
}
