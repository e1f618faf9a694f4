package tools

import "sort"

// ToolInfo описание инструмента для списка
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type tool struct {
	info    ToolInfo
	handler ToolHandler
}

// Registry набор доступных инструментов
type Registry struct {
	tools map[string]tool
}

// NewRegistry регистрирует все инструменты расчета
func NewRegistry(d Deps) *Registry {
	r := &Registry{tools: make(map[string]tool)}
	r.Register(ToolBestand,
		"Стратегия удержания (Bestand): финансирование, аннуитет, график погашения и прогноз капитала",
		CalcBestandHandler(d))
	r.Register(ToolAufteiler,
		"Стратегия перепродажи (Aufteiler): затраты, цена продажи по целевой доходности, прибыль и чувствительность",
		CalcAufteilerHandler(d))
	r.Register(ToolSnapshot,
		"Снимок расчета выбранной стратегии для сохранения в offer",
		CalcSnapshotHandler(d))
	return r
}

// Register добавляет или заменяет инструмент
func (r *Registry) Register(name, description string, h ToolHandler) {
	r.tools[name] = tool{
		info:    ToolInfo{Name: name, Description: description},
		handler: h,
	}
}

// Get возвращает обработчик по имени
func (r *Registry) Get(name string) (ToolHandler, bool) {
	t, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return t.handler, true
}

// List возвращает описания инструментов в алфавитном порядке
func (r *Registry) List() []ToolInfo {
	out := make([]ToolInfo, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
