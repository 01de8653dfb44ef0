package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

// Шаги конструктора предложений.
const (
	BuilderStepServices      = 1
	BuilderStepCustomization = 2
	BuilderStepSummary       = 3
)

// ServiceSelection описывает запись карты выбора услуг. Поля каталога копируются при выборе.
type ServiceSelection struct {
	ServiceID    string
	Selected     bool
	Notes        string
	CustomPrice  *float64
	Name         string
	Description  string
	Price        float64
	Timeline     string
	Includes     []string
	Customizable bool
}

// EffectivePrice возвращает индивидуальную цену, если она задана, иначе цену каталога.
func (s ServiceSelection) EffectivePrice() float64 {
	if s.CustomPrice != nil {
		return *s.CustomPrice
	}
	return s.Price
}

type Customizations struct {
	ClientName         string
	ClientCompany      string
	ProjectTitle       string
	ProjectDescription string
	Timeline           string
	AdditionalNotes    string
}

// MissingRequired возвращает незаполненные обязательные поля шага 2.
func (c Customizations) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(c.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if strings.TrimSpace(c.ClientCompany) == "" {
		missing = append(missing, "client_company")
	}
	if strings.TrimSpace(c.ProjectTitle) == "" {
		missing = append(missing, "project_title")
	}
	if strings.TrimSpace(c.ProjectDescription) == "" {
		missing = append(missing, "project_description")
	}
	return missing
}

// BuilderSession хранит состояние мастера между запросами.
type BuilderSession struct {
	ID             uuid.UUID
	Step           int
	Selections     map[string]*ServiceSelection
	order          []string
	Customizations Customizations
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewBuilderSession(now time.Time) *BuilderSession {
	return &BuilderSession{
		ID:         uuid.New(),
		Step:       BuilderStepServices,
		Selections: make(map[string]*ServiceSelection),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Toggle переключает выбор услуги. При выборе подтягиваются цена и сроки из каталога,
// заметки и индивидуальная цена сохраняются между переключениями.
func (b *BuilderSession) Toggle(service Service, now time.Time) *ServiceSelection {
	sel, ok := b.Selections[service.ID]
	if !ok {
		sel = &ServiceSelection{ServiceID: service.ID}
		b.Selections[service.ID] = sel
		b.order = append(b.order, service.ID)
	}
	sel.Selected = !sel.Selected
	if sel.Selected {
		sel.Name = service.Name
		sel.Description = service.Description
		sel.Price = service.Price
		sel.Timeline = service.Timeline
		sel.Includes = append([]string(nil), service.Includes...)
		sel.Customizable = service.Customizable
	}
	b.UpdatedAt = now
	return sel
}

// CustomizeService задаёт заметки и индивидуальную цену выбранной услуги.
// nil означает "не менять"; clearPrice сбрасывает индивидуальную цену.
func (b *BuilderSession) CustomizeService(serviceID string, notes *string, customPrice *float64, clearPrice bool, now time.Time) (*ServiceSelection, error) {
	sel, ok := b.Selections[serviceID]
	if !ok || !sel.Selected {
		return nil, apperror.Validation("услуга не выбрана")
	}
	if notes != nil {
		sel.Notes = *notes
	}
	switch {
	case clearPrice:
		sel.CustomPrice = nil
	case customPrice != nil:
		if !sel.Customizable {
			return nil, apperror.Validation("цену этой услуги нельзя изменить")
		}
		if *customPrice < 0 {
			return nil, apperror.Validation("цена не может быть отрицательной")
		}
		price := *customPrice
		sel.CustomPrice = &price
	}
	b.UpdatedAt = now
	return sel, nil
}

func (b *BuilderSession) SetCustomizations(c Customizations, now time.Time) {
	b.Customizations = c
	b.UpdatedAt = now
}

// SelectedServices возвращает выбранные услуги в порядке первого выбора.
func (b *BuilderSession) SelectedServices() []ServiceSelection {
	out := make([]ServiceSelection, 0, len(b.order))
	for _, id := range b.order {
		if sel := b.Selections[id]; sel != nil && sel.Selected {
			out = append(out, *sel)
		}
	}
	return out
}

// AllSelections возвращает все записи карты выбора, включая снятые.
func (b *BuilderSession) AllSelections() []ServiceSelection {
	out := make([]ServiceSelection, 0, len(b.order))
	for _, id := range b.order {
		if sel := b.Selections[id]; sel != nil {
			out = append(out, *sel)
		}
	}
	return out
}

func (b *BuilderSession) TotalAmount() float64 {
	return TotalOf(b.SelectedServices())
}

// TotalOf суммирует эффективные цены выбранных услуг.
func TotalOf(selections []ServiceSelection) float64 {
	total := 0.0
	for _, s := range selections {
		if s.Selected {
			total += s.EffectivePrice()
		}
	}
	return total
}

func (b *BuilderSession) CanProceed() bool {
	if b.Step == BuilderStepCustomization {
		return len(b.Customizations.MissingRequired()) == 0
	}
	return true
}

func (b *BuilderSession) Next(now time.Time) error {
	if b.Step >= BuilderStepSummary {
		return apperror.New(apperror.ErrCodeBadRequest, "это последний шаг, используйте генерацию")
	}
	if !b.CanProceed() {
		return apperror.Validation("заполните обязательные поля: " + strings.Join(b.Customizations.MissingRequired(), ", "))
	}
	b.Step++
	b.UpdatedAt = now
	return nil
}

func (b *BuilderSession) Back(now time.Time) error {
	if b.Step <= BuilderStepServices {
		return apperror.New(apperror.ErrCodeBadRequest, "это первый шаг")
	}
	b.Step--
	b.UpdatedAt = now
	return nil
}

// Generate снимает снимок мастера для страницы предпросмотра.
func (b *BuilderSession) Generate(now time.Time) (*GeneratedProposal, error) {
	if b.Step != BuilderStepSummary {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "генерация доступна только на шаге итогов")
	}
	if missing := b.Customizations.MissingRequired(); len(missing) > 0 {
		return nil, apperror.Validation("заполните обязательные поля: " + strings.Join(missing, ", "))
	}
	services := b.AllSelections()
	for i := range services {
		services[i].Includes = append([]string(nil), services[i].Includes...)
		if services[i].CustomPrice != nil {
			price := *services[i].CustomPrice
			services[i].CustomPrice = &price
		}
	}
	return &GeneratedProposal{
		ID:             uuid.New(),
		SessionID:      b.ID,
		Services:       services,
		Customizations: b.Customizations,
		TotalAmount:    b.TotalAmount(),
		GeneratedAt:    now,
	}, nil
}

// Clone возвращает независимую копию сессии.
func (b *BuilderSession) Clone() *BuilderSession {
	c := *b
	c.order = append([]string(nil), b.order...)
	c.Selections = make(map[string]*ServiceSelection, len(b.Selections))
	for id, sel := range b.Selections {
		s := sel.clone()
		c.Selections[id] = &s
	}
	return &c
}

func (s ServiceSelection) clone() ServiceSelection {
	s.Includes = append([]string(nil), s.Includes...)
	if s.CustomPrice != nil {
		price := *s.CustomPrice
		s.CustomPrice = &price
	}
	return s
}

// GeneratedProposal передаётся из конструктора в предпросмотр.
type GeneratedProposal struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	Services       []ServiceSelection
	Customizations Customizations
	TotalAmount    float64
	GeneratedAt    time.Time
}

// Clone возвращает независимую копию вместе с выбранными услугами.
func (g *GeneratedProposal) Clone() *GeneratedProposal {
	c := *g
	if g.Services != nil {
		c.Services = make([]ServiceSelection, len(g.Services))
		for i, sel := range g.Services {
			c.Services[i] = sel.clone()
		}
	}
	return &c
}

func (g *GeneratedProposal) SelectedServices() []ServiceSelection {
	out := make([]ServiceSelection, 0, len(g.Services))
	for _, s := range g.Services {
		if s.Selected {
			out = append(out, s)
		}
	}
	return out
}

// Number возвращает номер документа вида FIG-20240205-001.
func (g *GeneratedProposal) Number() string {
	return "FIG-" + g.GeneratedAt.Format("20060102") + "-001"
}
