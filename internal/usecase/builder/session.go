package builder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
)

// Clock возвращает текущее время; в тестах подменяется.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

type StartSessionUseCase struct {
	sessionRepo repository.BuilderSessionRepository
	clock       Clock
}

func NewStartSessionUseCase(sessionRepo repository.BuilderSessionRepository, clock Clock) *StartSessionUseCase {
	return &StartSessionUseCase{sessionRepo: sessionRepo, clock: clock}
}

func (uc *StartSessionUseCase) Execute(ctx context.Context) (*entity.BuilderSession, error) {
	session := entity.NewBuilderSession(uc.clock.now())
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

type GetSessionUseCase struct {
	sessionRepo repository.BuilderSessionRepository
}

func NewGetSessionUseCase(sessionRepo repository.BuilderSessionRepository) *GetSessionUseCase {
	return &GetSessionUseCase{sessionRepo: sessionRepo}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*entity.BuilderSession, error) {
	return uc.sessionRepo.FindByID(ctx, sessionID)
}

type DiscardSessionUseCase struct {
	sessionRepo repository.BuilderSessionRepository
}

func NewDiscardSessionUseCase(sessionRepo repository.BuilderSessionRepository) *DiscardSessionUseCase {
	return &DiscardSessionUseCase{sessionRepo: sessionRepo}
}

func (uc *DiscardSessionUseCase) Execute(ctx context.Context, sessionID uuid.UUID) error {
	return uc.sessionRepo.Delete(ctx, sessionID)
}

type ToggleServiceUseCase struct {
	sessionRepo repository.BuilderSessionRepository
	catalog     repository.CatalogRepository
	clock       Clock
}

func NewToggleServiceUseCase(sessionRepo repository.BuilderSessionRepository, catalog repository.CatalogRepository, clock Clock) *ToggleServiceUseCase {
	return &ToggleServiceUseCase{sessionRepo: sessionRepo, catalog: catalog, clock: clock}
}

// Execute переключает услугу и возвращает обновлённую сессию.
func (uc *ToggleServiceUseCase) Execute(ctx context.Context, sessionID uuid.UUID, serviceID string) (*entity.BuilderSession, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	service, err := uc.catalog.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	session.Toggle(*service, uc.clock.now())

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

type CustomizeServiceInput struct {
	SessionID   uuid.UUID
	ServiceID   string
	Notes       *string
	CustomPrice *float64
	ClearPrice  bool
}

type CustomizeServiceUseCase struct {
	sessionRepo repository.BuilderSessionRepository
	clock       Clock
}

func NewCustomizeServiceUseCase(sessionRepo repository.BuilderSessionRepository, clock Clock) *CustomizeServiceUseCase {
	return &CustomizeServiceUseCase{sessionRepo: sessionRepo, clock: clock}
}

func (uc *CustomizeServiceUseCase) Execute(ctx context.Context, input CustomizeServiceInput) (*entity.BuilderSession, error) {
	session, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if _, err := session.CustomizeService(input.ServiceID, input.Notes, input.CustomPrice, input.ClearPrice, uc.clock.now()); err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

type SetCustomizationsUseCase struct {
	sessionRepo repository.BuilderSessionRepository
	clock       Clock
}

func NewSetCustomizationsUseCase(sessionRepo repository.BuilderSessionRepository, clock Clock) *SetCustomizationsUseCase {
	return &SetCustomizationsUseCase{sessionRepo: sessionRepo, clock: clock}
}

func (uc *SetCustomizationsUseCase) Execute(ctx context.Context, sessionID uuid.UUID, c entity.Customizations) (*entity.BuilderSession, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.SetCustomizations(c, uc.clock.now())

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

type Direction string

const (
	DirectionNext Direction = "next"
	DirectionBack Direction = "back"
)

type NavigateUseCase struct {
	sessionRepo repository.BuilderSessionRepository
	clock       Clock
}

func NewNavigateUseCase(sessionRepo repository.BuilderSessionRepository, clock Clock) *NavigateUseCase {
	return &NavigateUseCase{sessionRepo: sessionRepo, clock: clock}
}

// Execute двигает мастер на шаг вперёд или назад. Переход вперёд с шага 2
// отклоняется, пока не заполнены обязательные поля.
func (uc *NavigateUseCase) Execute(ctx context.Context, sessionID uuid.UUID, direction Direction) (*entity.BuilderSession, error) {
	session, err := uc.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.now()
	switch direction {
	case DirectionNext:
		err = session.Next(now)
	case DirectionBack:
		err = session.Back(now)
	default:
		err = errUnknownDirection
	}
	if err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
