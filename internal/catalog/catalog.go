package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type fileCatalog struct {
	Categories []fileCategory `yaml:"categories"`
}

type fileCategory struct {
	Name     string        `yaml:"name"`
	Services []fileService `yaml:"services"`
}

type fileService struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Price        float64  `yaml:"price"`
	Timeline     string   `yaml:"timeline"`
	Customizable bool     `yaml:"customizable"`
	Includes     []string `yaml:"includes"`
}

// Parse разбирает YAML каталог и проверяет уникальность идентификаторов.
func Parse(data []byte) ([]entity.ServiceCategory, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: не удалось разобрать yaml: %w", err)
	}
	if len(raw.Categories) == 0 {
		return nil, fmt.Errorf("catalog: каталог пуст")
	}

	seen := make(map[string]struct{})
	categories := make([]entity.ServiceCategory, 0, len(raw.Categories))
	for _, c := range raw.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: категория без названия")
		}
		category := entity.ServiceCategory{Name: name}
		for _, s := range c.Services {
			id := strings.TrimSpace(s.ID)
			if id == "" {
				return nil, fmt.Errorf("catalog: услуга без id в категории %q", name)
			}
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("catalog: повторяющийся id услуги %q", id)
			}
			if s.Price < 0 {
				return nil, fmt.Errorf("catalog: отрицательная цена у услуги %q", id)
			}
			seen[id] = struct{}{}
			category.Services = append(category.Services, entity.Service{
				ID:           id,
				Name:         s.Name,
				Description:  s.Description,
				Price:        s.Price,
				Timeline:     s.Timeline,
				Includes:     append([]string(nil), s.Includes...),
				Customizable: s.Customizable,
				Category:     name,
			})
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Default возвращает встроенный каталог.
func Default() []entity.ServiceCategory {
	categories, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return categories
}

// LoadFile читает каталог с диска.
func LoadFile(path string) ([]entity.ServiceCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: не удалось прочитать %s: %w", path, err)
	}
	return Parse(data)
}

// Store хранит каталог и позволяет подменять его на лету.
type Store struct {
	mu         sync.RWMutex
	categories []entity.ServiceCategory
	byID       map[string]entity.Service
}

func NewStore(categories []entity.ServiceCategory) *Store {
	s := &Store{}
	s.Replace(categories)
	return s
}

// Replace атомарно подменяет содержимое каталога.
func (s *Store) Replace(categories []entity.ServiceCategory) {
	byID := make(map[string]entity.Service)
	for _, c := range categories {
		for _, svc := range c.Services {
			byID[svc.ID] = svc
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
	s.byID = byID
}

func (s *Store) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.byID[id]
	if !ok {
		return nil, apperror.ErrServiceNotFound
	}
	svc.Includes = append([]string(nil), svc.Includes...)
	return &svc, nil
}

func (s *Store) List(ctx context.Context) ([]entity.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []entity.Service
	for _, c := range s.categories {
		result = append(result, c.Services...)
	}
	return result, nil
}

func (s *Store) Categories(ctx context.Context) ([]entity.ServiceCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.ServiceCategory, len(s.categories))
	for i, c := range s.categories {
		result[i] = entity.ServiceCategory{
			Name:     c.Name,
			Services: append([]entity.Service(nil), c.Services...),
		}
	}
	return result, nil
}
