package proposal

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

// filterAll отключает фильтр.
const filterAll = "all"

// Filter описывает фильтры списка предложений. Пустое значение и "all" не ограничивают выборку.
type Filter struct {
	Status    string
	Priority  string
	Type      string
	Client    string
	Search    string
	DateRange string
	// Archived: "" скрывает архивные, "include" показывает все, "only" оставляет только архивные.
	Archived string
}

var dateRanges = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
}

// Validate проверяет значения enum-фильтров.
func (f Filter) Validate() error {
	if active(f.Status) && !valueobject.ProposalStatus(f.Status).IsValid() {
		return apperror.Validation("некорректный статус в фильтре")
	}
	if active(f.Priority) && !valueobject.Priority(f.Priority).IsValid() {
		return apperror.Validation("некорректный приоритет в фильтре")
	}
	if active(f.Type) && !valueobject.ProposalType(f.Type).IsValid() {
		return apperror.Validation("некорректный тип в фильтре")
	}
	if active(f.DateRange) {
		if _, ok := dateRanges[f.DateRange]; !ok {
			return apperror.Validation("некорректный период в фильтре")
		}
	}
	switch f.Archived {
	case "", "include", "only":
	default:
		return apperror.Validation("некорректное значение archived")
	}
	return nil
}

func active(v string) bool {
	return v != "" && v != filterAll
}

// ApplyFilter возвращает предложения, удовлетворяющие всем активным фильтрам, в исходном порядке.
func ApplyFilter(proposals []*entity.Proposal, f Filter, now time.Time) []*entity.Proposal {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	client := strings.ToLower(strings.TrimSpace(f.Client))
	if client == filterAll {
		client = ""
	}

	var since time.Time
	if d, ok := dateRanges[f.DateRange]; ok {
		since = now.Add(-d)
	}

	result := make([]*entity.Proposal, 0, len(proposals))
	for _, p := range proposals {
		switch f.Archived {
		case "only":
			if !p.Archived {
				continue
			}
		case "include":
		default:
			if p.Archived {
				continue
			}
		}
		if query != "" && !p.Matches(query) {
			continue
		}
		if active(f.Status) && string(p.Status) != f.Status {
			continue
		}
		if active(f.Priority) && string(p.Priority) != f.Priority {
			continue
		}
		if active(f.Type) && string(p.Type) != f.Type {
			continue
		}
		if client != "" && !strings.Contains(strings.ToLower(p.Client.Name), client) {
			continue
		}
		if !since.IsZero() && p.CreatedAt.Before(since) {
			continue
		}
		result = append(result, p)
	}
	return result
}

type SortKey string

const (
	SortByTitle     SortKey = "title"
	SortByClient    SortKey = "client"
	SortByStatus    SortKey = "status"
	SortByPriority  SortKey = "priority"
	SortByType      SortKey = "type"
	SortByAmount    SortKey = "amount"
	SortByDeadline  SortKey = "deadline"
	SortByCreatedAt SortKey = "created_at"
	SortByUpdatedAt SortKey = "updated_at"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type Sort struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSort ставит последние изменённые сверху.
var DefaultSort = Sort{Key: SortByUpdatedAt, Direction: SortDesc}

func ParseSort(key, direction string) (Sort, error) {
	s := DefaultSort
	if key != "" {
		k := SortKey(strings.ToLower(key))
		switch k {
		case SortByTitle, SortByClient, SortByStatus, SortByPriority, SortByType,
			SortByAmount, SortByDeadline, SortByCreatedAt, SortByUpdatedAt:
			s.Key = k
		case "client.name":
			s.Key = SortByClient
		default:
			return Sort{}, apperror.Validation("некорректное поле сортировки")
		}
		// Явный ключ без направления сортируется по возрастанию.
		s.Direction = SortAsc
	}
	switch SortDirection(strings.ToLower(direction)) {
	case "":
	case SortAsc:
		s.Direction = SortAsc
	case SortDesc:
		s.Direction = SortDesc
	default:
		return Sort{}, apperror.Validation("некорректное направление сортировки")
	}
	return s, nil
}

// Toggle повторяет поведение заголовка таблицы: повторный клик по ключу
// с направлением asc переключает на desc, всё остальное даёт asc.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key && s.Direction == SortAsc {
		return Sort{Key: key, Direction: SortDesc}
	}
	return Sort{Key: key, Direction: SortAsc}
}

// ApplySort возвращает новый отсортированный срез. Сортировка asc стабильна,
// desc в точности обратна asc, включая равные элементы.
func ApplySort(proposals []*entity.Proposal, s Sort) []*entity.Proposal {
	out := slices.Clone(proposals)
	slices.SortStableFunc(out, func(a, b *entity.Proposal) int {
		return compareBy(a, b, s.Key)
	})
	if s.Direction == SortDesc {
		slices.Reverse(out)
	}
	return out
}

func compareBy(a, b *entity.Proposal, key SortKey) int {
	switch key {
	case SortByTitle:
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortByClient:
		return cmp.Compare(strings.ToLower(a.Client.Name), strings.ToLower(b.Client.Name))
	case SortByStatus:
		return cmp.Compare(string(a.Status), string(b.Status))
	case SortByPriority:
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	case SortByType:
		return cmp.Compare(string(a.Type), string(b.Type))
	case SortByAmount:
		return cmp.Compare(a.Amount, b.Amount)
	case SortByDeadline:
		return compareTimePtr(a.Deadline, b.Deadline)
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
}

// compareTimePtr ставит отсутствующий дедлайн после любого заданного (при asc).
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}

// FilterOptions содержит уникальные значения для выпадающих фильтров.
type FilterOptions struct {
	Statuses   []string
	Priorities []string
	Types      []string
	Clients    []string
}

func CollectFilterOptions(proposals []*entity.Proposal) FilterOptions {
	var opts FilterOptions
	seen := map[string]struct{}{}
	add := func(dst *[]string, kind, v string) {
		key := kind + ":" + v
		if _, ok := seen[key]; ok || v == "" {
			return
		}
		seen[key] = struct{}{}
		*dst = append(*dst, v)
	}
	for _, p := range proposals {
		add(&opts.Statuses, "s", string(p.Status))
		add(&opts.Priorities, "p", string(p.Priority))
		add(&opts.Types, "t", string(p.Type))
		add(&opts.Clients, "c", p.Client.Name)
	}
	return opts
}
