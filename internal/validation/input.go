package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Ограничения полей форм
const (
	MaxProposalTitleLength       = 200
	MaxProposalDescriptionLength = 5000
	MaxClientNameLength          = 200
	MaxNotesLength               = 5000
	MaxTagLength                 = 50
	MaxTagsCount                 = 20
	MaxDeliverablesCount         = 50
	MaxAmount                    = 100000000.0 // 100 миллионов
)

var (
	emailLocalRegex  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
)

// ValidateLength проверяет длину строки в символах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return fmt.Errorf("некорректный формат email")
	}
	if len(local) == 0 || len(local) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domain) == 0 || len(domain) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}
	if !emailLocalRegex.MatchString(local) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !emailDomainRegex.MatchString(domain) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateProposalText проверяет длину названия, описания и заметок предложения.
func ValidateProposalText(title, description, notes string) error {
	if err := ValidateLength("название", strings.TrimSpace(title), 0, MaxProposalTitleLength); err != nil {
		return err
	}
	if err := ValidateLength("описание", strings.TrimSpace(description), 0, MaxProposalDescriptionLength); err != nil {
		return err
	}
	return ValidateLength("заметки", notes, 0, MaxNotesLength)
}

// ValidateAmount проверяет сумму предложения.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("сумма не может быть отрицательной")
	}
	if amount > MaxAmount {
		return fmt.Errorf("сумма не может превышать %.0f", MaxAmount)
	}
	return nil
}

// ValidateTags проверяет теги: без пустых значений и повторов без учёта регистра.
func ValidateTags(tags []string) error {
	if len(tags) > MaxTagsCount {
		return fmt.Errorf("количество тегов не может превышать %d", MaxTagsCount)
	}

	seen := make(map[string]bool)
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return fmt.Errorf("тег не может быть пустым")
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return fmt.Errorf("тег не может быть длиннее %d символов", MaxTagLength)
		}
		lower := strings.ToLower(tag)
		if seen[lower] {
			return fmt.Errorf("тег '%s' указан дважды", tag)
		}
		seen[lower] = true
	}
	return nil
}

// ValidateDeliverables проверяет список результатов работ.
func ValidateDeliverables(items []string) error {
	if len(items) > MaxDeliverablesCount {
		return fmt.Errorf("количество результатов не может превышать %d", MaxDeliverablesCount)
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("результат работ не может быть пустым")
		}
	}
	return nil
}
