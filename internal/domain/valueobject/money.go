package valueobject

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

const DefaultCurrency = "USD"

type Money struct {
	Amount   float64
	Currency string
}

func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, apperror.New(apperror.ErrCodeValidation, "сумма не может быть отрицательной")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Amount: amount, Currency: currency}, nil
}

func (m Money) String() string {
	return FormatCurrency(m.Amount, m.Currency)
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"RUB": "₽",
}

var enPrinter = message.NewPrinter(language.English)

// FormatCurrency форматирует сумму в en-US виде: "$25,000.00".
// Для валют без известного символа используется ISO код: "CHF 1,500.00".
func FormatCurrency(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	number := enPrinter.Sprintf("%.2f", amount)
	if symbol, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return sign + symbol + number
	}
	return sign + strings.ToUpper(currency) + " " + number
}

// FormatAmount форматирует целую сумму с разделителями разрядов: "25,000".
func FormatAmount(amount float64) string {
	return enPrinter.Sprintf("%.0f", amount)
}
