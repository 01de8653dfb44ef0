package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
)

//go:embed templates/preview.html
var templateFS embed.FS

// visibleIncludes ограничивает число пунктов состава услуги в таблице.
const visibleIncludes = 3

type Agency struct {
	Name    string
	Tagline string
	Email   string
	Phone   string
	Website string
}

var DefaultAgency = Agency{
	Name:    "FIGMINTS Agency",
	Tagline: "Professional Digital Solutions",
	Email:   "contact@figmints.net",
	Phone:   "+1 (555) 123-4567",
	Website: "www.figmints.net",
}

type serviceRow struct {
	Name         string
	Notes        string
	Description  string
	Includes     []string
	MoreIncludes int
	Timeline     string
	Price        string
}

type previewView struct {
	Agency             Agency
	Number             string
	Date               string
	GeneratedAt        string
	Year               int
	ProjectTitle       string
	ProjectDescription string
	AdditionalNotes    string
	ClientName         string
	ClientCompany      string
	Timeline           string
	Services           []serviceRow
	Total              string
	MarkdownURL        string
}

// Renderer рендерит печатную версию сгенерированного предложения.
type Renderer struct {
	tmpl      *template.Template
	agency    Agency
	converter *md.Converter
}

func NewRenderer(agency Agency) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/preview.html")
	if err != nil {
		return nil, fmt.Errorf("render: не удалось разобрать шаблон: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Renderer{tmpl: tmpl, agency: agency, converter: converter}, nil
}

// HTML возвращает полную страницу предпросмотра.
func (r *Renderer) HTML(g *entity.GeneratedProposal, markdownURL string) ([]byte, error) {
	view := r.view(g)
	view.MarkdownURL = markdownURL
	return r.execute("page", view)
}

// Markdown возвращает тот же документ в формате GitHub-flavored markdown.
func (r *Renderer) Markdown(g *entity.GeneratedProposal) (string, error) {
	doc, err := r.execute("document", r.view(g))
	if err != nil {
		return "", err
	}
	out, err := r.converter.ConvertString(string(doc))
	if err != nil {
		return "", fmt.Errorf("render: не удалось сконвертировать в markdown: %w", err)
	}
	return out, nil
}

func (r *Renderer) execute(name string, view previewView) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return nil, fmt.Errorf("render: ошибка выполнения шаблона %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) view(g *entity.GeneratedProposal) previewView {
	c := g.Customizations
	selected := g.SelectedServices()

	rows := make([]serviceRow, 0, len(selected))
	for _, s := range selected {
		row := serviceRow{
			Name:        s.Name,
			Notes:       s.Notes,
			Description: s.Description,
			Timeline:    s.Timeline,
			Price:       formatPrice(s.EffectivePrice()),
		}
		if row.Timeline == "" {
			row.Timeline = "Custom"
		}
		row.Includes = s.Includes
		if len(s.Includes) > visibleIncludes {
			row.Includes = s.Includes[:visibleIncludes]
			row.MoreIncludes = len(s.Includes) - visibleIncludes
		}
		rows = append(rows, row)
	}

	return previewView{
		Agency:             r.agency,
		Number:             g.Number(),
		Date:               g.GeneratedAt.Format("January 02, 2006"),
		GeneratedAt:        g.GeneratedAt.Format("January 02, 2006 at 3:04 PM"),
		Year:               g.GeneratedAt.Year(),
		ProjectTitle:       c.ProjectTitle,
		ProjectDescription: c.ProjectDescription,
		AdditionalNotes:    c.AdditionalNotes,
		ClientName:         c.ClientName,
		ClientCompany:      c.ClientCompany,
		Timeline:           c.Timeline,
		Services:           rows,
		Total:              formatPrice(g.TotalAmount),
	}
}

func formatPrice(amount float64) string {
	return "$" + valueobject.FormatAmount(amount)
}
