package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
)

func generated(services ...entity.ServiceSelection) *entity.GeneratedProposal {
	return &entity.GeneratedProposal{
		ID:       uuid.New(),
		Services: services,
		Customizations: entity.Customizations{
			ClientName:         "Jane Doe",
			ClientCompany:      "Acme Inc",
			ProjectTitle:       "Website Relaunch",
			ProjectDescription: "New marketing site",
		},
		TotalAmount: entity.TotalOf(services),
		GeneratedAt: time.Date(2024, 2, 5, 15, 4, 0, 0, time.UTC),
	}
}

func tbody(t *testing.T, page string) string {
	t.Helper()
	start := strings.Index(page, "<tbody>")
	end := strings.Index(page, "</tbody>")
	require.True(t, start >= 0 && end > start, "services table body not found")
	return page[start:end]
}

func TestHTML_ZeroServices(t *testing.T) {
	r, err := NewRenderer(DefaultAgency)
	require.NoError(t, err)

	out, err := r.HTML(generated(), "/md")
	require.NoError(t, err)
	page := string(out)

	assert.NotContains(t, tbody(t, page), "<tr>")
	assert.Contains(t, page, "Total Investment:</td><td class=\"price\">$0</td>")
	assert.Contains(t, page, "FIG-20240205-001")
	assert.Contains(t, page, "February 05, 2024")
	assert.NotContains(t, page, "Additional Requirements")
}

func TestHTML_ServiceRows(t *testing.T) {
	r, err := NewRenderer(DefaultAgency)
	require.NoError(t, err)

	custom := 9000.0
	g := generated(
		entity.ServiceSelection{
			ServiceID: "web-design", Selected: true, Name: "Website Design", Price: 25000,
			Timeline: "6-8 weeks", Includes: []string{"a", "b", "c", "d", "e"},
		},
		entity.ServiceSelection{
			ServiceID: "consulting", Selected: true, Name: "Consulting", Price: 5000,
			CustomPrice: &custom, Notes: "Two workshops",
		},
		entity.ServiceSelection{ServiceID: "seo", Selected: false, Name: "SEO", Price: 6000},
	)
	g.Customizations.AdditionalNotes = "Kickoff in March"

	out, err := r.HTML(g, "/md")
	require.NoError(t, err)
	body := tbody(t, string(out))

	assert.Equal(t, 2, strings.Count(body, "<tr>"))
	assert.Contains(t, body, "+ 2 more items")
	assert.NotContains(t, body, "✓ d")
	assert.Contains(t, body, "$25,000")
	assert.Contains(t, body, "$9,000")
	assert.Contains(t, body, "<td>Custom</td>")
	assert.Contains(t, body, "Two workshops")
	assert.NotContains(t, body, "SEO")
	assert.Contains(t, string(out), "$34,000")
	assert.Contains(t, string(out), "Kickoff in March")
}

func TestHTML_EscapesInput(t *testing.T) {
	r, err := NewRenderer(DefaultAgency)
	require.NoError(t, err)

	g := generated()
	g.Customizations.ProjectTitle = "<script>alert(1)</script>"

	out, err := r.HTML(g, "/md")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>alert(1)</script>")
}

func TestMarkdown(t *testing.T) {
	r, err := NewRenderer(DefaultAgency)
	require.NoError(t, err)

	out, err := r.Markdown(generated(entity.ServiceSelection{
		ServiceID: "web-design", Selected: true, Name: "Website Design", Price: 25000, Timeline: "6-8 weeks",
	}))
	require.NoError(t, err)

	assert.Contains(t, out, "Project Proposal")
	assert.Contains(t, out, "FIG-20240205-001")
	assert.Contains(t, out, "Website Design")
	assert.Contains(t, out, "$25,000")
	assert.NotContains(t, out, "<table>")
	assert.NotContains(t, out, "Back to Builder")
}
