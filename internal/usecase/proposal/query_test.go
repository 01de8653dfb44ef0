package proposal_test

import (
	"context"
	"testing"
	"time"

	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-desk/internal/usecase/proposal"
)

func fixtureList() []*entity.Proposal {
	brand := sampleProposal("Brand Redesign", valueobject.ProposalStatusPending, 25000)
	brand.Tags = []string{"branding", "design"}
	brand.Priority = valueobject.PriorityHigh

	shop := sampleProposal("E-commerce Website", valueobject.ProposalStatusApproved, 45000)
	shop.Client.Name = "Global Marketing Inc"

	marketing := sampleProposal("Digital Marketing Strategy", valueobject.ProposalStatusDraft, 15000)
	marketing.Type = valueobject.ProposalTypeService
	marketing.Priority = valueobject.PriorityLow

	brandDraft := sampleProposal("Brand Guidelines Refresh", valueobject.ProposalStatusDraft, 8000)
	brandDraft.CreatedAt = fixedNow.Add(-60 * 24 * time.Hour)

	archived := sampleProposal("Old Brand Work", valueobject.ProposalStatusDraft, 3000)
	archived.Archive(fixedNow)

	return []*entity.Proposal{brand, shop, marketing, brandDraft, archived}
}

func titles(ps []*entity.Proposal) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestApplyFilter_StatusDraftOnly(t *testing.T) {
	got := proposal.ApplyFilter(fixtureList(), proposal.Filter{Status: "draft"}, fixedNow)

	if len(got) != 2 {
		t.Fatalf("expected 2 drafts, got %v", titles(got))
	}
	for _, p := range got {
		if p.Status != valueobject.ProposalStatusDraft {
			t.Errorf("non-draft %q in result", p.Title)
		}
	}
}

func TestApplyFilter_SearchIntersectsStatus(t *testing.T) {
	list := fixtureList()

	bySearch := proposal.ApplyFilter(list, proposal.Filter{Search: "BRAND"}, fixedNow)
	byStatus := proposal.ApplyFilter(list, proposal.Filter{Status: "draft"}, fixedNow)
	both := proposal.ApplyFilter(list, proposal.Filter{Search: "brand", Status: "draft"}, fixedNow)

	inStatus := map[string]bool{}
	for _, p := range byStatus {
		inStatus[p.ID.String()] = true
	}
	var want []string
	for _, p := range bySearch {
		if inStatus[p.ID.String()] {
			want = append(want, p.Title)
		}
	}

	got := titles(both)
	if len(got) != len(want) {
		t.Fatalf("expected intersection %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if len(got) != 1 || got[0] != "Brand Guidelines Refresh" {
		t.Errorf("unexpected intersection %v", got)
	}
}

func TestApplyFilter_SearchMatchesTagsAndClient(t *testing.T) {
	list := fixtureList()

	if got := proposal.ApplyFilter(list, proposal.Filter{Search: "design"}, fixedNow); len(got) != 1 {
		t.Errorf("expected tag match only, got %v", titles(got))
	}
	if got := proposal.ApplyFilter(list, proposal.Filter{Search: "global marketing"}, fixedNow); len(got) != 1 {
		t.Errorf("expected client match, got %v", titles(got))
	}
}

func TestApplyFilter_ArchivedVisibility(t *testing.T) {
	list := fixtureList()

	if got := proposal.ApplyFilter(list, proposal.Filter{}, fixedNow); len(got) != 4 {
		t.Errorf("archived must be hidden by default, got %v", titles(got))
	}
	if got := proposal.ApplyFilter(list, proposal.Filter{Archived: "include"}, fixedNow); len(got) != 5 {
		t.Errorf("expected all with include, got %v", titles(got))
	}
	got := proposal.ApplyFilter(list, proposal.Filter{Archived: "only"}, fixedNow)
	if len(got) != 1 || got[0].Title != "Old Brand Work" {
		t.Errorf("expected only archived, got %v", titles(got))
	}
}

func TestApplyFilter_AllAndDateRange(t *testing.T) {
	list := fixtureList()

	all := proposal.ApplyFilter(list, proposal.Filter{Status: "all", Priority: "all", Type: "all", Client: "all"}, fixedNow)
	if len(all) != 4 {
		t.Errorf("\"all\" must not restrict, got %v", titles(all))
	}

	recent := proposal.ApplyFilter(list, proposal.Filter{DateRange: "30d"}, fixedNow)
	for _, p := range recent {
		if p.Title == "Brand Guidelines Refresh" {
			t.Error("60 days old proposal must be outside 30d range")
		}
	}
	if len(recent) != 3 {
		t.Errorf("expected 3 recent proposals, got %v", titles(recent))
	}
}

func TestFilterValidate(t *testing.T) {
	bad := []proposal.Filter{
		{Status: "finished"},
		{Priority: "asap"},
		{Type: "gig"},
		{DateRange: "1y"},
		{Archived: "yes"},
	}
	for _, f := range bad {
		if err := f.Validate(); !apperror.IsValidation(err) {
			t.Errorf("expected validation error for %+v, got %v", f, err)
		}
	}
	if err := (proposal.Filter{Status: "all", DateRange: "7d"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplySort_AmountReversed(t *testing.T) {
	list := proposal.ApplyFilter(fixtureList(), proposal.Filter{}, fixedNow)

	asc := proposal.ApplySort(list, proposal.Sort{Key: proposal.SortByAmount, Direction: proposal.SortAsc})
	desc := proposal.ApplySort(list, proposal.Sort{Key: proposal.SortByAmount, Direction: proposal.SortDesc})

	if len(asc) != len(desc) {
		t.Fatalf("length mismatch")
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Errorf("desc is not the reverse of asc at %d", i)
		}
	}
	if asc[0].Amount != 8000 || desc[0].Amount != 45000 {
		t.Errorf("unexpected bounds: asc[0]=%v desc[0]=%v", asc[0].Amount, desc[0].Amount)
	}
}

func TestApplySort_TiesReverseExactly(t *testing.T) {
	first := sampleProposal("First", valueobject.ProposalStatusDraft, 5000)
	second := sampleProposal("Second", valueobject.ProposalStatusPending, 5000)
	third := sampleProposal("Third", valueobject.ProposalStatusApproved, 5000)
	cheap := sampleProposal("Cheap", valueobject.ProposalStatusDraft, 1000)
	list := []*entity.Proposal{first, second, cheap, third}

	asc := titles(proposal.ApplySort(list, proposal.Sort{Key: proposal.SortByAmount, Direction: proposal.SortAsc}))
	desc := titles(proposal.ApplySort(list, proposal.Sort{Key: proposal.SortByAmount, Direction: proposal.SortDesc}))

	wantAsc := []string{"Cheap", "First", "Second", "Third"}
	for i := range wantAsc {
		if asc[i] != wantAsc[i] {
			t.Fatalf("asc must keep input order for ties, got %v", asc)
		}
		if desc[len(desc)-1-i] != wantAsc[i] {
			t.Fatalf("desc must be the exact reverse of asc, got %v", desc)
		}
	}
}

func TestApplySort_DeadlineMissingLastAscending(t *testing.T) {
	soon := sampleProposal("Soon", valueobject.ProposalStatusPending, 1000)
	d := fixedNow.Add(48 * time.Hour)
	soon.Deadline = &d
	open := sampleProposal("Open", valueobject.ProposalStatusPending, 1000)
	open.Deadline = nil

	asc := titles(proposal.ApplySort([]*entity.Proposal{open, soon}, proposal.Sort{Key: proposal.SortByDeadline, Direction: proposal.SortAsc}))
	desc := titles(proposal.ApplySort([]*entity.Proposal{open, soon}, proposal.Sort{Key: proposal.SortByDeadline, Direction: proposal.SortDesc}))

	if asc[0] != "Soon" || asc[1] != "Open" {
		t.Errorf("missing deadline must sort last ascending, got %v", asc)
	}
	if desc[0] != "Open" || desc[1] != "Soon" {
		t.Errorf("desc must mirror asc, got %v", desc)
	}
}

func TestApplySort_DoesNotMutateInput(t *testing.T) {
	list := fixtureList()
	first := list[0].ID

	proposal.ApplySort(list, proposal.Sort{Key: proposal.SortByTitle, Direction: proposal.SortDesc})

	if list[0].ID != first {
		t.Error("input slice must stay untouched")
	}
}

func TestApplySort_TitleCaseInsensitiveAndStable(t *testing.T) {
	a := sampleProposal("alpha", valueobject.ProposalStatusDraft, 1)
	b := sampleProposal("Beta", valueobject.ProposalStatusDraft, 1)
	c := sampleProposal("ALPHA", valueobject.ProposalStatusDraft, 1)

	got := proposal.ApplySort([]*entity.Proposal{b, a, c}, proposal.Sort{Key: proposal.SortByTitle, Direction: proposal.SortAsc})
	want := []string{"alpha", "ALPHA", "Beta"}
	for i, title := range titles(got) {
		if title != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], title)
		}
	}
}

func TestSortToggle(t *testing.T) {
	s := proposal.DefaultSort

	s = s.Toggle(proposal.SortByAmount)
	if s.Key != proposal.SortByAmount || s.Direction != proposal.SortAsc {
		t.Errorf("new key must start asc, got %+v", s)
	}
	s = s.Toggle(proposal.SortByAmount)
	if s.Direction != proposal.SortDesc {
		t.Errorf("second click must switch to desc, got %+v", s)
	}
	s = s.Toggle(proposal.SortByAmount)
	if s.Direction != proposal.SortAsc {
		t.Errorf("third click must switch back to asc, got %+v", s)
	}
}

func TestParseSort(t *testing.T) {
	s, err := proposal.ParseSort("", "")
	if err != nil || s != proposal.DefaultSort {
		t.Errorf("expected default sort, got %+v, %v", s, err)
	}
	s, err = proposal.ParseSort("Amount", "")
	if err != nil || s.Key != proposal.SortByAmount || s.Direction != proposal.SortAsc {
		t.Errorf("unexpected %+v, %v", s, err)
	}
	if _, err := proposal.ParseSort("budget", "asc"); !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := proposal.ParseSort("title", "up"); !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListProposals(t *testing.T) {
	repo := newMockProposalRepository(fixtureList()...)
	uc := proposal.NewListProposalsUseCase(repo)

	out, err := uc.Execute(context.Background(), proposal.ListProposalsInput{
		Sort:  proposal.Sort{Key: proposal.SortByAmount, Direction: proposal.SortDesc},
		Limit: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 4 {
		t.Errorf("expected total 4, got %d", out.Total)
	}
	if len(out.Items) != 2 || out.Items[0].Amount != 45000 {
		t.Errorf("unexpected page %v", titles(out.Items))
	}
	if len(out.Options.Statuses) != 3 {
		t.Errorf("expected 3 distinct statuses, got %v", out.Options.Statuses)
	}

	if _, err := uc.Execute(context.Background(), proposal.ListProposalsInput{Filter: proposal.Filter{Status: "nope"}}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
