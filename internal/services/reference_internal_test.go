package services

import (
	"testing"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
)

func idPtr(n int64) *int64    { return &n }
func strPtr(s string) *string { return &s }

func TestQualifyRefsPartitions(t *testing.T) {
	refs := []domain.Ref{
		{ID: idPtr(4)},
		{Name: strPtr("salt")},
		{ID: idPtr(9)},
		{Name: strPtr("pepper")},
	}
	q, errs := qualifyRefs(refs)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(q.ids) != 2 || q.ids[0] != 4 || q.ids[1] != 9 {
		t.Errorf("unexpected ids: %v", q.ids)
	}
	if len(q.names) != 2 || q.names[0] != "salt" || q.names[1] != "pepper" {
		t.Errorf("unexpected names: %v", q.names)
	}
	if got := q.byID[9]; len(got) != 1 || got[0] != 2 {
		t.Errorf("id 9 should map to position 2, got %v", got)
	}
	if got := q.byName["pepper"]; len(got) != 1 || got[0] != 3 {
		t.Errorf("pepper should map to position 3, got %v", got)
	}
}

func TestQualifyRefsIDWinsOverName(t *testing.T) {
	refs := []domain.Ref{{ID: idPtr(7), Name: strPtr("salt")}}
	q, errs := qualifyRefs(refs)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(q.ids) != 1 || len(q.names) != 0 {
		t.Errorf("id should win when both are set: %+v", q)
	}
}

func TestQualifyRefsMalformedItem(t *testing.T) {
	empty := ""
	refs := []domain.Ref{
		{Name: strPtr("salt")},
		{},
		{Name: &empty},
	}
	_, errs := qualifyRefs(refs)
	if len(errs) != 2 {
		t.Fatalf("expected 2 failing items, got %v", errs)
	}
	for _, idx := range []int{1, 2} {
		item := errs[idx]
		if len(item["id"]) == 0 || item["id"][0] != domain.MsgMissingID {
			t.Errorf("item %d missing id message: %v", idx, item)
		}
		if len(item["name"]) == 0 || item["name"][0] != domain.MsgMissingName {
			t.Errorf("item %d missing name message: %v", idx, item)
		}
	}
}

func TestQualifyRefsDuplicateID(t *testing.T) {
	refs := []domain.Ref{
		{ID: idPtr(3)},
		{Name: strPtr("salt")},
		{ID: idPtr(3)},
	}
	_, errs := qualifyRefs(refs)
	if len(errs) != 2 {
		t.Fatalf("expected both duplicate positions flagged, got %v", errs)
	}
	for _, idx := range []int{0, 2} {
		if msgs := errs[idx]["id"]; len(msgs) == 0 || msgs[0] != domain.MsgMultipleEntries {
			t.Errorf("item %d should carry %q, got %v", idx, domain.MsgMultipleEntries, errs[idx])
		}
	}
	if _, ok := errs[1]; ok {
		t.Error("well-formed item should not be flagged")
	}
}

func TestQualifyRefsDuplicateName(t *testing.T) {
	refs := []domain.Ref{
		{Name: strPtr("salt")},
		{Name: strPtr("salt")},
	}
	_, errs := qualifyRefs(refs)
	if len(errs) != 2 {
		t.Fatalf("expected both positions flagged, got %v", errs)
	}
	for idx := range refs {
		if msgs := errs[idx]["name"]; len(msgs) == 0 || msgs[0] != domain.MsgMultipleEntries {
			t.Errorf("item %d should carry %q, got %v", idx, domain.MsgMultipleEntries, errs[idx])
		}
	}
}
