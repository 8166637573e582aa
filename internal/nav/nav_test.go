package nav

import (
	"testing"

	"github.com/creatorsmela/admin-console/internal/models"
)

func eventKeys(items []Item) map[string]bool {
	keys := make(map[string]bool, len(items))
	for _, item := range items {
		keys[item.EventKey] = true
	}
	return keys
}

func TestAdminSeesEverything(t *testing.T) {
	items := ForRole(models.RoleAdmin)
	if len(items) != len(Items()) {
		t.Fatalf("admin should see all %d entries, got %d", len(Items()), len(items))
	}
}

func TestFinanceManagerGating(t *testing.T) {
	keys := eventKeys(ForRole(models.RoleFinanceManager))
	for _, want := range []string{"dashboard", "profile", "video", "payment", "creators"} {
		if !keys[want] {
			t.Fatalf("finance manager missing %s", want)
		}
	}
	for _, blocked := range []string{"campaign", "users"} {
		if keys[blocked] {
			t.Fatalf("finance manager must not see %s", blocked)
		}
	}
}

func TestOperationManagerGating(t *testing.T) {
	keys := eventKeys(ForRole(models.RoleOperationManager))
	if !keys["video"] {
		t.Fatal("operation manager should see videos")
	}
	for _, blocked := range []string{"campaign", "users", "payment"} {
		if keys[blocked] {
			t.Fatalf("operation manager must not see %s", blocked)
		}
	}
}

func TestPlainUserGating(t *testing.T) {
	keys := eventKeys(ForRole(models.RoleUser))
	want := map[string]bool{"dashboard": true, "profile": true, "creators": true}
	if len(keys) != len(want) {
		t.Fatalf("expected exactly %v, got %v", want, keys)
	}
	for k := range want {
		if !keys[k] {
			t.Fatalf("user missing %s", k)
		}
	}
}

func TestResolveMatchesNestedPaths(t *testing.T) {
	item, ok := Resolve("/video/123/edit")
	if !ok || item.EventKey != "video" {
		t.Fatalf("expected video section, got %+v ok=%v", item, ok)
	}

	item, ok = Resolve("/campaign")
	if !ok || item.EventKey != "campaign" {
		t.Fatalf("expected campaign section, got %+v ok=%v", item, ok)
	}

	if _, ok := Resolve("/nowhere"); ok {
		t.Fatal("unknown path must not resolve")
	}

	// /videos is not a prefix match of /video
	if _, ok := Resolve("/videos"); ok {
		t.Fatal("sibling path must not resolve by accidental prefix")
	}
}
