// Package nav declares the navigation shell: the sidebar menu, its
// role gating and active-section resolution.
package nav

import (
	"strings"

	"github.com/creatorsmela/admin-console/internal/models"
)

// Item is one sidebar menu entry
type Item struct {
	Label    string        `json:"label"`
	EventKey string        `json:"event_key"`
	Icon     string        `json:"icon"`
	Path     string        `json:"path"`
	Roles    []models.Role `json:"-"`
}

// Items returns the full menu in display order
func Items() []Item {
	return []Item{
		{
			Label:    "Dashboard",
			EventKey: "dashboard",
			Icon:     "home",
			Path:     "/dashboard",
			Roles:    []models.Role{models.RoleAdmin, models.RoleOperationManager, models.RoleFinanceManager, models.RoleUser},
		},
		{
			Label:    "Profile",
			EventKey: "profile",
			Icon:     "user",
			Path:     "/profile",
			Roles:    []models.Role{models.RoleAdmin, models.RoleOperationManager, models.RoleFinanceManager, models.RoleUser},
		},
		{
			Label:    "Campaigns",
			EventKey: "campaign",
			Icon:     "speaker",
			Path:     "/campaign",
			Roles:    []models.Role{models.RoleAdmin},
		},
		{
			Label:    "Users",
			EventKey: "users",
			Icon:     "users",
			Path:     "/users",
			Roles:    []models.Role{models.RoleAdmin},
		},
		{
			Label:    "Videos",
			EventKey: "video",
			Icon:     "video",
			Path:     "/video",
			Roles:    []models.Role{models.RoleAdmin, models.RoleFinanceManager, models.RoleOperationManager},
		},
		{
			Label:    "Payments",
			EventKey: "payment",
			Icon:     "dollar-sign",
			Path:     "/payment",
			Roles:    []models.Role{models.RoleAdmin, models.RoleFinanceManager},
		},
		{
			Label:    "Creators",
			EventKey: "creators",
			Icon:     "trending-up",
			Path:     "/creators",
			Roles:    []models.Role{models.RoleAdmin, models.RoleFinanceManager, models.RoleOperationManager, models.RoleUser},
		},
	}
}

// ForRole returns the menu entries visible to a role
func ForRole(role models.Role) []Item {
	var out []Item
	for _, item := range Items() {
		if item.Allows(role) {
			out = append(out, item)
		}
	}
	return out
}

// Allows reports whether a role may see this entry
func (i Item) Allows(role models.Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Resolve finds the menu entry for a path, matching on the first path
// segment so nested routes light up their section.
func Resolve(path string) (Item, bool) {
	for _, item := range Items() {
		if path == item.Path || strings.HasPrefix(path, item.Path+"/") {
			return item, true
		}
	}
	return Item{}, false
}
