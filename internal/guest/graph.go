package guest

import (
	"fmt"
	"sort"
	"strings"

	"wedding-backend/internal/domain"
)

// Group is one invitation: the getter plus the guests linked to it.
type Group struct {
	Getter       domain.Guest
	LinkedGuests []domain.Guest
}

// Members returns the getter followed by its linked guests.
func (g *Group) Members() []domain.Guest {
	members := make([]domain.Guest, 0, len(g.LinkedGuests)+1)
	members = append(members, g.Getter)
	members = append(members, g.LinkedGuests...)
	return members
}

// ContainsID reports whether id belongs to this invitation group.
func (g *Group) ContainsID(id string) bool {
	if g.Getter.ID == id {
		return true
	}
	for _, lg := range g.LinkedGuests {
		if lg.ID == id {
			return true
		}
	}
	return false
}

// Warning is a non-fatal data-integrity finding. Warnings are collected and
// returned alongside results; they never abort a computation.
type Warning struct {
	GuestID string `json:"guest_id"`
	Message string `json:"message"`
}

// Graph is the getter-to-linked-guests relationship structure built from a
// snapshot of the full guest collection.
type Graph struct {
	// Groups ordered by ascending table number, then getter (last, first).
	Groups []Group
	// Orphans are linked guests whose referenced getter is missing from the
	// collection, typically because the getter was deleted.
	Orphans  []domain.Guest
	Warnings []Warning

	byGetter map[string]int
}

// BuildGraph constructs the invitation graph in two passes: first every
// getter becomes a group, then every linked guest is attached to its group
// or, when the reference does not resolve to a getter, to the orphan bucket.
func BuildGraph(guests []domain.Guest) *Graph {
	graph := &Graph{byGetter: make(map[string]int)}

	for _, g := range guests {
		if g.IsInvitationGetter {
			graph.byGetter[g.ID] = len(graph.Groups)
			graph.Groups = append(graph.Groups, Group{Getter: g})
		}
	}

	for _, g := range guests {
		if g.IsInvitationGetter {
			continue
		}
		if g.LinkedInvitationGetterID == nil {
			graph.Orphans = append(graph.Orphans, g)
			graph.Warnings = append(graph.Warnings, Warning{
				GuestID: g.ID,
				Message: "linked guest has no invitation getter reference",
			})
			continue
		}
		idx, ok := graph.byGetter[*g.LinkedInvitationGetterID]
		if !ok {
			graph.Orphans = append(graph.Orphans, g)
			graph.Warnings = append(graph.Warnings, Warning{
				GuestID: g.ID,
				Message: fmt.Sprintf("linked guest references unknown getter %s", *g.LinkedInvitationGetterID),
			})
			continue
		}
		graph.Groups[idx].LinkedGuests = append(graph.Groups[idx].LinkedGuests, g)
	}

	for i := range graph.Groups {
		sortByName(graph.Groups[i].LinkedGuests)
	}
	sort.SliceStable(graph.Groups, func(i, j int) bool {
		a, b := graph.Groups[i].Getter, graph.Groups[j].Getter
		if a.TableNumber != b.TableNumber {
			return a.TableNumber < b.TableNumber
		}
		return nameLess(a, b)
	})
	// Re-key after the group sort moved indexes around.
	for i := range graph.Groups {
		graph.byGetter[graph.Groups[i].Getter.ID] = i
	}

	return graph
}

// GroupFor returns the group owned by getterID.
func (gr *Graph) GroupFor(getterID string) (*Group, bool) {
	idx, ok := gr.byGetter[getterID]
	if !ok {
		return nil, false
	}
	return &gr.Groups[idx], true
}

func sortByName(guests []domain.Guest) {
	sort.SliceStable(guests, func(i, j int) bool {
		return nameLess(guests[i], guests[j])
	})
}

func nameLess(a, b domain.Guest) bool {
	al, bl := strings.ToLower(a.LastName), strings.ToLower(b.LastName)
	if al != bl {
		return al < bl
	}
	return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
}
