package engine

import (
	"sort"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
)

// --- СБОРКА DTO ---

// BuildRobotView собирает дерево робота для клиента.
func BuildRobotView(r *domain.Robot) *api.RobotView {
	if r == nil {
		return nil
	}
	view := &api.RobotView{
		ID:      r.ID.String(),
		Name:    r.Name,
		Tier:    r.Tier,
		HasCore: !r.IsShell(),
	}
	if root := r.Hips(); root != nil {
		view.Root = buildPartView(root)
	}
	return view
}

func buildPartView(p *domain.StructuralPart) *api.PartView {
	view := &api.PartView{
		ID:       p.ID.WireString(),
		Template: p.Data.Name,
		Tier:     p.Data.Tier,
	}
	for _, s := range p.Sockets {
		sv := api.SocketView{
			Type:    s.Type.String(),
			MaxTier: s.MaxTier,
		}
		if child := s.AttachedPart(); child != nil {
			sv.Part = buildPartView(child)
		}
		view.Sockets = append(view.Sockets, sv)
	}
	for _, g := range p.Grids {
		view.Grids = append(view.Grids, buildGridView(g))
	}
	return view
}

func buildGridView(g *domain.GridHead) api.GridView {
	view := api.GridView{
		Name:  g.Info.GridName,
		Owner: g.OwnerID.WireString(),
		SizeX: g.Info.SizeX,
		SizeY: g.Info.SizeY,
	}
	for _, part := range g.Placements() {
		pv := api.PlacementView{
			ID:       part.ID.WireString(),
			Template: part.Data.Name,
			X:        part.X,
			Y:        part.Y,
			Rotation: part.Rotation.Degrees(),
		}
		for _, nested := range part.AdditionalGrids {
			pv.Additional = append(pv.Additional, buildGridView(nested))
		}
		view.Placements = append(view.Placements, pv)
	}
	return view
}

// BuildInventoryView собирает складскую сводку в стабильном виде.
func BuildInventoryView(inv *domain.Inventory) *api.InventoryView {
	if inv == nil {
		return nil
	}
	items := inv.Items()
	templates := make([]string, 0, len(items))
	for template := range items {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	view := &api.InventoryView{Items: []api.ItemView{}}
	for _, template := range templates {
		view.Items = append(view.Items, api.ItemView{Template: template, Count: items[template]})
	}
	return view
}
