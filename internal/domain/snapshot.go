package domain

import (
	"github.com/google/uuid"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
)

// --- СНАПШОТ ---

// RobotSnapshot - глубокий структурный слепок робота: шаблоны частей,
// занятые сокеты, позиции и повороты брони. Никаких ссылок на живые
// объекты - только данные, достаточные для валидации, восстановления
// и подсчета дельты инвентаря.
type RobotSnapshot struct {
	RobotID uuid.UUID     `json:"robotId"`
	Name    string        `json:"name"`
	Tier    int           `json:"tier"`
	HasCore bool          `json:"hasCore"`
	Root    *PartSnapshot `json:"root,omitempty"`
}

// PartSnapshot - слепок одной структурной части.
type PartSnapshot struct {
	Template string           `json:"template"`
	Tier     int              `json:"tier"`
	Sockets  []SocketSnapshot `json:"sockets,omitempty"`
	Grids    []GridSnapshot   `json:"grids,omitempty"`
}

// SocketSnapshot - слепок сокета в порядке объявления на части.
// Part == nil для пустого сокета.
type SocketSnapshot struct {
	Type enums.SocketType `json:"type"`
	Part *PartSnapshot    `json:"part,omitempty"`
}

// GridSnapshot - слепок одной сетки с установленной броней.
type GridSnapshot struct {
	Name       string              `json:"name"`
	Placements []PlacementSnapshot `json:"placements,omitempty"`
}

// PlacementSnapshot - слепок одной установленной броневой детали.
type PlacementSnapshot struct {
	Template   string         `json:"template"`
	X          int            `json:"x"`
	Y          int            `json:"y"`
	Rotation   Rotation       `json:"rotation"`
	Additional []GridSnapshot `json:"additional,omitempty"`
}

// CaptureSnapshot снимает слепок всего структурного дерева робота.
func CaptureSnapshot(r *Robot) *RobotSnapshot {
	snap := &RobotSnapshot{
		RobotID: r.ID,
		Name:    r.Name,
		Tier:    r.Tier,
		HasCore: !r.IsShell(),
	}
	if r.hips != nil {
		snap.Root = capturePart(r.hips)
	}
	return snap
}

func capturePart(p *StructuralPart) *PartSnapshot {
	ps := &PartSnapshot{
		Template: p.Data.Name,
		Tier:     p.Data.Tier,
	}
	for _, s := range p.Sockets {
		ss := SocketSnapshot{Type: s.Type}
		if child := s.AttachedPart(); child != nil {
			ss.Part = capturePart(child)
		}
		ps.Sockets = append(ps.Sockets, ss)
	}
	for _, g := range p.Grids {
		ps.Grids = append(ps.Grids, captureGrid(g))
	}
	return ps
}

func captureGrid(g *GridHead) GridSnapshot {
	gs := GridSnapshot{Name: g.Info.GridName}
	for _, part := range g.Placements() {
		pl := PlacementSnapshot{
			Template: part.Data.Name,
			X:        part.X,
			Y:        part.Y,
			Rotation: part.Rotation,
		}
		for _, ng := range part.AdditionalGrids {
			pl.Additional = append(pl.Additional, captureGrid(ng))
		}
		gs.Placements = append(gs.Placements, pl)
	}
	return gs
}

// --- СРАВНЕНИЕ ---

// Equal - глубокое сравнение двух слепков.
// Снятие слепка с немодифицированного робота обязано давать Equal=true
// с предыдущим слепком (идемпотентность).
func (s *RobotSnapshot) Equal(o *RobotSnapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.RobotID != o.RobotID || s.Name != o.Name || s.Tier != o.Tier || s.HasCore != o.HasCore {
		return false
	}
	return partEqual(s.Root, o.Root)
}

func partEqual(a, b *PartSnapshot) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Template != b.Template || a.Tier != b.Tier {
		return false
	}
	if len(a.Sockets) != len(b.Sockets) || len(a.Grids) != len(b.Grids) {
		return false
	}
	for i := range a.Sockets {
		if a.Sockets[i].Type != b.Sockets[i].Type {
			return false
		}
		if !partEqual(a.Sockets[i].Part, b.Sockets[i].Part) {
			return false
		}
	}
	for i := range a.Grids {
		if !gridEqual(a.Grids[i], b.Grids[i]) {
			return false
		}
	}
	return true
}

func gridEqual(a, b GridSnapshot) bool {
	if a.Name != b.Name || len(a.Placements) != len(b.Placements) {
		return false
	}
	for i := range a.Placements {
		pa, pb := a.Placements[i], b.Placements[i]
		if pa.Template != pb.Template || pa.X != pb.X || pa.Y != pb.Y || pa.Rotation != pb.Rotation {
			return false
		}
		if len(pa.Additional) != len(pb.Additional) {
			return false
		}
		for j := range pa.Additional {
			if !gridEqual(pa.Additional[j], pb.Additional[j]) {
				return false
			}
		}
	}
	return true
}

// --- ДЕЛЬТА ИНВЕНТАРЯ ---

// PartCounts возвращает количество частей по имени шаблона
// (структурные части и броня вместе, вложенная броня учитывается).
func (s *RobotSnapshot) PartCounts() map[string]int {
	counts := make(map[string]int)
	if s != nil && s.Root != nil {
		countPart(s.Root, counts)
	}
	return counts
}

func countPart(p *PartSnapshot, counts map[string]int) {
	counts[p.Template]++
	for _, ss := range p.Sockets {
		if ss.Part != nil {
			countPart(ss.Part, counts)
		}
	}
	for _, gs := range p.Grids {
		countGrid(gs, counts)
	}
}

func countGrid(g GridSnapshot, counts map[string]int) {
	for _, pl := range g.Placements {
		counts[pl.Template]++
		for _, ng := range pl.Additional {
			countGrid(ng, counts)
		}
	}
}

// DiffCounts сравнивает два слепка и возвращает, каких частей стало
// больше (added) и каких стало меньше (removed), по именам шаблонов.
func DiffCounts(before, after *RobotSnapshot) (added, removed map[string]int) {
	added = make(map[string]int)
	removed = make(map[string]int)

	beforeCounts := before.PartCounts()
	afterCounts := after.PartCounts()

	for name, n := range afterCounts {
		if d := n - beforeCounts[name]; d > 0 {
			added[name] = d
		}
	}
	for name, n := range beforeCounts {
		if d := n - afterCounts[name]; d > 0 {
			removed[name] = d
		}
	}
	return added, removed
}
