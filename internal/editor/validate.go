// Package editor реализует интерактивную сессию редактирования робота:
// выбор детали, предпросмотр, установка/снятие с учетом склада и откат
// по снапшоту при невалидном выходе.
package editor

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
)

// ValidateRobot прогоняет полный набор структурных проверок:
// целостность сокетных связей, согласованность ячеек сеток и тировые
// ограничения. Те же предикаты, что движок применяет инкрементально
// при каждой операции, здесь выполняются исчерпывающе как финальный
// гейт перед закрытием сессии.
//
// Пустой срез означает валидного робота.
func ValidateRobot(r *domain.Robot) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if r == nil {
		return []error{fmt.Errorf("robot is nil")}
	}
	root := r.Hips()
	if root == nil {
		return []error{fmt.Errorf("robot %q has no root part", r.Name)}
	}
	if !root.Data.RootCapable {
		fail("root part %q is not root-capable", root.Data.Name)
	}
	if root.ParentSocket() != nil {
		fail("root part %q still has a parent socket", root.Data.Name)
	}

	if core := r.Core(); core != nil {
		if core.Owner() != r {
			fail("core owner link is broken")
		}
		if r.Tier > core.Tier {
			fail("robot tier %d exceeds core tier %d", r.Tier, core.Tier)
		}
	}

	r.ForEachPart(func(p *domain.StructuralPart) bool {
		validatePart(p, fail)
		return true
	})

	return errs
}

func validatePart(p *domain.StructuralPart, fail func(string, ...any)) {
	for _, s := range p.Sockets {
		child := s.AttachedPart()
		if child == nil {
			continue
		}
		// Двусторонняя связь и соответствие типа/тира
		if child.ParentSocket() != s {
			fail("part %q: child %q back-link is broken", p.Data.Name, child.Data.Name)
		}
		if child.Data.Socket != s.Type {
			fail("part %q: socket %v holds part of type %v",
				p.Data.Name, s.Type, child.Data.Socket)
		}
		if s.MaxTier > 0 && child.Data.Tier > s.MaxTier {
			fail("part %q: socket %v tier ceiling %d exceeded by %q (tier %d)",
				p.Data.Name, s.Type, s.MaxTier, child.Data.Name, child.Data.Tier)
		}
	}
	for _, g := range p.Grids {
		validateGrid(g, fail)
	}
}

// validateGrid сверяет ячейки сетки со списком установленных деталей
// в обе стороны: каждая деталь полностью размечена, каждая занятая
// ячейка принадлежит ровно одной детали из списка.
func validateGrid(g *domain.GridHead, fail func(string, ...any)) {
	placed := g.Placements()
	placedSet := make(map[*domain.ArmorPart]bool, len(placed))

	for _, part := range placed {
		placedSet[part] = true

		if !domain.IsRotationValid(part.Data.Tail, g.Info, part.Rotation) {
			fail("grid %q: part %q rotation %v is not valid",
				g.Info.GridName, part.Data.Name, part.Rotation)
		}
		if part.Data.Tier > g.Info.Tier {
			fail("grid %q: part %q tier %d exceeds grid tier %d",
				g.Info.GridName, part.Data.Name, part.Data.Tier, g.Info.Tier)
		}

		w, h := part.Footprint()
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				x, y := part.X+dx, part.Y+dy
				if !g.InBounds(x, y) {
					fail("grid %q: part %q footprint leaves bounds at (%d,%d)",
						g.Info.GridName, part.Data.Name, x, y)
					continue
				}
				if got := g.PartAt(x, y); got != part {
					fail("grid %q: cell (%d,%d) does not reference part %q",
						g.Info.GridName, x, y, part.Data.Name)
				}
			}
		}

		// Вложенные сетки детали проверяются рекурсивно
		for _, nested := range part.AdditionalGrids {
			validateGrid(nested, fail)
		}
	}

	// Обратная проверка: занятые ячейки без хозяина в списке
	for y := 0; y < g.Info.SizeY; y++ {
		for x := 0; x < g.Info.SizeX; x++ {
			if part := g.PartAt(x, y); part != nil && !placedSet[part] {
				fail("grid %q: cell (%d,%d) references a part that is not placed",
					g.Info.GridName, x, y)
			}
		}
	}
}
