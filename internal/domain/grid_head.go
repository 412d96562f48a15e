package domain

import (
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
)

// DefaultCellSize - размер ячейки в мировых единицах.
// Используется только на границе с пространственными запросами.
const DefaultCellSize = 0.25

// GridHead - принимающая (монтажная) сетка на структурной части или
// на уже установленной броневой детали.
//
// Ячейки хранятся плоским массивом (индекс = y*SizeX + x). Многоячеечная
// деталь занимает прямоугольник ячеек, каждая из которых ссылается на один
// и тот же ArmorPart.
type GridHead struct {
	Info GridInfo `json:"info"`

	// OwnerID - ID части, которой принадлежит сетка (для диагностики).
	OwnerID types.PartID `json:"ownerId"`

	// CellSize - размер ячейки для преобразования в мировые координаты.
	CellSize float64 `json:"cellSize"`

	cells  []*ArmorPart
	placed []*ArmorPart
}

// NewGridHead создает пустую сетку по дескриптору.
func NewGridHead(info GridInfo, owner types.PartID) *GridHead {
	return &GridHead{
		Info:     info,
		OwnerID:  owner,
		CellSize: DefaultCellSize,
		cells:    make([]*ArmorPart, info.SizeX*info.SizeY),
	}
}

func (g *GridHead) index(x, y int) int {
	return y*g.Info.SizeX + x
}

// InBounds проверяет, что ячейка лежит внутри сетки.
func (g *GridHead) InBounds(x, y int) bool {
	return x >= 0 && x < g.Info.SizeX && y >= 0 && y < g.Info.SizeY
}

// PartAt возвращает деталь, занимающую ячейку (nil для пустой). O(1).
func (g *GridHead) PartAt(x, y int) *ArmorPart {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[g.index(x, y)]
}

// IsEmpty сообщает, что на сетке нет ни одной детали.
func (g *GridHead) IsEmpty() bool {
	return len(g.placed) == 0
}

// Placements возвращает установленные детали в порядке установки.
func (g *GridHead) Placements() []*ArmorPart {
	out := make([]*ArmorPart, len(g.placed))
	copy(out, g.placed)
	return out
}

// CanPlace проверяет, можно ли установить деталь по шаблону data
// в позицию (x,y) с поворотом r. Ничего не мутирует.
//
// Отказ - это ожидаемый, частый результат, а не ошибка:
// выход за границы, занятая ячейка, несовместимое окружение или тир.
func (g *GridHead) CanPlace(data *ArmorPartData, x, y int, r Rotation) bool {
	if data == nil {
		return false
	}

	// Тир детали не должен превышать тир сетки
	if data.Tier > g.Info.Tier {
		return false
	}

	// Поворот должен быть допустим: footprint помещается, окружение совместимо
	if !IsRotationValid(data.Tail, g.Info, r) {
		return false
	}

	// Границы с учетом повернутого footprint'а
	w, h := RotateSize(data.Tail.SizeX, data.Tail.SizeY, r)
	if x < 0 || y < 0 || x+w > g.Info.SizeX || y+h > g.Info.SizeY {
		return false
	}

	// Перекрытия
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if g.cells[g.index(cx, cy)] != nil {
				return false
			}
		}
	}

	return true
}

// TryPlace повторно валидирует и атомарно занимает весь footprint.
// Либо все ячейки помечаются одной деталью, либо ни одна (отказ до
// первой мутации).
func (g *GridHead) TryPlace(part *ArmorPart, x, y int, r Rotation) bool {
	if part == nil || part.IsPlaced() {
		return false
	}
	if !g.CanPlace(part.Data, x, y, r) {
		return false
	}

	part.X = x
	part.Y = y
	part.Rotation = r
	part.host = g

	w, h := part.Footprint()
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			g.cells[g.index(cx, cy)] = part
		}
	}

	// Разворачиваем дополнительные head-сетки детали
	if part.AdditionalGrids == nil {
		for _, gi := range part.Data.AdditionalGrids {
			part.AdditionalGrids = append(part.AdditionalGrids, NewGridHead(gi, part.ID))
		}
	}

	g.placed = append(g.placed, part)
	return true
}

// Remove снимает деталь с сетки.
//
// Если на дополнительных сетках детали что-то установлено, снятие
// либо каскадно убирает зависимые (detachChildren=true), либо
// отказывается (false при наличии зависимых). Зеркально правилу
// отсоединения сокетов.
func (g *GridHead) Remove(part *ArmorPart, detachChildren bool) bool {
	if part == nil || part.host != g {
		return false
	}

	if part.HasDependents() {
		if !detachChildren {
			return false
		}
		for _, nested := range part.AdditionalGrids {
			for _, dep := range nested.Placements() {
				// Каскад всегда с detachChildren=true: поддерево снимается целиком
				nested.Remove(dep, true)
			}
		}
	}

	w, h := part.Footprint()
	for cy := part.Y; cy < part.Y+h; cy++ {
		for cx := part.X; cx < part.X+w; cx++ {
			idx := g.index(cx, cy)
			if g.cells[idx] == part {
				g.cells[idx] = nil
			}
		}
	}

	for i, p := range g.placed {
		if p == part {
			g.placed = append(g.placed[:i], g.placed[i+1:]...)
			break
		}
	}

	part.host = nil
	part.X = 0
	part.Y = 0
	part.Rotation = Rot0
	return true
}

// CellToWorld - чистое геометрическое преобразование ячейки в локальные
// мировые координаты центра ячейки. Не участвует в логике размещения.
func (g *GridHead) CellToWorld(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * g.CellSize, (float64(y) + 0.5) * g.CellSize
}

// WorldToCell - обратное преобразование. Второй результат false, если
// точка вне сетки.
func (g *GridHead) WorldToCell(wx, wy float64) (int, int, bool) {
	if wx < 0 || wy < 0 {
		return 0, 0, false
	}
	x := int(wx / g.CellSize)
	y := int(wy / g.CellSize)
	if !g.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
