package domain

import "fmt"

// GridInfo - дескриптор одной грани сетки.
//
// IsHead=true означает принимающую (монтажную) сетку на структурной части,
// IsHead=false - footprint устанавливаемой детали (tail).
type GridInfo struct {
	IsHead      bool             `json:"isHead"`
	Tier        int              `json:"tier"`
	SizeX       int              `json:"sizeX"`
	SizeY       int              `json:"sizeY"`
	Surrounding SurroundingLevel `json:"surrounding"`
	GridName    string           `json:"gridName"`
}

// Rotated возвращает дескриптор, повернутый на r: габариты и окружение
// поворачиваются вместе.
func (g GridInfo) Rotated(r Rotation) GridInfo {
	out := g
	out.SizeX, out.SizeY = RotateSize(g.SizeX, g.SizeY, r)
	out.Surrounding = g.Surrounding.Rotated(r)
	return out
}

// Validate проверяет базовые инварианты дескриптора.
func (g GridInfo) Validate() error {
	if g.SizeX <= 0 || g.SizeY <= 0 {
		return fmt.Errorf("grid %q: dimensions must be positive, got %dx%d",
			g.GridName, g.SizeX, g.SizeY)
	}
	if g.Tier < 1 {
		return fmt.Errorf("grid %q: tier must be >= 1, got %d", g.GridName, g.Tier)
	}
	if g.Surrounding.Level < 0 {
		return fmt.Errorf("grid %q: surrounding level must be non-negative, got %d",
			g.GridName, g.Surrounding.Level)
	}
	return nil
}
