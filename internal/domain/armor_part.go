package domain

import (
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
)

// --- БРОНЕВЫЕ ДЕТАЛИ ---

// ArmorPartData - шаблонные данные броневой детали.
type ArmorPartData struct {
	Name string `json:"name"`
	Tier int    `json:"tier"`

	// Tail - собственный footprint детали (IsHead=false).
	Tail GridInfo `json:"tail"`

	// AdditionalGrids - дополнительные head-сетки, которые деталь
	// экспонирует после установки. Позволяет навешивать броню на броню.
	AdditionalGrids []GridInfo `json:"additionalGrids,omitempty"`
}

// ArmorPart - экземпляр броневой детали.
// Создается при установке на сетку и уничтожается при снятии.
type ArmorPart struct {
	ID   types.PartID   `json:"id"`
	Data *ArmorPartData `json:"-"`

	// Позиция и поворот на принимающей сетке. Валидны только пока host != nil.
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Rotation Rotation `json:"rotation"`

	// AdditionalGrids - живые экземпляры дополнительных сеток.
	// Создаются при установке детали.
	AdditionalGrids []*GridHead `json:"-"`

	host *GridHead
}

// NewArmorPart создает неустановленный экземпляр детали.
func NewArmorPart(id types.PartID, data *ArmorPartData) *ArmorPart {
	return &ArmorPart{
		ID:   id,
		Data: data,
	}
}

// Host возвращает сетку, на которой установлена деталь (nil до установки).
func (a *ArmorPart) Host() *GridHead {
	return a.host
}

// IsPlaced сообщает, установлена ли деталь на какую-либо сетку.
func (a *ArmorPart) IsPlaced() bool {
	return a.host != nil
}

// Footprint возвращает габариты детали с учетом текущего поворота.
func (a *ArmorPart) Footprint() (int, int) {
	return RotateSize(a.Data.Tail.SizeX, a.Data.Tail.SizeY, a.Rotation)
}

// HasDependents сообщает, установлено ли что-то на дополнительных сетках
// детали. Снятие детали с зависимыми - только каскадом (явный опт-ин).
func (a *ArmorPart) HasDependents() bool {
	for _, g := range a.AdditionalGrids {
		if !g.IsEmpty() {
			return true
		}
	}
	return false
}

// Grid возвращает дополнительную сетку детали по имени.
func (a *ArmorPart) Grid(name string) *GridHead {
	for _, g := range a.AdditionalGrids {
		if g.Info.GridName == name {
			return g
		}
	}
	return nil
}
