package domain

import (
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
)

// --- СТРУКТУРНЫЕ ЧАСТИ ---

// SocketSlot описывает один сокет в шаблоне структурной части.
type SocketSlot struct {
	Type enums.SocketType `json:"type"`
	// MaxTier - потолок тира для присоединяемых частей.
	MaxTier int `json:"maxTier"`
}

// StructuralPartData - шаблонные данные структурной части (конечности).
// Шаблон неизменяем; экземпляры создаются фабрикой.
type StructuralPartData struct {
	Name string `json:"name"`
	Tier int    `json:"tier"`

	// Socket - тип сокета, в который эта часть вставляется.
	// Для корневой части (Hips) сокета-родителя нет.
	Socket enums.SocketType `json:"socket"`

	// RootCapable - может ли часть быть корнем структурного дерева.
	RootCapable bool `json:"rootCapable"`

	// SocketSlots - фиксированный набор дочерних сокетов.
	SocketSlots []SocketSlot `json:"socketSlots"`

	// Grids - дескрипторы монтажных (head) сеток на этой части.
	Grids []GridInfo `json:"grids"`
}

// StructuralPart - экземпляр структурной части в дереве робота.
//
// Часть владеет своими сокетами и сетками. Обратная ссылка на родительский
// сокет - слабая, только для навигации по дереву (не владение).
type StructuralPart struct {
	ID   types.PartID        `json:"id"`
	Data *StructuralPartData `json:"-"`

	Sockets []*Socket   `json:"-"`
	Grids   []*GridHead `json:"-"`

	parent *Socket
}

// NewStructuralPart создает экземпляр части по шаблону:
// разворачивает сокеты и пустые сетки.
func NewStructuralPart(id types.PartID, data *StructuralPartData) *StructuralPart {
	p := &StructuralPart{
		ID:   id,
		Data: data,
	}
	for _, slot := range data.SocketSlots {
		p.Sockets = append(p.Sockets, &Socket{
			Type:    slot.Type,
			MaxTier: slot.MaxTier,
			Owner:   p,
		})
	}
	for _, gi := range data.Grids {
		p.Grids = append(p.Grids, NewGridHead(gi, id))
	}
	return p
}

// Socket возвращает первый сокет заданного типа (nil, если такого нет).
func (p *StructuralPart) Socket(t enums.SocketType) *Socket {
	for _, s := range p.Sockets {
		if s.Type == t {
			return s
		}
	}
	return nil
}

// Grid возвращает сетку по имени (имена уникальны в пределах части).
func (p *StructuralPart) Grid(name string) *GridHead {
	for _, g := range p.Grids {
		if g.Info.GridName == name {
			return g
		}
	}
	return nil
}

// ParentSocket возвращает сокет, в котором закреплена часть (nil для корня).
func (p *StructuralPart) ParentSocket() *Socket {
	return p.parent
}

// HasOccupiedSockets сообщает, есть ли у части присоединенные дочерние части.
// Отсоединение части с занятыми сокетами запрещено: поддерево снимается
// строго от листьев к корню.
func (p *StructuralPart) HasOccupiedSockets() bool {
	for _, s := range p.Sockets {
		if s.IsOccupied() {
			return true
		}
	}
	return false
}

// HasArmor сообщает, установлена ли на части хотя бы одна броневая деталь.
func (p *StructuralPart) HasArmor() bool {
	for _, g := range p.Grids {
		if !g.IsEmpty() {
			return true
		}
	}
	return false
}
