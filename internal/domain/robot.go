package domain

import (
	"github.com/google/uuid"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
)

// Robot - агрегат: владеет всем структурным деревом, достижимым от Hips.
//
// Робот без ядра - "оболочка" (shell): структурно полноценен, но
// неуправляем.
type Robot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Tier int       `json:"tier"`

	hips *StructuralPart
	core *CoreUnit
}

// NewRobot создает пустого робота (без корневой части и без ядра).
func NewRobot(name string, tier int) *Robot {
	return &Robot{
		ID:   uuid.New(),
		Name: name,
		Tier: tier,
	}
}

// Hips возвращает корневую структурную часть (nil, пока не назначена).
func (r *Robot) Hips() *StructuralPart {
	return r.hips
}

// AttachHips - одноразовое назначение корня дерева.
// Отказ, если корень уже назначен, часть nil, часть не может быть корнем
// или уже закреплена в чужом сокете.
func (r *Robot) AttachHips(p *StructuralPart) bool {
	if r.hips != nil {
		return false
	}
	if p == nil || !p.Data.RootCapable || p.parent != nil {
		return false
	}
	r.hips = p
	return true
}

// ReplaceHips безусловно заменяет корневое дерево.
// Используется ТОЛЬКО восстановлением из снапшота; прежнее дерево
// считается уничтоженным.
func (r *Robot) ReplaceHips(p *StructuralPart) {
	r.hips = p
}

// Core возвращает вставленное ядро (nil для оболочки).
func (r *Robot) Core() *CoreUnit {
	return r.core
}

// IsShell сообщает, что в роботе нет ядра.
func (r *Robot) IsShell() bool {
	return r.core == nil
}

// ForEachPart обходит структурное дерево: корень первым, затем в глубину
// по дочерним сокетам в порядке их объявления. Обход ленивый и
// перезапускаемый; fn возвращает false, чтобы остановиться.
//
// Редактор перестраивает списки доступных сокетов/сеток этим обходом
// после каждого attach/detach: множество валидных целей меняется.
func (r *Robot) ForEachPart(fn func(*StructuralPart) bool) {
	if r.hips == nil {
		return
	}
	walkPart(r.hips, fn)
}

func walkPart(p *StructuralPart, fn func(*StructuralPart) bool) bool {
	if !fn(p) {
		return false
	}
	for _, s := range p.Sockets {
		if child := s.AttachedPart(); child != nil {
			if !walkPart(child, fn) {
				return false
			}
		}
	}
	return true
}

// AllParts собирает все части дерева в порядке обхода (корень первым).
func (r *Robot) AllParts() []*StructuralPart {
	var parts []*StructuralPart
	r.ForEachPart(func(p *StructuralPart) bool {
		parts = append(parts, p)
		return true
	})
	return parts
}

// OpenSockets возвращает все свободные сокеты дерева.
func (r *Robot) OpenSockets() []*Socket {
	var open []*Socket
	r.ForEachPart(func(p *StructuralPart) bool {
		for _, s := range p.Sockets {
			if !s.IsOccupied() {
				open = append(open, s)
			}
		}
		return true
	})
	return open
}

// AllGrids возвращает все монтажные сетки дерева, включая дополнительные
// сетки установленной брони (рекурсивно).
func (r *Robot) AllGrids() []*GridHead {
	var grids []*GridHead
	r.ForEachPart(func(p *StructuralPart) bool {
		for _, g := range p.Grids {
			grids = append(grids, g)
			grids = append(grids, nestedGrids(g)...)
		}
		return true
	})
	return grids
}

func nestedGrids(g *GridHead) []*GridHead {
	var out []*GridHead
	for _, part := range g.Placements() {
		for _, ng := range part.AdditionalGrids {
			out = append(out, ng)
			out = append(out, nestedGrids(ng)...)
		}
	}
	return out
}

// FindGrid ищет сетку по имени во всем дереве.
// Имя сетки уникально только в пределах владеющей части: при повторах
// возвращается первая в порядке обхода. Возвращает nil, если сетки нет.
func (r *Robot) FindGrid(name string) *GridHead {
	for _, g := range r.AllGrids() {
		if g.Info.GridName == name {
			return g
		}
	}
	return nil
}

// FindGridOwned ищет сетку по владеющей части и имени. В отличие от
// FindGrid адресация однозначна: две установленные детали одного шаблона
// несут одноименные сетки, различимые только владельцем.
func (r *Robot) FindGridOwned(owner types.PartID, name string) *GridHead {
	for _, g := range r.AllGrids() {
		if g.OwnerID == owner && g.Info.GridName == name {
			return g
		}
	}
	return nil
}
