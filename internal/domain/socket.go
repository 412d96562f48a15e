package domain

import (
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
)

// Socket - типизированная точка крепления на структурной части.
// Сокет держит не более одной дочерней части; пока часть присоединена,
// родитель владеет ею эксклюзивно.
type Socket struct {
	Type    enums.SocketType `json:"type"`
	MaxTier int              `json:"maxTier"`

	// Owner - часть, на которой расположен сокет.
	Owner *StructuralPart `json:"-"`

	attached *StructuralPart
}

// IsOccupied сообщает, присоединена ли к сокету часть.
func (s *Socket) IsOccupied() bool {
	return s.attached != nil
}

// AttachedPart возвращает присоединенную часть (nil для пустого сокета).
func (s *Socket) AttachedPart() *StructuralPart {
	return s.attached
}

// TryAttach присоединяет часть к сокету.
//
// Отказ (false, состояние не меняется), если:
//   - сокет уже занят;
//   - часть nil или уже где-то закреплена;
//   - заявленный тип части не совпадает с типом сокета;
//   - тир части превышает потолок сокета.
func (s *Socket) TryAttach(p *StructuralPart) bool {
	if s.attached != nil {
		return false
	}
	if p == nil || p.parent != nil {
		return false
	}
	if p.Data.Socket != s.Type {
		return false
	}
	if s.MaxTier > 0 && p.Data.Tier > s.MaxTier {
		return false
	}

	s.attached = p
	p.parent = s
	return true
}

// Detach отсоединяет часть от сокета и возвращает ее.
//
// Возвращает nil (и ничего не меняет), если сокет пуст или у
// присоединенной части заняты собственные сокеты: поддерево снимается
// строго от листьев, чтобы молча не осиротить ветку.
func (s *Socket) Detach() *StructuralPart {
	if s.attached == nil {
		return nil
	}
	if s.attached.HasOccupiedSockets() {
		return nil
	}

	p := s.attached
	s.attached = nil
	p.parent = nil
	return p
}
