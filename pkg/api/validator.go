package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p ActivatePayload) Validate() error {
	if p.RobotID == "" {
		return errors.New("robotId is required")
	}
	return nil
}

func (p HoverPayload) Validate() error {
	if p.GridName == "" {
		return errors.New("gridName is required")
	}
	if p.Template == "" {
		return errors.New("template is required")
	}
	if p.X < 0 || p.Y < 0 {
		return errors.New("cell coordinates cannot be negative")
	}
	return nil
}

func (p PlacePayload) Validate() error {
	if p.GridName == "" {
		return errors.New("gridName is required")
	}
	if p.Template == "" {
		return errors.New("template is required")
	}
	if p.X < 0 || p.Y < 0 {
		return errors.New("cell coordinates cannot be negative")
	}
	switch p.Rotation {
	case 0, 90, 180, 270:
	default:
		return errors.New("rotation must be one of 0, 90, 180, 270")
	}
	return nil
}

func (p RemovePayload) Validate() error {
	if p.PartID == "" {
		return errors.New("partId is required")
	}
	return nil
}

func (p AttachPayload) Validate() error {
	if p.ParentID == "" {
		return errors.New("parentId is required")
	}
	if p.Socket == "" {
		return errors.New("socket is required")
	}
	if p.Template == "" {
		return errors.New("template is required")
	}
	return nil
}

func (p DetachPayload) Validate() error {
	if p.PartID == "" {
		return errors.New("partId is required")
	}
	return nil
}

func (p ModePayload) Validate() error {
	if p.Mode != "ARMOR" && p.Mode != "STRUCTURAL" {
		return errors.New("mode must be ARMOR or STRUCTURAL")
	}
	return nil
}

func (p TransplantPayload) Validate() error {
	if p.TargetRobotID == "" {
		return errors.New("targetRobotId is required")
	}
	return nil
}
