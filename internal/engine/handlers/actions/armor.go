package actions

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine/handlers"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
)

// parseGridOwner разбирает необязательный ID части-владельца сетки.
// Пустая строка - нулевой ID (адресация только по имени).
func parseGridOwner(raw string) (types.PartID, error) {
	if raw == "" {
		return 0, nil
	}
	owner, err := types.ParsePartID(raw)
	if err != nil {
		return 0, fmt.Errorf("bad owner id %q: %w", raw, err)
	}
	return owner, nil
}

func HandleHover(ctx handlers.Context, p api.HoverPayload) (handlers.Result, error) {
	owner, err := parseGridOwner(p.OwnerID)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	res := ctx.Session.Hover(owner, p.GridName, p.Template, p.X, p.Y)

	view := &api.HoverView{
		GridName: p.GridName,
		X:        p.X,
		Y:        p.Y,
		CanPlace: res.CanPlace,
		Reason:   res.Reason,
	}
	for _, r := range res.Rotations {
		view.ValidRotations = append(view.ValidRotations, r.Degrees())
	}
	return handlers.Result{Hover: view}, nil
}

func HandleRotate(ctx handlers.Context) (handlers.Result, error) {
	r := ctx.Session.RotateCW()
	return handlers.Result{
		Msg:     fmt.Sprintf("Поворот: %v°.", r.Degrees()),
		MsgType: "EDIT",
	}, nil
}

func HandlePlace(ctx handlers.Context, p api.PlacePayload) (handlers.Result, error) {
	owner, err := parseGridOwner(p.OwnerID)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	r, ok := domain.RotationFromDegrees(p.Rotation)
	if !ok {
		return handlers.EmptyResult(), fmt.Errorf("bad rotation %d", p.Rotation)
	}
	if err := ctx.Session.PlaceArmor(owner, p.GridName, p.Template, p.X, p.Y, r); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s установлена на %s (%d,%d).", p.Template, p.GridName, p.X, p.Y),
		MsgType: "EDIT",
	}, nil
}

func HandleRemove(ctx handlers.Context, p api.RemovePayload) (handlers.Result, error) {
	id, err := types.ParsePartID(p.PartID)
	if err != nil {
		return handlers.EmptyResult(), fmt.Errorf("bad part id %q: %w", p.PartID, err)
	}
	if err := ctx.Session.RemoveArmor(id, p.Cascade); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     "Деталь снята и возвращена на склад.",
		MsgType: "EDIT",
	}, nil
}
