package actions

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine/handlers"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
)

func HandleAttach(ctx handlers.Context, p api.AttachPayload) (handlers.Result, error) {
	parentID, err := types.ParsePartID(p.ParentID)
	if err != nil {
		return handlers.EmptyResult(), fmt.Errorf("bad part id %q: %w", p.ParentID, err)
	}
	socket := enums.ParseSocketType(p.Socket)
	if socket == enums.SocketUnknown {
		return handlers.EmptyResult(), fmt.Errorf("unknown socket type %q", p.Socket)
	}
	if err := ctx.Session.AttachPart(parentID, socket, p.Template); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s установлена в сокет %s.", p.Template, socket),
		MsgType: "EDIT",
	}, nil
}

func HandleDetach(ctx handlers.Context, p api.DetachPayload) (handlers.Result, error) {
	id, err := types.ParsePartID(p.PartID)
	if err != nil {
		return handlers.EmptyResult(), fmt.Errorf("bad part id %q: %w", p.PartID, err)
	}
	if err := ctx.Session.DetachPart(id); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     "Часть снята и возвращена на склад.",
		MsgType: "EDIT",
	}, nil
}
