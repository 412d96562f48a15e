package actions

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine/handlers"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
)

// HandleTransplant переносит ядро из редактируемого робота в целевого.
// Ядро никогда не остается бесхозным: при отказе цели оно возвращается
// в исходного робота.
func HandleTransplant(ctx handlers.Context, p api.TransplantPayload) (handlers.Result, error) {
	source := ctx.Session.Robot()
	target := ctx.Robots.GetRobot(p.TargetRobotID)
	if target == nil {
		return handlers.EmptyResult(), fmt.Errorf("robot %q not found", p.TargetRobotID)
	}
	if target == source {
		return handlers.EmptyResult(), fmt.Errorf("cannot transplant a core into its own robot")
	}

	core := source.Core()
	if core == nil {
		return handlers.EmptyResult(), fmt.Errorf("robot %q is a shell, nothing to transplant", source.Name)
	}
	if target.Core() != nil {
		return handlers.EmptyResult(), fmt.Errorf("robot %q already has a core", target.Name)
	}

	shell := core.Extract()
	if !core.InsertInto(target) {
		// Цель отказала (тир выше ядра) - возвращаем ядро на место
		core.InsertInto(shell)
		return handlers.EmptyResult(), fmt.Errorf(
			"robot %q (tier %d) refused core of tier %d", target.Name, target.Tier, core.Tier)
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Ядро перенесено из %q в %q.", source.Name, target.Name),
		MsgType: "EDIT",
	}, nil
}
