// Package actions содержит хендлеры команд редактирования.
// Каждый хендлер - чистая функция над Context и типизированным payload;
// распаковку и валидацию берет на себя handlers.WithPayload.
package actions

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine/handlers"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
)

func HandleActivate(ctx handlers.Context, p api.ActivatePayload) (handlers.Result, error) {
	robot := ctx.Robots.GetRobot(p.RobotID)
	if robot == nil {
		return handlers.EmptyResult(), fmt.Errorf("robot %q not found", p.RobotID)
	}
	if _, err := ctx.Sessions.OpenSession(ctx.Token, robot); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Редактирование %q активировано.", robot.Name),
		MsgType: "INFO",
	}, nil
}

func HandleDeactivate(ctx handlers.Context) (handlers.Result, error) {
	report, err := ctx.Sessions.CloseSession(ctx.Token)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	res := handlers.Result{MsgType: "INFO", SessionClosed: true}
	if report.Restored {
		res.Msg = "Сборка невалидна: выполнен откат к исходному состоянию."
		res.MsgType = "EDIT"
	} else {
		res.Msg = "Изменения сохранены."
	}
	return res, nil
}

func HandleAbort(ctx handlers.Context) (handlers.Result, error) {
	report, err := ctx.Sessions.AbortSession(ctx.Token)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	res := handlers.Result{MsgType: "INFO", SessionClosed: true}
	if report.Restored {
		res.Msg = "Редактирование прервано, изменения откачены."
	} else {
		res.Msg = "Редактирование прервано."
	}
	return res, nil
}

func HandleToggleMode(ctx handlers.Context, p api.ModePayload) (handlers.Result, error) {
	mode := enums.ParseEditMode(p.Mode)
	ctx.Session.SetMode(mode)
	return handlers.Result{
		Msg:     fmt.Sprintf("Режим: %s.", mode),
		MsgType: "INFO",
	}, nil
}

func HandleState(ctx handlers.Context) (handlers.Result, error) {
	// Стейт собирает сервис для любого ответа; хендлеру нечего делать.
	return handlers.EmptyResult(), nil
}
