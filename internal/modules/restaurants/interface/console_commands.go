package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodieConsole/internal/modules/restaurants/application/usecase"
	"foodieConsole/internal/modules/restaurants/domain"
	"foodieConsole/internal/modules/restaurants/infrastructure"
)

var (
	errControllerStopped = errors.New("console controller stopped")
	errNoPendingConfirm  = errors.New("no pending confirmation")
)

func registerConsoleCommands(processor *infrastructure.CommandProcessor, ctrl *usecase.Controller, session *ConsoleSession) {
	simple := map[string]func() bool{
		"next":     ctrl.Next,
		"previous": ctrl.Previous,
		"refresh":  ctrl.Refresh,
		"create":   ctrl.BeginCreate,
		"submit":   ctrl.Submit,
		"cancel":   ctrl.Cancel,
	}
	for action, fn := range simple {
		fn := fn
		processor.Register(action, func(context.Context, *infrastructure.Client, infrastructure.Command) error {
			return dispatched(fn())
		})
	}

	processor.Register("page", func(_ context.Context, _ *infrastructure.Client, cmd infrastructure.Command) error {
		var payload domain.GoToPageCommand
		if err := cmd.Decode(&payload); err != nil {
			return err
		}
		return dispatched(ctrl.GoToPage(payload.Page))
	})
	processor.Register("search", func(_ context.Context, _ *infrastructure.Client, cmd infrastructure.Command) error {
		var payload domain.SearchCommand
		if err := cmd.Decode(&payload); err != nil {
			return err
		}
		return dispatched(ctrl.SetSearchTerm(payload.Term))
	})
	processor.Register("edit", func(_ context.Context, _ *infrastructure.Client, cmd infrastructure.Command) error {
		var payload domain.EditCommand
		if err := cmd.Decode(&payload); err != nil {
			return err
		}
		if strings.TrimSpace(payload.ID) == "" {
			return fmt.Errorf("missing id")
		}
		return dispatched(ctrl.BeginEdit(payload.ID))
	})
	processor.Register("field", func(_ context.Context, _ *infrastructure.Client, cmd infrastructure.Command) error {
		var payload domain.FieldCommand
		if err := cmd.Decode(&payload); err != nil {
			return err
		}
		if strings.TrimSpace(payload.Name) == "" {
			return fmt.Errorf("missing field name")
		}
		return dispatched(ctrl.UpdateField(payload.Name, payload.Value, payload.File.ImageFile()))
	})
	processor.Register("delete", func(_ context.Context, _ *infrastructure.Client, cmd infrastructure.Command) error {
		var payload domain.DeleteCommand
		if err := cmd.Decode(&payload); err != nil {
			return err
		}
		if strings.TrimSpace(payload.ID) == "" {
			return fmt.Errorf("missing id")
		}
		return dispatched(ctrl.DeleteResource(payload.ID))
	})
	processor.Register("confirm", func(_ context.Context, _ *infrastructure.Client, cmd infrastructure.Command) error {
		var payload domain.ConfirmCommand
		if err := cmd.Decode(&payload); err != nil {
			return err
		}
		if !session.Answer(payload.RequestID, payload.Approved) {
			return errNoPendingConfirm
		}
		return nil
	})
}

func dispatched(ok bool) error {
	if !ok {
		return errControllerStopped
	}
	return nil
}
