package interactive

import (
	"fmt"
	"io"

	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/arthur-debert/renumber/pkg/ui"
)

var menu = []string{
	ActionDirectory,
	ActionPattern,
	ActionStart,
	ActionPreview,
	ActionExecute,
	ActionQuit,
}

// Run drives s until the user quits. Errors from actions are rendered and
// the loop continues; an error from the prompter itself ends the session.
func Run(s *Session, p Prompter, out io.Writer, r ui.Renderer) error {
	next := ActionDirectory
	if s.Directory() != "" {
		next = ActionPreview
	}

	for {
		if err := r.RenderMessage(fmt.Sprintf(MsgStateFormat, orNone(s.Directory()), s.Pattern(), s.StartText())); err != nil {
			return err
		}

		action, err := p.Select(MsgActionPrompt, menu, next)
		if err != nil {
			return err
		}

		next, err = step(s, p, out, r, action)
		if err != nil {
			return err
		}
		if next == "" {
			return r.RenderMessage(MsgBye)
		}
	}
}

// step runs one action and returns the action to offer next, or "" to quit
func step(s *Session, p Prompter, out io.Writer, r ui.Renderer, action string) (string, error) {
	switch action {
	case ActionDirectory:
		dir, err := p.Text(MsgDirectoryPrompt, s.Directory())
		if err != nil {
			return "", err
		}
		s.SetDirectory(dir)
		return ActionPreview, nil

	case ActionPattern:
		pattern, err := p.Text(MsgPatternPrompt, s.Pattern())
		if err != nil {
			return "", err
		}
		s.SetPattern(pattern)
		return ActionPreview, nil

	case ActionStart:
		start, err := p.Text(MsgStartPrompt, s.StartText())
		if err != nil {
			return "", err
		}
		s.SetStartNumber(start)
		return ActionPreview, nil

	case ActionPreview:
		plan, err := s.Preview()
		if err != nil {
			return ActionPreview, r.RenderError(err)
		}
		if err := RenderPreviewTable(out, plan); err != nil {
			return "", err
		}
		return ActionExecute, nil

	case ActionExecute:
		result, err := s.Execute(func(*types.Plan) (bool, error) {
			return p.Confirm(MsgConfirmExecute, false)
		})
		if result != nil {
			if rerr := r.RenderExecution(result); rerr != nil {
				return "", rerr
			}
		}
		if err != nil {
			return ActionPreview, r.RenderError(err)
		}
		if result == nil {
			return ActionPreview, r.RenderMessage(MsgCancelled)
		}
		if err := r.RenderMessage(MsgExecuteDone); err != nil {
			return "", err
		}
		if plan := s.LastPreview(); plan != nil {
			if err := RenderPreviewTable(out, plan); err != nil {
				return "", err
			}
		}
		return ActionQuit, nil

	case ActionQuit:
		return "", nil

	default:
		return ActionPreview, fmt.Errorf("unknown action %q", action)
	}
}

func orNone(s string) string {
	if s == "" {
		return MsgNoDirectory
	}
	return s
}
