package service

import (
	"fmt"
	"sync"

	"numero-be/internal/dto"
	"numero-be/internal/pkg/serverutils"
	"numero-be/internal/websocket"
	"numero-be/pkg/mathkeyboard"
)

type IKeyboardService interface {
	Layouts() (*mathkeyboard.Layouts, error)
	Map(key string) mathkeyboard.Mapping
	// Replay runs commands against a fresh editor and reports where it ended up.
	Replay(req *dto.ReplayRequest) (*dto.ReplayResponse, error)
}

type keyboardService struct {
	once    sync.Once
	layouts *mathkeyboard.Layouts
	err     error
}

func NewKeyboardService() IKeyboardService {
	return &keyboardService{}
}

func (s *keyboardService) Layouts() (*mathkeyboard.Layouts, error) {
	s.once.Do(func() {
		s.layouts, s.err = mathkeyboard.DefaultLayouts()
	})
	return s.layouts, s.err
}

func (s *keyboardService) Map(key string) mathkeyboard.Mapping {
	return mathkeyboard.KeyToTemplate(key)
}

func (s *keyboardService) Replay(req *dto.ReplayRequest) (*dto.ReplayResponse, error) {
	session := websocket.NewSession(req.Value)

	for i, cmd := range req.Commands {
		if err := session.Apply(cmd); err != nil {
			return nil, serverutils.BadRequest(fmt.Sprintf("command %d (%s): %v", i, cmd.Type, err))
		}
	}

	changes := session.TakeChanges()
	if changes == nil {
		changes = []string{}
	}
	return &dto.ReplayResponse{
		Snapshot:    session.Editor().Snapshot(),
		Attachments: session.Attachments(),
		Changes:     changes,
	}, nil
}
