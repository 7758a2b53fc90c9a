package apitype

import "github.com/google/uuid"

type Command interface {
	CommandId() uuid.UUID
}

type CommandBase struct {
	Id uuid.UUID
}

func NewCommandBase() CommandBase {
	return CommandBase{Id: uuid.New()}
}

func (s *CommandBase) CommandId() uuid.UUID {
	return s.Id
}
