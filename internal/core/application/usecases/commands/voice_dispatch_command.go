package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var (
	ErrVoiceDispatchCommandIsNotConstructed = errors.New(
		"VoiceDispatchCommand must be created via NewVoiceDispatchCommand constructor",
	)
	ErrTranscriptIsRequired = errors.New("transcript is required")
)

// VoiceDispatchCommand carries a spoken operator command, e.g.
// "send Ana to order ten forty-two". The oracle interprets the transcript
// against current pending orders and the courier roster.
type VoiceDispatchCommand struct { //nolint:recvcheck //using for validation
	transcript string

	guard guard.ConstructorGuard
}

// NewVoiceDispatchCommand creates a command from a voice transcript.
func NewVoiceDispatchCommand(transcript string) (VoiceDispatchCommand, error) {
	command := VoiceDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTranscript(transcript); err != nil {
		return VoiceDispatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VoiceDispatchCommand) Validate() error {
	return c.guard.Validate(ErrVoiceDispatchCommandIsNotConstructed)
}

// Transcript returns the spoken command text.
func (c VoiceDispatchCommand) Transcript() string {
	return c.transcript
}

func (c *VoiceDispatchCommand) setTranscript(transcript string) error {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return ErrTranscriptIsRequired
	}

	c.transcript = transcript
	return nil
}
