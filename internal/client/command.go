package client

import (
	"fmt"

	"github.com/MKhiriev/go-bio-console/models"
)

// CommandName identifies a client command.
type CommandName string

const (
	CmdHealth  CommandName = "health"
	CmdVersion CommandName = "version"
	CmdStatus  CommandName = "status"
	CmdEnroll  CommandName = "enroll"
	CmdVerify  CommandName = "verify"
	CmdToggle  CommandName = "toggle"
	CmdDetect  CommandName = "detect"
	CmdSession CommandName = "session"
)

// Command is one parsed step of a run.
type Command struct {
	Name     CommandName
	Modality models.Modality
	// Path is the capture file of enroll, verify and detect.
	Path    string
	Enabled bool
}

// NeedsLogin reports whether the command runs inside an authenticated
// session.
func (c Command) NeedsLogin() bool {
	return c.Name != CmdHealth && c.Name != CmdVersion
}

// ParseCommands turns positional arguments into commands:
//
//	health | version | status | session
//	enroll <face|voice> <file>
//	verify <face|voice> <file>
//	toggle <face|voice> <on|off>
//	detect <file>
func ParseCommands(args []string) ([]Command, error) {
	if len(args) == 0 {
		return nil, ErrNoCommands
	}

	var commands []Command
	for i := 0; i < len(args); i++ {
		name := CommandName(args[i])

		switch name {
		case CmdHealth, CmdVersion, CmdStatus, CmdSession:
			commands = append(commands, Command{Name: name})

		case CmdEnroll, CmdVerify:
			if i+2 >= len(args) {
				return nil, fmt.Errorf("%w: %s <face|voice> <file>", ErrMissingArgument, name)
			}
			modality, err := models.ParseModality(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			commands = append(commands, Command{Name: name, Modality: modality, Path: args[i+2]})
			i += 2

		case CmdToggle:
			if i+2 >= len(args) {
				return nil, fmt.Errorf("%w: toggle <face|voice> <on|off>", ErrMissingArgument)
			}
			modality, err := models.ParseModality(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("toggle: %w", err)
			}
			enabled, err := parseSwitch(args[i+2])
			if err != nil {
				return nil, err
			}
			commands = append(commands, Command{Name: name, Modality: modality, Enabled: enabled})
			i += 2

		case CmdDetect:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: detect <file>", ErrMissingArgument)
			}
			commands = append(commands, Command{Name: name, Path: args[i+1]})
			i++

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, args[i])
		}
	}

	return commands, nil
}

func parseSwitch(s string) (bool, error) {
	switch s {
	case "on", "enable", "true":
		return true, nil
	case "off", "disable", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: toggle expects on or off, got %q", ErrMissingArgument, s)
}
