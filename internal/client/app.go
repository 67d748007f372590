package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-bio-console/internal/adapter"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/models"
)

// Credentials are the password-stage login data.
type Credentials struct {
	Login    string
	Password string
}

// App runs a list of commands against a console.
type App struct {
	adapter  adapter.ConsoleAdapter
	creds    Credentials
	commands []Command

	out      io.Writer
	readFile func(name string) ([]byte, error)

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp validates that credentials are present when any command needs a
// session.
func NewApp(consoleAdapter adapter.ConsoleAdapter, creds Credentials, commands []Command, out io.Writer, logger *logger.Logger) (*App, error) {
	if len(commands) == 0 {
		return nil, ErrNoCommands
	}
	if needsLogin(commands) && (creds.Login == "" || creds.Password == "") {
		return nil, ErrNoCredentials
	}

	return &App{
		adapter:  consoleAdapter,
		creds:    creds,
		commands: commands,
		out:      out,
		readFile: os.ReadFile,
		logger:   logger,
	}, nil
}

// Run logs in if needed, executes the commands in order and logs out. The
// first failing command stops the run.
func (a *App) Run(ctx context.Context) (err error) {
	if needsLogin(a.commands) {
		result, loginErr := a.adapter.Login(ctx, a.creds.Login, a.creds.Password)
		if loginErr != nil {
			return fmt.Errorf("login: %w", loginErr)
		}
		fmt.Fprintf(a.out, "logged in as %s (user %d), step %s\n", result.Login, result.UserID, result.Step)
		if len(result.Modalities) > 0 {
			fmt.Fprintf(a.out, "enrolled: %s\n", joinModalities(result.Modalities))
		}

		defer func() {
			if logoutErr := a.adapter.Logout(context.WithoutCancel(ctx)); logoutErr != nil {
				a.logger.Warn().Err(logoutErr).Str("func", "client.Run").Msg("logout failed")
			}
		}()
	}

	for _, cmd := range a.commands {
		if err = a.execute(ctx, cmd); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name, err)
		}
	}

	return nil
}

func (a *App) execute(ctx context.Context, cmd Command) error {
	a.logger.Debug().Str("command", string(cmd.Name)).Msg("running command")

	switch cmd.Name {
	case CmdHealth:
		status, err := a.adapter.Health(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "health: %s, database %s, version %s\n", status.Status, status.Database, status.Version)

	case CmdVersion:
		version, err := a.adapter.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "server version: %s\n", version)

	case CmdStatus:
		status, err := a.adapter.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "step %s, biometric verified %t\n", status.Step, status.BiometricVerified)
		for _, m := range status.Modalities {
			fmt.Fprintf(a.out, "  %s: stored %t, enabled %t\n", m.Modality, m.Stored, m.Enrolled)
		}

	case CmdEnroll:
		capture, err := a.capture(cmd)
		if err != nil {
			return err
		}
		result, err := a.adapter.Enroll(ctx, capture)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "enrolled %s, step %s\n", result.Modality, result.Step)

	case CmdVerify:
		capture, err := a.capture(cmd)
		if err != nil {
			return err
		}
		result, err := a.adapter.Verify(ctx, capture)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "verify %s: match %t, confidence %.3f, step %s\n", cmd.Modality, result.Success, result.Confidence, result.Step)
		if !result.Success {
			return ErrNotVerified
		}

	case CmdToggle:
		result, err := a.adapter.Toggle(ctx, models.ToggleRequest{Modality: cmd.Modality, Enabled: cmd.Enabled})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s enabled %t, step %s\n", result.Modality, result.Enabled, result.Step)

	case CmdDetect:
		payload, err := a.encodeFile(cmd.Path)
		if err != nil {
			return err
		}
		result, err := a.adapter.DetectFace(ctx, payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "faces: %d (%s)\n", result.FaceCount, result.Message)

	case CmdSession:
		view, err := a.adapter.ConsoleSession(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "session %s for user %d (%s), expires %s\n",
			view.SessionID, view.UserID, view.Role, view.ExpiresAt.Format("2006-01-02 15:04:05"))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}

	return nil
}

func (a *App) capture(cmd Command) (models.CaptureRequest, error) {
	payload, err := a.encodeFile(cmd.Path)
	if err != nil {
		return models.CaptureRequest{}, err
	}
	return models.CaptureRequest{Modality: cmd.Modality, Payload: payload}, nil
}

func (a *App) encodeFile(path string) (string, error) {
	raw, err := a.readFile(path)
	if err != nil {
		return "", fmt.Errorf("read capture: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func needsLogin(commands []Command) bool {
	for _, cmd := range commands {
		if cmd.NeedsLogin() {
			return true
		}
	}
	return false
}

func joinModalities(modalities []models.Modality) string {
	names := make([]string, 0, len(modalities))
	for _, m := range modalities {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
