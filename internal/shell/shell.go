package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/EpicMandM/parking-lot/internal/handler"
	"github.com/EpicMandM/parking-lot/internal/logger"
	"github.com/EpicMandM/parking-lot/internal/service"
)

const (
	banner = "Parking System\nType \"help\" for commands.\n"

	helpText = `Commands:
  login <username>   log in (replaces the current session)
  reserve [space]    reserve a space
  vacate [space]     vacate a space
  history            show your reservations
  spaces             show all spaces
  help               show this help
  quit               exit
`

	promptCommand  = "> "
	promptUsername = "Enter Username: "
	promptReserve  = "Enter Space ID to Reserve: "
	promptVacate   = "Enter Space ID to Vacate: "

	msgNoUsername = "No username entered."
)

// Panel renders the result of each form action.
type Panel interface {
	Login(username string) (*service.Session, string)
	Reserve(session *service.Session, spaceID string) string
	Vacate(session *service.Session, spaceID string) string
	History(session *service.Session) string
	Spaces() string
}

var _ Panel = (*handler.PanelHandler)(nil)

// Shell is the line-oriented form: one command per line, each followed by
// a freshly rendered panel.
type Shell struct {
	panel  Panel
	in     *bufio.Reader
	inErr  error
	out    io.Writer
	logger *logger.Logger
}

func New(panel Panel, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	if log == nil {
		log = logger.Discard()
	}
	return &Shell{
		panel:  panel,
		in:     bufio.NewReader(in),
		out:    out,
		logger: log,
	}
}

// Run reads commands until quit, end of input or ctx is cancelled. The
// session is local to the loop and replaced only by login.
func (s *Shell) Run(ctx context.Context) error {
	s.write(banner)

	var session *service.Session
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := s.readLine(promptCommand)
		if !ok {
			s.logger.Info("Input closed", logger.Action("shell"), logger.Status("eof"))
			return s.inErr
		}
		if line == "" {
			continue
		}

		var quit bool
		session, quit = s.dispatch(session, line)
		if quit {
			s.logger.Info("Shell exited", logger.Action("shell"), logger.Status("quit"))
			return nil
		}
	}
}

func (s *Shell) dispatch(session *service.Session, line string) (*service.Session, bool) {
	cmd, arg := splitCommand(line)

	switch strings.ToLower(cmd) {
	case "login":
		username, ok := s.argOrPrompt(arg, promptUsername)
		if !ok {
			s.write(msgNoUsername + "\n")
			return session, false
		}
		next, panel := s.panel.Login(username)
		s.write(panel)
		return next, false

	case "reserve":
		s.write(s.spaceAction(session, arg, promptReserve, s.panel.Reserve))
	case "vacate":
		s.write(s.spaceAction(session, arg, promptVacate, s.panel.Vacate))
	case "history":
		s.write(s.panel.History(session))
	case "spaces", "list":
		s.write(s.panel.Spaces())
	case "help", "?":
		s.write(helpText)
	case "quit", "exit":
		return session, true
	default:
		s.write(fmt.Sprintf("Unknown command %q. Type \"help\" for commands.\n", cmd))
	}
	return session, false
}

// spaceAction checks the session before asking for a space ID, then hands
// the normalized ID to action.
func (s *Shell) spaceAction(session *service.Session, arg, prompt string, action func(*service.Session, string) string) string {
	if session == nil {
		return handler.MsgLoginFirst + "\n"
	}
	raw, ok := s.argOrPrompt(arg, prompt)
	if !ok {
		return handler.MsgNoSpaceID + "\n"
	}
	return action(session, service.NormalizeSpaceID(raw))
}

// argOrPrompt returns arg when given, otherwise the answer to prompt. The
// second result is false when the answer is absent (end of input or blank).
func (s *Shell) argOrPrompt(arg, prompt string) (string, bool) {
	if arg != "" {
		return arg, true
	}
	answer, ok := s.readLine(prompt)
	if !ok || answer == "" {
		return "", false
	}
	return answer, true
}

// readLine has no length limit; an oversized line is handled like any other.
// A final line without a newline still counts.
func (s *Shell) readLine(prompt string) (string, bool) {
	s.write(prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.inErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

// splitCommand splits a trimmed line at its first whitespace rune.
func splitCommand(line string) (cmd, arg string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

func (s *Shell) write(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.logger.Error("Failed to write panel", logger.Error(err))
	}
}
