package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinytelemetry/memory/internal/model"
)

// CommandKind identifies a parsed input line.
type CommandKind int

const (
	CommandSelect CommandKind = iota
	CommandReset
	CommandBoard
	CommandHelp
	CommandQuit
)

// Command is one line of player input.
type Command struct {
	Kind     CommandKind
	Position int
}

// ParseCommand interprets a line. Card positions are 0..15.
func ParseCommand(line string) (Command, error) {
	word := strings.ToLower(strings.TrimSpace(line))
	switch word {
	case "r", "reset", "new":
		return Command{Kind: CommandReset}, nil
	case "b", "board", "":
		return Command{Kind: CommandBoard}, nil
	case "h", "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	pos, err := strconv.Atoi(word)
	if err != nil {
		return Command{}, fmt.Errorf("unknown command %q", line)
	}
	if pos < 0 || pos >= model.CardCount {
		return Command{}, fmt.Errorf("position %d out of range 0-%d", pos, model.CardCount-1)
	}
	return Command{Kind: CommandSelect, Position: pos}, nil
}

const helpText = `Commands:
  0-15     turn over the card at that position
  b        show the board
  r        start a new game
  q        quit`
