package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"patzer/game"
	"patzer/position"
	"patzer/render"
)

var (
	AppName = "Patzer"

	defaultOptions = options{
		autoDelay: 500 * time.Millisecond,
		savePath:  game.DefaultSaveFile,
	}
)

type options struct {
	autoDelay time.Duration
	savePath  string
}

type InterfaceOption func(*Interface)

// WithInput overrides the command source, which defaults to stdin.
func WithInput(r io.Reader) InterfaceOption {
	return func(i *Interface) {
		i.in = r
	}
}

// WithOutput overrides the response sink, which defaults to stdout.
func WithOutput(w io.Writer) InterfaceOption {
	return func(i *Interface) {
		i.out = w
	}
}

// WithAutoDelay sets the pause before the automated side replies.
func WithAutoDelay(d time.Duration) InterfaceOption {
	return func(i *Interface) {
		i.options.autoDelay = d
	}
}

// WithSavePath sets the file used by save and load when the command
// names none.
func WithSavePath(path string) InterfaceOption {
	return func(i *Interface) {
		i.options.savePath = path
	}
}

// Interface is the line-oriented terminal front end: one command per
// line in, responses and board drawings out.
type Interface struct {
	game    *game.Game
	options options

	in  io.Reader
	out io.Writer
}

func NewInterface(opts ...InterfaceOption) *Interface {
	i := &Interface{
		options: defaultOptions,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	for _, f := range opts {
		f(i)
	}
	return i
}

func (i *Interface) Run() error {
	ctx := context.Background()
	i.println(fmt.Sprintf("%s ready. start with: new single|multi", AppName))

	reader := bufio.NewReader(i.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		cmd := strings.TrimSpace(line)
		if cmd != "" {
			switch args := strings.Split(cmd, " "); args[0] {
			case "new":
				i.commandNew(ctx, args[1:])
			case "select":
				i.commandSelect(ctx, args[1:])
			case "move":
				i.commandMove(ctx, args[1:])
			case "moves":
				i.commandMoves(ctx)
			case "auto":
				i.commandAuto(ctx)
			case "board", "d":
				i.commandBoard(ctx)
			case "history":
				i.commandHistory(ctx)
			case "save":
				i.commandSave(ctx, args[1:])
			case "load":
				i.commandLoad(ctx, args[1:])
			case "help":
				i.commandHelp(ctx)
			case "quit":
				return nil
			default:
				i.println(fmt.Sprintf("unknown command %q, try: help", args[0]))
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func (i *Interface) commandNew(_ context.Context, args []string) {
	if len(args) != 1 {
		i.println("usage: new single|multi")
		return
	}
	mode, err := game.NewModeFromName(args[0])
	if err != nil {
		i.println("usage: new single|multi")
		return
	}
	i.game = game.NewGame(mode)
	i.printBoard()
}

func (i *Interface) commandSelect(_ context.Context, args []string) {
	if !i.ensureGame() {
		return
	}
	sq, ok := i.parseSquare(args)
	if !ok {
		return
	}
	// picking the selected square again puts it down
	if cur, selected := i.game.Selected(); selected && cur == sq {
		i.game.Deselect()
		i.printBoard()
		return
	}
	if !i.game.Select(sq) {
		i.println(fmt.Sprintf("cannot select %s, it is not your piece", sq.Notation()))
		return
	}
	i.printBoard()
}

func (i *Interface) commandMove(ctx context.Context, args []string) {
	if !i.ensureGame() {
		return
	}
	sq, ok := i.parseSquare(args)
	if !ok {
		return
	}
	if _, selected := i.game.Selected(); !selected {
		i.println("select a piece first")
		return
	}
	if !i.game.Move(sq) {
		i.println(fmt.Sprintf("illegal move to %s", sq.Notation()))
		return
	}
	i.printLastMove()
	i.printBoard()
	i.replyIfAutomated(ctx)
}

func (i *Interface) commandMoves(_ context.Context) {
	if !i.ensureGame() {
		return
	}
	mvs := i.game.Moves()
	if len(mvs) == 0 {
		i.println("no legal moves")
		return
	}
	nts := make([]string, len(mvs))
	for n, mv := range mvs {
		nts[n] = mv.Algebra()
	}
	i.println(strings.Join(nts, " "))
}

func (i *Interface) commandAuto(ctx context.Context) {
	if !i.ensureGame() {
		return
	}
	if !i.game.AutoMove() {
		i.println("no legal moves")
		return
	}
	i.printLastMove()
	i.printBoard()
	i.replyIfAutomated(ctx)
}

func (i *Interface) commandBoard(_ context.Context) {
	if !i.ensureGame() {
		return
	}
	i.printBoard()
}

func (i *Interface) commandHistory(_ context.Context) {
	if !i.ensureGame() {
		return
	}
	history := i.game.History()
	if len(history) == 0 {
		i.println("no moves played")
		return
	}
	i.println(strings.Join(history, " "))
}

func (i *Interface) commandSave(_ context.Context, args []string) {
	if !i.ensureGame() {
		return
	}
	path := i.options.savePath
	if len(args) > 0 {
		path = args[0]
	}
	if err := i.game.Save(path); err != nil {
		i.println(fmt.Sprintf("save failed: %v", err))
		return
	}
	i.println(fmt.Sprintf("saved to %s", path))
}

func (i *Interface) commandLoad(ctx context.Context, args []string) {
	if !i.ensureGame() {
		return
	}
	path := i.options.savePath
	if len(args) > 0 {
		path = args[0]
	}
	if err := i.game.Load(path); err != nil {
		i.println(fmt.Sprintf("load failed: %v", err))
		return
	}
	i.println(fmt.Sprintf("loaded %s", path))
	i.printBoard()
	i.replyIfAutomated(ctx)
}

func (i *Interface) commandHelp(_ context.Context) {
	i.println("new single|multi   start a game against the random opponent or hot seat")
	i.println("select <square>    pick up one of your pieces, again to put it down")
	i.println("move <square>      play the selected piece to the square")
	i.println("moves              list every legal move for the side to move")
	i.println("auto               play one random legal move")
	i.println("board              draw the board")
	i.println("history            show the moves played so far")
	i.println(fmt.Sprintf("save [path]        write the game to disk (default %s)", defaultOptions.savePath))
	i.println(fmt.Sprintf("load [path]        restore a saved game (default %s)", defaultOptions.savePath))
	i.println("quit               leave")
}

// replyIfAutomated lets the random opponent answer after the configured
// pause whenever it is on turn.
func (i *Interface) replyIfAutomated(_ context.Context) {
	if !i.game.AutomatedToMove() {
		return
	}
	time.Sleep(i.options.autoDelay)
	if !i.game.AutoMove() {
		i.println("opponent has no moves")
		return
	}
	history := i.game.History()
	i.println(fmt.Sprintf("opponent played %s", history[len(history)-1]))
	i.printBoard()
}

func (i *Interface) ensureGame() bool {
	if i.game == nil {
		i.println("no game in progress, start with: new single|multi")
		return false
	}
	return true
}

func (i *Interface) parseSquare(args []string) (position.Square, bool) {
	if len(args) != 1 {
		i.println("usage: select|move <square>, e.g. e2")
		return position.Square{}, false
	}
	sq, err := position.NewSquareFromNotation(args[0])
	if err != nil {
		i.println(fmt.Sprintf("bad square %q", args[0]))
		return position.Square{}, false
	}
	return sq, true
}

func (i *Interface) printLastMove() {
	history := i.game.History()
	i.println(fmt.Sprintf("played %s", history[len(history)-1]))
}

func (i *Interface) printBoard() {
	i.println(render.Terminal(i.game.Snapshot()))
	i.println(render.Status(i.game.Snapshot()))
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
