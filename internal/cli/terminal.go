package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	keySpin   = ' '
	keyCtrlC  = 3
	keyCtrlD  = 4
	promptBet = "How much would you like to bet?"
	promptBad = "Please enter a valid bet amount"
	promptKey = "Press SPACE to spin!"
)

var ErrInterrupted = errors.New("interrupted")

// Terminal ввод/вывод консольной игры
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	// Переводит терминал в raw режим на время чтения клавиши. nil для не-TTY
	raw func() (restore func(), err error)
}

// NewTerminal терминал поверх произвольных потоков (клавиша читается построчно)
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// NewStdTerminal терминал на stdin/stdout. Если stdin это TTY, пробел ловится без Enter
func NewStdTerminal() *Terminal {
	t := NewTerminal(os.Stdin, os.Stdout)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		t.raw = func() (func(), error) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return nil, err
			}
			return func() { _ = term.Restore(fd, state) }, nil
		}
	}
	return t
}

func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

func (t *Terminal) Printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}

// ReadWager спрашивает ставку, пока accept не примет число.
// accept возвращает ошибку для неподходящей суммы. Отмена ctx прерывает ожидание ввода
func (t *Terminal) ReadWager(ctx context.Context, accept func(amount int) error) (int, error) {
	t.Println(promptBet)
	for {
		line, err := await(ctx, func() (string, error) {
			return t.in.ReadString('\n')
		})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		if err != nil && (len(line) == 0 || !errors.Is(err, io.EOF)) {
			return 0, err
		}

		amount, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			if convErr = accept(amount); convErr == nil {
				return amount, nil
			}
		}
		if err != nil {
			// EOF после невалидной строки
			return 0, err
		}
		t.Println(promptBad)
	}
}

// WaitForSpin ждёт нажатия пробела
func (t *Terminal) WaitForSpin(ctx context.Context) error {
	t.Println(promptKey)
	for {
		key, err := t.readKey(ctx)
		if err != nil {
			return err
		}
		switch key {
		case keySpin:
			return nil
		case keyCtrlC, keyCtrlD:
			return ErrInterrupted
		case '\n', '\r':
			continue
		}
		t.Println(promptKey)
	}
}

// Raw режим включается и снимается в вызывающей горутине,
// брошенное чтение не оставляет терминал в raw
func (t *Terminal) readKey(ctx context.Context) (rune, error) {
	if t.raw != nil {
		restore, err := t.raw()
		if err != nil {
			return 0, fmt.Errorf("failed to switch terminal to raw mode: %w", err)
		}
		defer restore()
	}

	return await(ctx, func() (rune, error) {
		r, _, err := t.in.ReadRune()
		return r, err
	})
}

// await выполняет блокирующее чтение, но возвращается сразу при отмене ctx.
// После отмены чтение дорабатывает в фоне, результат отбрасывается
func await[T any](ctx context.Context, read func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := read()
		done <- result{val: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-done:
		return res.val, res.err
	}
}
