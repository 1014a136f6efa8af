package bridge

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"sogrinha/internal/attachment"
)

// Picker chooses where a file should be saved. Returning attachment.ErrCancelled means
// the user declined to choose, which the bridge reports as a cancelled call.
type Picker interface {
	PickSavePath(ctx context.Context, defaultName string) (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, defaultName string) (string, error)

func (f PickerFunc) PickSavePath(ctx context.Context, defaultName string) (string, error) {
	return f(ctx, defaultName)
}

// DirPicker saves every file under a fixed directory with its default name.
// An empty Dir behaves as a dismissed dialog.
type DirPicker struct {
	Dir string
}

func (p DirPicker) PickSavePath(ctx context.Context, defaultName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Dir == "" {
		return "", attachment.ErrCancelled
	}
	return filepath.Join(p.Dir, filepath.Base(defaultName)), nil
}

// PromptPicker asks on a terminal. An empty answer accepts the default name in Dir;
// end of input or a single "-" cancels.
type PromptPicker struct {
	In  io.Reader
	Out io.Writer
	Dir string
}

func (p PromptPicker) PickSavePath(ctx context.Context, defaultName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	def := filepath.Join(p.Dir, filepath.Base(defaultName))
	fmt.Fprintf(p.Out, "Salvar como [%s]: ", def)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", attachment.ErrCancelled
	}
	switch answer := strings.TrimSpace(line); answer {
	case "":
		return def, nil
	case "-":
		return "", attachment.ErrCancelled
	default:
		return answer, nil
	}
}
