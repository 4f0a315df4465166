package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITPUSH_NON_INTERACTIVE
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (GITPUSH_NON_INTERACTIVE is set)")

// ErrPromptCanceled is returned when the user aborts the prompt
var ErrPromptCanceled = errors.New("canceled")

// Prompter asks the user for a single line of text
type Prompter interface {
	PromptLine(label string) (string, error)
}

// NewPrompter returns a Prompter reading from in and echoing the label to out.
// When in and out are terminals the survey prompt is used; otherwise one
// line is read from in.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{in: in, out: out}
}

type linePrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func (p *linePrompter) PromptLine(label string) (string, error) {
	if os.Getenv("GITPUSH_NON_INTERACTIVE") != "" {
		return "", ErrInteractiveDisabled
	}

	if inFile, outFile, ok := terminals(p.in, p.out); ok {
		return surveyLine(label, inFile, outFile)
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}
	_, _ = fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func surveyLine(label string, in, out *os.File) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: strings.TrimSuffix(strings.TrimSpace(label), ":"),
	}
	err := survey.AskOne(prompt, &answer, survey.WithStdio(in, out, out))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPromptCanceled
		}
		return "", err
	}
	return answer, nil
}

func terminals(in io.Reader, out io.Writer) (*os.File, *os.File, bool) {
	inFile, ok := in.(*os.File)
	if !ok || !isTerminal(inFile) {
		return nil, nil, false
	}
	outFile, ok := out.(*os.File)
	if !ok || !isTerminal(outFile) {
		return nil, nil, false
	}
	return inFile, outFile, true
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
