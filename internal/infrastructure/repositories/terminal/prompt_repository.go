package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

const maxAttempts = 3

var errTooManyAttempts = errors.New("no valid answer given")

// PromptRepository asks questions on a line-oriented terminal.
type PromptRepository struct {
	in  *bufio.Reader
	out io.Writer
}

var _ repositories.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates a prompter reading answers from in and writing questions to out.
func NewPromptRepository(in io.Reader, out io.Writer) *PromptRepository {
	return &PromptRepository{in: bufio.NewReader(in), out: out}
}

func (it *PromptRepository) SelectBumpKind() (entities.BumpKind, error) {
	kinds := entities.BumpKinds()
	choices := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		choices = append(choices, kind.String())
	}

	for range maxAttempts {
		it.printf("? What type of change?\n")
		it.printChoices(choices, nil)
		it.printf("  Answer [1-%d or name]: ", len(choices))

		answer, err := it.readLine()
		if err != nil {
			return "", err
		}

		if choice, ok := pickChoice(choices, answer); ok {
			return entities.BumpKind(choice), nil
		}
		it.printf("  %q is not a valid choice\n", answer)
	}
	return "", fmt.Errorf("%w: %w", entities.ErrInvalidBumpKind, errTooManyAttempts)
}

func (it *PromptRepository) SelectProjects(available, defaults []string) ([]string, error) {
	for range maxAttempts {
		it.printf("? Which projects to update?\n")
		it.printChoices(available, defaults)
		it.printf("  Answer [comma-separated numbers or names, empty keeps the checked ones]: ")

		answer, err := it.readLine()
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return slices.Clone(defaults), nil
		}

		selected, ok := pickChoices(available, answer)
		if ok {
			return selected, nil
		}
		it.printf("  %q is not a valid selection\n", answer)
	}
	return nil, errTooManyAttempts
}

func (it *PromptRepository) AskCommitMessage() (string, error) {
	it.printf("? Enter the commit message: ")
	return it.readLine()
}

func (it *PromptRepository) Confirm(question string, defaultAnswer bool) (bool, error) {
	hint := "y/N"
	if defaultAnswer {
		hint = "Y/n"
	}

	for range maxAttempts {
		it.printf("? %s (%s) ", question, hint)
		answer, err := it.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return defaultAnswer, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		it.printf("  please answer yes or no\n")
	}
	return false, errTooManyAttempts
}

func (it *PromptRepository) readLine() (string, error) {
	line, err := it.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (it *PromptRepository) printChoices(choices, checked []string) {
	for i, choice := range choices {
		if checked == nil {
			it.printf("  %d) %s\n", i+1, choice)
			continue
		}
		mark := " "
		if slices.Contains(checked, choice) {
			mark = "x"
		}
		it.printf("  %d) [%s] %s\n", i+1, mark, choice)
	}
}

func (it *PromptRepository) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(it.out, format, args...)
}

// pickChoice resolves an answer given as 1-based index or as the choice itself.
func pickChoice(choices []string, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return "", false
	}
	for _, choice := range choices {
		if strings.EqualFold(choice, answer) {
			return choice, true
		}
	}
	return "", false
}

// pickChoices resolves a comma-separated answer, keeping the order of choices.
func pickChoices(choices []string, answer string) ([]string, bool) {
	picked := make(map[string]bool)
	for _, part := range strings.Split(answer, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		choice, ok := pickChoice(choices, part)
		if !ok {
			return nil, false
		}
		picked[choice] = true
	}

	selected := make([]string, 0, len(picked))
	for _, choice := range choices {
		if picked[choice] {
			selected = append(selected, choice)
		}
	}
	return selected, len(selected) > 0
}
