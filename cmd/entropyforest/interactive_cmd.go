package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/entropyforest/pkg/config"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func interactiveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for the run settings, train, then classify typed samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootConfig.baseConfig(cmd)
			if err != nil {
				return err
			}
			return newSession(cmd.InOrStdin(), cmd.OutOrStdout()).run(cfg)
		},
	}
}

// session reads answers line by line from in and writes prompts to out.
type session struct {
	in  *bufio.Reader
	out io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: bufio.NewReader(in), out: out}
}

func (s *session) run(cfg config.Config) error {
	if err := s.ask(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rep, err := newRunner(s.out).run(cfg)
	if err != nil {
		return err
	}

	for {
		choice, err := s.choice("Do you want to test classify the data?\n1.Yes\n2.No\noption: ", 2)
		if err != nil || choice == 2 {
			return err
		}
		line, err := s.prompt("Enter the features (space separated): ")
		if err != nil {
			return err
		}
		x, err := parseFeatures(strings.Fields(line))
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		label, err := rep.Snapshot.Predict(x)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		fmt.Fprintf(s.out, "Classification: %d\n", label)
	}
}

// ask fills cfg from the answers to the training prompts.
func (s *session) ask(cfg *config.Config) error {
	var err error
	if cfg.Data, err = s.prompt("Enter the file name: "); err != nil {
		return err
	}

	sep, err := s.choice("Type of file\n1.Space separated\n2.Comma separated\noption: ", 2)
	if err != nil {
		return err
	}
	cfg.Separator = config.SeparatorSpace
	if sep == 2 {
		cfg.Separator = config.SeparatorComma
	}

	ratio, err := s.integer("Enter the train/test split ratio: ")
	if err != nil {
		return err
	}
	cfg.TrainRatio = float64(ratio)

	if cfg.MaxDepth, err = s.integer("Enter the depth(0 for no limit): "); err != nil {
		return err
	}

	mode, err := s.choice("Choose from below\n1.Basic Decision\n2.Bagging\n3.Random Forest\noption: ", 3)
	if err != nil {
		return err
	}
	cfg.Mode = []string{config.ModeTree, config.ModeBagging, config.ModeForest}[mode-1]
	if cfg.Mode == config.ModeTree {
		return nil
	}

	if cfg.NEstimators, err = s.integer("Enter K: "); err != nil {
		return err
	}
	cfg.Overlap, err = s.integer("Enter the percent of overlap: ")
	return err
}

func (s *session) prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "reading answer")
	}
	return strings.TrimSpace(line), nil
}

func (s *session) integer(question string) (int, error) {
	answer, err := s.prompt(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errors.NewValidationError("answer", "not an integer", answer)
	}
	return n, nil
}

// choice asks for an option number in [1, max].
func (s *session) choice(question string, max int) (int, error) {
	n, err := s.integer(question)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > max {
		return 0, errors.NewValidationError("option", fmt.Sprintf("must be between 1 and %d", max), n)
	}
	return n, nil
}
