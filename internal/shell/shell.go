// Package shell is the interactive front end of the board. Each input line is
// dispatched through a fresh cobra command tree bound to one feature service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"feature-feedback-board/internal/dto"
	"feature-feedback-board/internal/entity"
	"feature-feedback-board/internal/pkg/logger"
	"feature-feedback-board/internal/pkg/validation"
	"feature-feedback-board/internal/service"
	"feature-feedback-board/pkg/board"

	"github.com/spf13/cobra"
)

const (
	moduleName = "Shell"
	prompt     = "board> "
)

var errQuit = errors.New("quit")

type Shell struct {
	svc    service.IFeatureService
	logger logger.ILogger
	out    io.Writer
	style  *palette
}

func New(svc service.IFeatureService, logger logger.ILogger, out io.Writer, noColor bool) *Shell {
	return &Shell{
		svc:    svc,
		logger: logger,
		out:    out,
		style:  newPalette(noColor),
	}
}

// Run reads commands from in until EOF or quit.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(s.out, s.style.title.Sprint("Feature Feedback Board"), s.style.muted.Sprint("(type help for commands)"))

	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		quit, err := s.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "%s %v\n", s.style.err.Sprint("error:"), err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. quit is true after quit/exit.
func (s *Shell) Execute(ctx context.Context, line string) (quit bool, err error) {
	args, err := splitArgs(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	s.logger.Debug(moduleName, "Command received", map[string]interface{}{"command": args[0]})

	root := s.commands()
	root.SetArgs(args)
	root.SetOut(s.out)
	root.SetErr(s.out)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errQuit) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (s *Shell) commands() *cobra.Command {
	root := &cobra.Command{
		Use:           "board",
		Short:         "Submit, vote on and triage feature requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "add <title> <description> [status]",
			Short: "Submit a new feature request (status defaults to Open)",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				req := &dto.CreateFeatureRequest{Title: args[0], Description: args[1]}
				if len(args) == 3 {
					req.Status = entity.FeatureStatus(args[2])
				}
				return s.add(cmd.Context(), req)
			},
		},
		&cobra.Command{
			Use:   "vote <id>",
			Short: "Add one vote to a feature",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res := s.svc.Vote(cmd.Context(), args[0])
				if res == nil {
					s.notFound(args[0])
					return nil
				}
				fmt.Fprintf(s.out, "%s now has %s\n", s.style.title.Sprint(res.Title), votes(res.Votes))
				return nil
			},
		},
		&cobra.Command{
			Use:   "status <id> <Open|Planned|Completed>",
			Short: "Change the status of a feature",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := s.svc.SetStatus(cmd.Context(), &dto.SetStatusRequest{Id: args[0], Status: args[1]})
				if err != nil {
					return s.fieldErrors(err)
				}
				if res == nil {
					s.notFound(args[0])
					return nil
				}
				fmt.Fprintf(s.out, "%s is now %s\n", s.style.title.Sprint(res.Title), s.style.status(res.Status))
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "Show features with the current filter and sort",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s.renderList(cmd.Context(), s.svc.List(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "filter <all|Open|Planned|Completed>",
			Short: "Show all features or only one status",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.svc.SetFilter(cmd.Context(), args[0]); err != nil {
					return err
				}
				s.renderList(cmd.Context(), s.svc.List(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "sort <" + sortNames() + ">",
			Short: "Change the list order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.svc.SetSort(cmd.Context(), args[0]); err != nil {
					return err
				}
				s.renderList(cmd.Context(), s.svc.List(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "select <id>",
			Short: "Open a feature in the detail view",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s.svc.Select(cmd.Context(), args[0])
				s.renderDetail(s.svc.Selected(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the selected feature",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s.renderDetail(s.svc.Selected(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Close the detail view",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s.svc.ClearSelection(cmd.Context())
				return nil
			},
		},
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"exit"},
			Short:   "Leave the board (everything is discarded)",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return errQuit
			},
		},
	)
	return root
}

func sortNames() string {
	names := make([]string, 0, len(board.SortOrders))
	for _, o := range board.SortOrders {
		names = append(names, o.String())
	}
	return strings.Join(names, "|")
}

func (s *Shell) add(ctx context.Context, req *dto.CreateFeatureRequest) error {
	res, err := s.svc.Create(ctx, req)
	if err != nil {
		return s.fieldErrors(err)
	}
	fmt.Fprintf(s.out, "Added %s as %s\n", s.style.title.Sprint(res.Title), s.style.id.Sprint(res.Id))
	s.renderDetail(res)
	return nil
}

// fieldErrors prints validation messages one per field. Other errors are returned.
func (s *Shell) fieldErrors(err error) error {
	fields, ok := validation.AsFieldErrors(err)
	if !ok {
		return err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "%s %s\n", s.style.err.Sprint("!"), fields[name])
	}
	return nil
}

func (s *Shell) notFound(id string) {
	fmt.Fprintf(s.out, "%s\n", s.style.muted.Sprintf("No feature with id %s", id))
}
