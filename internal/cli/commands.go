package cli

import (
	"github.com/spf13/cobra"

	"TextSidekick/internal/usecase"
)

func newSummarizeCommand(root *rootOptions) *cobra.Command {
	var opts usecase.Options

	cmd := &cobra.Command{
		Use:   "summarize [FILE|-]",
		Short: "Print the most salient sentences of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := root.app.Summarize(cmd.Context(), pathArg(args), cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			return root.renderer.Reply(reply)
		},
	}

	cmd.Flags().IntVarP(&opts.MaxSentences, "max", "n", 0, "maximum sentences (default from config)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "summarize even short documents")
	return cmd
}

func newCorrectCommand(root *rootOptions) *cobra.Command {
	var (
		opts     usecase.Options
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "correct [FILE|-]",
		Short: "Suggest style fixes and print a rewritten draft",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := root.app.Correct(cmd.Context(), pathArg(args), cmd.InOrStdin(), opts)
			if err != nil {
				return err
			}
			if err := root.renderer.Reply(reply); err != nil {
				return err
			}
			if showDiff && !reply.Skipped {
				return root.renderer.Diff(reply.Original, reply.Rewrite)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "check even short drafts")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "show what the rewrite changed")
	return cmd
}

func newBulletsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bullets [FILE|-]",
		Short: "Turn every non-empty line into a bullet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := root.app.Bullets(cmd.Context(), pathArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}
			return root.renderer.Reply(reply)
		},
	}
}
