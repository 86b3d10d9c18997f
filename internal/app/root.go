package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"seguid/internal/cli"
	"seguid/internal/version"
)

func newRootCmd(e *env) *cobra.Command {
	opts := &cli.Options{}
	cmd := &cobra.Command{
		Use:   "seguid [flags] [FASTA...]",
		Short: "SEGUID checksums for DNA, RNA and protein sequences",
		Long: `seguid computes SEGUID v2 checksums.

Without FASTA files it reads one sequence from stdin. For dlseguid and
dcseguid stdin may hold a two-line duplex diagram, top strand 5'->3' over
the bottom strand 3'->5', with '-' padding the overhangs:

  echo -e "-TATGCC\nCATACG-" | seguid -t dlseguid

A single line stands for a blunt duplex with its reverse complement. Lines
starting with '#' are comments.

Settings are read from flags, then SEGUID_* environment variables (a .env
file is exported first), then ./seguid.yaml.

Exit codes:
  0    success
  1    a sequence failed validation
  2    usage or configuration error
  3    input or output error
  130  interrupted`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.run(cmd.Context(), cmd.Flags(), opts, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })

	cli.Register(cmd.Flags(), opts)
	cmd.AddCommand(newVersionCmd(e))
	return cmd
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args: func(cmd *cobra.Command, args []string) error {
			return usageError(cobra.NoArgs(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.printVersion()
		},
	}
}

func (e *env) printVersion() error {
	_, err := fmt.Fprintf(e.stdout, "seguid version %s\n", version.Version)
	return ioError(err)
}
