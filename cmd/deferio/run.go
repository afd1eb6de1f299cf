package main

import (
	"github.com/aretw0/deferio/internal/cli"
	"github.com/aretw0/deferio/internal/config"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [program|script.yaml]",
	Short: "Run a program from the catalog or a YAML script",
	Long: `Runs one program against standard input and output.

Without arguments the "main" program runs. End of input stops the program
without an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		opts := cli.OptionsFromConfig(cfg)
		if len(args) > 0 {
			opts.Program = args[0]
		}

		flags := cmd.Flags()
		if flags.Changed("json") {
			opts.JSON, _ = flags.GetBool("json")
		}
		if flags.Changed("debug") {
			opts.Debug, _ = flags.GetBool("debug")
		}
		if flags.Changed("metrics") {
			opts.Metrics, _ = flags.GetBool("metrics")
		}
		if flags.Changed("prompt") {
			opts.Prompt, _ = flags.GetString("prompt")
		}
		if flags.Changed("log-level") {
			opts.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("no-quit") {
			noQuit, _ := flags.GetBool("no-quit")
			opts.Quit = !noQuit
		}

		opts.Stdin = cmd.InOrStdin()
		opts.Stdout = cmd.OutOrStdout()
		opts.Stderr = cmd.ErrOrStderr()

		return cli.Execute(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("debug", false, "Log every effect to stderr")
	runCmd.Flags().Bool("metrics", false, "Print effect counters to stderr when the session ends")
	runCmd.Flags().String("prompt", "> ", "Prompt shown before each read in interactive mode")
	runCmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
	runCmd.Flags().Bool("no-quit", false, "Do not treat q, quit and exit as end of input")

	// Make 'run' the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
