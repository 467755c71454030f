package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/endomorphosis/dcec/config"
	"github.com/endomorphosis/dcec/dcec"
	"github.com/endomorphosis/dcec/parse"
	"github.com/endomorphosis/dcec/prover"
)

const version = "0.3.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	verbose    bool
}

func rootCmd() *cobra.Command {
	var flags globalFlags
	cmd := &cobra.Command{
		Use:   "dcec",
		Short: "Parse DCEC formulas and prove them by forward chaining",
		Long: `dcec reads formulas of the Deontic Cognitive Event Calculus, in infix,
prefix or S-expression syntax, and tries to derive goals from axioms with
natural deduction rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "configuration file (YAML)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "sets verbose mode on")

	cmd.AddCommand(proveCmd(&flags))
	cmd.AddCommand(checkCmd(&flags))
	cmd.AddCommand(parseCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dcec version %s\n", version)
		},
	})
	return cmd
}

// load reads the configuration and builds the logger it asks for.
func (g *globalFlags) load() (*config.Config, *zap.Logger, error) {
	cfg := config.DefaultConfig()
	if g.configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(g.configPath); err != nil {
			return nil, nil, err
		}
	}
	level, err := cfg.Log.ZapLevel()
	if err != nil {
		return nil, nil, err
	}
	if g.verbose {
		level = zap.DebugLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("could not build logger: %w", err)
	}
	return cfg, logger, nil
}

func proveCmd(flags *globalFlags) *cobra.Command {
	var (
		goal     string
		axioms   []string
		path     string
		maxSteps int
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "prove [--file problem.dcec] [--goal formula] [--axiom formula]...",
		Short: "Try to derive a goal from axioms",
		Long: `prove tries to derive the goal from the axioms and prints the result with
the steps of the proof.

A problem file holds one formula per line. The goal is the line starting
with "|-" or "⊢"; every other line is an axiom. Lines starting with ';'
are comments. Formulas given with --goal and --axiom are added to those of
the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pb := &problem{goal: goal, axioms: axioms}
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("could not open %q: %w", path, err)
				}
				defer f.Close()
				if pb, err = readProblem(f); err != nil {
					return fmt.Errorf("could not read problem in %q: %w", path, err)
				}
				if err := pb.merge(goal, axioms); err != nil {
					return err
				}
			}
			if pb.goal == "" {
				return fmt.Errorf("no goal given")
			}
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			if cmd.Flags().Changed("max-steps") {
				cfg.Prover.MaxSteps = maxSteps
			}
			engine, err := prover.NewEngine(cfg, logger)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			tree := engine.ProveText(ctx, pb.goal, pb.axioms...)
			out := cmd.OutOrStdout()
			if path != "" {
				fmt.Fprintf(out, "c proving %s\n", path)
			}
			fmt.Fprintf(out, "c proof %s\n", tree.ID)
			if all {
				fmt.Fprintln(out, tree.Result)
				for _, step := range tree.Steps {
					fmt.Fprintf(out, "  %v\n", step)
				}
			} else {
				fmt.Fprint(out, tree)
			}
			for _, i := range tree.Inconsistent {
				fmt.Fprintf(out, "c inconsistent axiom: %v\n", tree.Axioms[i])
			}
			if tree.Result == prover.Error {
				return tree.Err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "formula to prove")
	cmd.Flags().StringArrayVarP(&axioms, "axiom", "a", nil, "axiom (repeatable)")
	cmd.Flags().StringVarP(&path, "file", "f", "", "problem file")
	cmd.Flags().IntVar(&maxSteps, "max-steps", prover.DefaultMaxSteps, "maximum number of rounds of the search")
	cmd.Flags().BoolVar(&all, "all", false, "print every derived step rather than the proof")
	return cmd
}

func checkCmd(flags *globalFlags) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "check [--file problem.dcec] [formula]...",
		Short: "Check whether formulas are propositionally consistent",
		Long: `check tells whether the formulas can all hold at once, treating modal and
quantified subformulas as opaque propositions. It prints a valuation of those
propositions when they can, and a minimal inconsistent subset otherwise.
The goal of a problem file is checked along with its axioms.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("could not open %q: %w", path, err)
				}
				defer f.Close()
				pb, err := readProblem(f)
				if err != nil {
					return fmt.Errorf("could not read problem in %q: %w", path, err)
				}
				exprs = append(pb.formulas(), exprs...)
			}
			if len(exprs) == 0 {
				return fmt.Errorf("no formula given")
			}
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			engine, err := prover.NewEngine(cfg, logger)
			if err != nil {
				return err
			}
			fs, err := buildAll(engine.Builder(), exprs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			val, core := prover.Check(fs)
			if core != nil {
				fmt.Fprintln(out, "UNSATISFIABLE")
				for _, i := range core {
					fmt.Fprintf(out, "%v\n", fs[i])
				}
				return nil
			}
			fmt.Fprintln(out, "SATISFIABLE")
			for _, a := range val {
				fmt.Fprintf(out, "%v: %t\n", a.Formula, a.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "problem file")
	return cmd
}

func parseCmd() *cobra.Command {
	var fexpr, build bool
	cmd := &cobra.Command{
		Use:   "parse formula...",
		Short: "Print the prefix form of expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if build {
				b, err := parse.NewBuilder(dcec.NewNamespace(nil))
				if err != nil {
					return err
				}
				fs, err := buildAll(b, args)
				if err != nil {
					return err
				}
				for _, f := range fs {
					fmt.Fprintln(out, f)
				}
				return nil
			}
			for _, expr := range args {
				arg, _, err := parse.Parse(expr)
				if err != nil {
					return fmt.Errorf("could not parse %q: %w", expr, err)
				}
				if fexpr {
					fmt.Fprintln(out, arg.FExpr())
				} else {
					fmt.Fprintln(out, arg.SExpr())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fexpr, "f-expr", false, "print function-call syntax rather than S-expressions")
	cmd.Flags().BoolVar(&build, "formula", false, "build typed formulas and print them")
	return cmd
}

func buildAll(b *parse.Builder, exprs []string) ([]dcec.Formula, error) {
	fs := make([]dcec.Formula, len(exprs))
	for i, expr := range exprs {
		f, err := b.ParseFormula(expr)
		if err != nil {
			return nil, fmt.Errorf("could not build %q: %w", expr, err)
		}
		fs[i] = f
	}
	return fs, nil
}
