// Package cli implements the worddiff command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codalotl/worddiff/internal/byword"
	"github.com/codalotl/worddiff/internal/config"
	"github.com/codalotl/worddiff/internal/diff"
	"github.com/codalotl/worddiff/internal/lcs"
	"github.com/codalotl/worddiff/internal/simplelogger"
)

// Version is the worddiff version. It is a var (not a const) so build tooling can override it (for example via `-ldflags "-X .../internal/cli.Version=1.2.3"`).
var Version = "0.1.0"

// Exit codes follow diff(1).
const (
	ExitEqual     = 0
	ExitDifferent = 1
	ExitError     = 2
)

// defaultWidth is the side-by-side width when output is not a terminal and no width is configured.
const defaultWidth = 80

// stdinName is the argument naming standard input.
const stdinName = "-"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns the exit code and an error, if any:
//   - 0 -> the inputs are equal under the selected policy; err == nil.
//   - 1 -> the inputs differ; err == nil.
//   - 2 -> err != nil: bad flags or arguments, unreadable input, invalid configuration, or a failed comparison.
//
// In cases of errors, Run has already displayed an error message to opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	st := &runState{in: in, out: out}
	root := newRootCommand(st)
	root.SetArgs(argv)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(errW, "worddiff: %v\n", err)
		return ExitError, err
	}
	if st.different {
		return ExitDifferent, nil
	}
	return ExitEqual, nil
}

// runState carries I/O into the command and the comparison outcome back out of it.
type runState struct {
	in        io.Reader
	out       io.Writer
	different bool
}

// flagValues holds raw flag values. Only flags the user set override the configuration.
type flagValues struct {
	configPath string
	policy     string
	algorithm  string
	view       string
	color      string
	context    int
	width      int
}

func newRootCommand(st *runState) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "worddiff [flags] OLD NEW",
		Short: "Compare two texts word by word",
		Long: `worddiff compares two texts down to individual words and punctuation.

OLD and NEW are file paths; "-" reads standard input (for at most one of them).
Settings come from $XDG_CONFIG_HOME/worddiff/config.toml (or --config) and are
overridden by flags. The exit status is 0 if the inputs are equal, 1 if they
differ, and 2 on error.`,
		Args:          cobra.ExactArgs(2),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &fv)
			if err != nil {
				return err
			}
			return st.compare(cfg, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVar(&fv.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/worddiff/config.toml)")
	f.StringVar(&fv.policy, "policy", byword.PolicyDefault.String(), "whitespace policy: default, trim-whitespace, or ignore-whitespace")
	f.StringVar(&fv.algorithm, "algorithm", lcs.AlgorithmMyers.String(), "diff algorithm: myers or patience")
	f.StringVar(&fv.view, "view", config.ViewUnified.String(), "output view: unified, inline, side-by-side, or blocks")
	f.StringVar(&fv.color, "color", config.ColorAuto.String(), "colorize output: auto, always, or never")
	f.IntVarP(&fv.context, "context", "U", config.DefaultContext, "unchanged lines around each unified hunk")
	f.IntVarP(&fv.width, "width", "W", 0, "side-by-side width in columns (default: terminal width, or 80)")

	return cmd
}

// resolveConfig loads the config file and applies the flags the user set on top of it.
func resolveConfig(cmd *cobra.Command, fv *flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("policy") {
		if cfg.Policy, err = byword.ParsePolicy(fv.policy); err != nil {
			return config.Config{}, fmt.Errorf("--policy: %w", err)
		}
	}
	if flags.Changed("algorithm") {
		if cfg.Algorithm, err = lcs.ParseAlgorithm(fv.algorithm); err != nil {
			return config.Config{}, fmt.Errorf("--algorithm: %w", err)
		}
	}
	if flags.Changed("view") {
		if cfg.View, err = config.ParseView(fv.view); err != nil {
			return config.Config{}, fmt.Errorf("--view: %w", err)
		}
	}
	if flags.Changed("color") {
		if cfg.Color, err = config.ParseColorMode(fv.color); err != nil {
			return config.Config{}, fmt.Errorf("--color: %w", err)
		}
	}
	if flags.Changed("context") {
		cfg.Context = fv.context
	}
	if flags.Changed("width") {
		cfg.Width = fv.width
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// compare reads both inputs, compares them with cfg, and writes the selected view. Nothing is written when the inputs are equal.
func (st *runState) compare(cfg config.Config, oldName, newName string) error {
	if oldName == stdinName && newName == stdinName {
		return fmt.Errorf("standard input can be used for only one of OLD and NEW")
	}

	oldText, err := st.readInput(oldName)
	if err != nil {
		return err
	}
	newText, err := st.readInput(newName)
	if err != nil {
		return err
	}

	opts := diff.Options{Policy: cfg.Policy, Algorithm: cfg.Algorithm}
	blocks, err := diff.Compare(oldText, newText, opts)
	if err != nil {
		return err
	}
	st.different = diff.HasChanges(blocks)
	if !st.different {
		return nil
	}

	terminal, termWidth := terminalInfo(st.out)
	color := cfg.Color.Enabled(terminal)
	simplelogger.Log("cli: %s vs %s differ (view=%v policy=%v algorithm=%v color=%v)", oldName, newName, cfg.View, cfg.Policy, cfg.Algorithm, color)

	var rendered string
	switch cfg.View {
	case config.ViewInline:
		rendered = diff.RenderInline(oldText, newText, blocks, color)
	case config.ViewSideBySide:
		width := cfg.Width
		if width == 0 {
			width = termWidth
		}
		rendered = diff.RenderSideBySide(oldText, newText, blocks, width, color)
	case config.ViewBlocks:
		rendered = diff.RenderBlocks(oldText, newText, blocks)
	default:
		d, err := diff.DiffText(oldText, newText, opts)
		if err != nil {
			return err
		}
		rendered = d.RenderUnifiedDiff(color, oldName, newName, cfg.Context)
	}

	if rendered != "" && !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	if _, err := io.WriteString(st.out, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (st *runState) readInput(name string) (string, error) {
	if name == stdinName {
		b, err := io.ReadAll(st.in)
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), nil
}

// terminalInfo reports whether w is a terminal and, if so, its width. Non-terminals get defaultWidth.
func terminalInfo(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok {
		return false, defaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, defaultWidth
	}
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return true, width
	}
	return true, defaultWidth
}
