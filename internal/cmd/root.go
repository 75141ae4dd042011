// Package cmd wires the command line to the listing pipeline: it resolves
// flags and config into render options, probes the terminal, scans the
// requested paths, and prints the rendered block.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/harrison/lsx/internal/config"
	"github.com/harrison/lsx/internal/files"
	"github.com/harrison/lsx/internal/logger"
	"github.com/harrison/lsx/internal/render"
	"github.com/harrison/lsx/internal/sorting"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// options holds the raw flag values before they are resolved against the
// config file.
type options struct {
	long    bool
	grid    bool
	oneline bool
	across  bool
	tree    bool
	level   int

	sortField string
	reverse   bool
	all       bool
	header    bool

	inode    bool
	links    bool
	blocks   bool
	group    bool
	git      bool
	extended bool

	binary bool
	bytes  bool

	colorWhen string
	debug     bool
}

// NewRootCommand creates and returns the root cobra command for lsx.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lsx [flags] [paths...]",
		Short: "List directory contents in colourful grids, tables and trees",
		Long: `lsx lists files the way a terminal wants to show them: names coloured by
what kind of file they are, sorted in natural order, and laid out as a
width-fitted grid, an aligned details table, or an indented tree.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.long, "long", "l", false, "show the details table")
	flags.BoolVarP(&opts.grid, "grid", "G", false, "with --long, arrange tables side by side")
	flags.BoolVarP(&opts.oneline, "oneline", "1", false, "one entry per line")
	flags.BoolVarP(&opts.across, "across", "x", false, "fill the grid across rather than downwards")
	flags.BoolVarP(&opts.tree, "tree", "T", false, "recurse into directories as a tree")
	flags.IntVarP(&opts.level, "level", "L", 0, "limit tree depth (0 = unlimited)")

	flags.StringVarP(&opts.sortField, "sort", "s", "", "sort field: name, ext, or size")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the sort order")
	flags.BoolVarP(&opts.all, "all", "a", false, "show dotfiles")
	flags.BoolVar(&opts.header, "header", false, "show a header row in details views")

	flags.BoolVarP(&opts.inode, "inode", "i", false, "show each file's inode number")
	flags.BoolVarP(&opts.links, "links", "H", false, "show each file's hard link count")
	flags.BoolVarP(&opts.blocks, "blocks", "S", false, "show each file's block count")
	flags.BoolVarP(&opts.group, "group", "g", false, "show each file's group")
	flags.BoolVar(&opts.git, "git", false, "show each file's git status")
	flags.BoolVarP(&opts.extended, "extended", "@", false, "list each file's extended attributes")

	flags.BoolVarP(&opts.binary, "binary", "b", false, "sizes in binary units (KiB, MiB)")
	flags.BoolVarP(&opts.bytes, "bytes", "B", false, "sizes as exact byte counts")

	flags.StringVar(&opts.colorWhen, "color", "", "when to colour output: auto, always, never")
	flags.BoolVar(&opts.debug, "debug", false, "log pipeline diagnostics to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return err
	}
	mergeConfig(cmd, opts, cfg)

	var log *logger.ConsoleLogger
	if opts.debug {
		log = logger.NewConsoleLogger(errOut, "debug")
	} else {
		log = logger.NewConsoleLogger(nil, cfg.LogLevel)
	}

	coloured, err := resolveColour(opts.colorWhen)
	if err != nil {
		return err
	}
	palette, err := cfg.BuildPalette(coloured)
	if err != nil {
		return err
	}

	sortField, ok := sorting.ParseField(opts.sortField)
	if !ok {
		return fmt.Errorf("unknown sort field %q (want name, ext, or size)", opts.sortField)
	}

	width := terminalWidth()
	log.Debugf("terminal width %d, colour %t", width, coloured)

	renderOpts := render.Options{
		View:          resolveView(opts),
		Across:        opts.across,
		Header:        opts.header,
		Tree:          opts.tree,
		MaxDepth:      opts.level,
		ShowAll:       opts.all,
		Extended:      opts.extended,
		SortField:     sortField,
		Reverse:       opts.reverse,
		Columns:       render.ColumnSet{Inode: opts.inode, Links: opts.links, Blocks: opts.blocks, Group: opts.group, Git: opts.git},
		TerminalWidth: width,
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	lister := &lister{
		out:        out,
		errOut:     errOut,
		log:        log,
		palette:    palette,
		sizeFormat: resolveSizeFormat(opts),
		renderOpts: renderOpts,
		useGit:     opts.git,
		attrs:      resolveAttrs(opts),
		mounts:     resolveMounts(opts),
		showTarget: len(paths) > 1,
	}
	return lister.listAll(paths)
}

// mergeConfig lets file-level settings stand in for flags the user did not
// pass on this invocation.
func mergeConfig(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()

	if !flags.Changed("sort") && opts.sortField == "" {
		opts.sortField = cfg.Sort
	}
	if !flags.Changed("reverse") {
		opts.reverse = cfg.Reverse
	}
	if !flags.Changed("header") {
		opts.header = cfg.Header
	}
	if !flags.Changed("all") {
		opts.all = cfg.ShowAll
	}
	if !flags.Changed("level") && cfg.TreeLevel > 0 {
		opts.level = cfg.TreeLevel
	}
	if !flags.Changed("color") && opts.colorWhen == "" {
		opts.colorWhen = cfg.Color
	}
	if !flags.Changed("binary") && !flags.Changed("bytes") {
		switch cfg.SizeFormat {
		case "binary":
			opts.binary = true
		case "raw", "bytes":
			opts.bytes = true
		}
	}
}

// resolveView maps the layout flags onto one of the four views. Tree,
// extended attributes and long all want the details engine; long with grid
// asks for side-by-side tables.
func resolveView(opts *options) render.View {
	switch {
	case opts.tree:
		return render.DetailsView
	case opts.long && opts.grid:
		return render.GridDetailsView
	case opts.long, opts.extended:
		return render.DetailsView
	case opts.oneline:
		return render.LinesView
	default:
		return render.GridView
	}
}

// resolveAttrs only pays for the platform xattr provider when the extended
// rows were asked for.
func resolveAttrs(opts *options) files.AttributeProvider {
	if opts.extended {
		return files.SystemAttributes()
	}
	return files.NoAttributes{}
}

// resolveMounts loads the mount table only for trees, which are the one
// place the renderer asks about mount points.
func resolveMounts(opts *options) files.MountProvider {
	if opts.tree {
		return files.SystemMounts()
	}
	return files.NoMounts{}
}

func resolveSizeFormat(opts *options) render.SizeFormat {
	switch {
	case opts.bytes:
		return render.RawBytes
	case opts.binary:
		return render.BinaryBytes
	default:
		return render.DecimalBytes
	}
}

func resolveColour(when string) (bool, error) {
	switch when {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		return isatty.IsTerminal(os.Stdout.Fd()) && !color.NoColor, nil
	default:
		return false, fmt.Errorf("unknown --color value %q (want auto, always, or never)", when)
	}
}

// terminalWidth probes stdout, falling back to the COLUMNS variable. Zero
// means no usable width, which the renderer turns into one entry per line.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if columns := os.Getenv("COLUMNS"); columns != "" {
		if w, err := strconv.Atoi(columns); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

// warn prints a non-fatal problem in yellow and keeps going.
func warn(errOut io.Writer, err error) {
	color.New(color.FgYellow).Fprintf(errOut, "lsx: %v\n", err)
}
