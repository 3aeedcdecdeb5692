package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/agiangrant/imlayout"
	"github.com/agiangrant/imlayout/internal/demo"
	"github.com/agiangrant/imlayout/retained"
)

// rootList collects --root values. Each value may hold several
// comma-separated roots.
type rootList []string

func (r *rootList) String() string { return strings.Join(*r, ",") }

func (r *rootList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*r = append(*r, part)
		}
	}
	return nil
}

// DemoOptions holds the parsed 'imlayout demo' flags.
type DemoOptions struct {
	App        string
	Roots      []string
	Query      string
	Width      float64
	Height     float64
	Scroll     float64
	ConfigPath string
	Color      string
	FitFont    bool
}

func parseDemoFlags(args []string, out io.Writer) (DemoOptions, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(out)

	var roots rootList
	opts := DemoOptions{}
	fs.StringVar(&opts.App, "app", "files", "Demo to run: files or stats")
	fs.Var(&roots, "root", "Directory to search (repeatable, comma-separated)")
	fs.StringVar(&opts.Query, "query", "", "Search text typed into the files demo")
	fs.Float64Var(&opts.Width, "width", 600, "Window width")
	fs.Float64Var(&opts.Height, "height", 800, "Window height")
	fs.Float64Var(&opts.Scroll, "scroll", 0, "Vertical scroll offset applied after the first frame")
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a config file")
	fs.StringVar(&opts.Color, "color", "auto", "Colorize output: auto, always or never")
	fs.BoolVar(&opts.FitFont, "fit-font", false, "Derive the line height from the toolkit font")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Roots = roots
	if len(opts.Roots) == 0 {
		opts.Roots = []string{"."}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return opts, fmt.Errorf("window size must be positive, got %vx%v", opts.Width, opts.Height)
	}
	switch opts.Color {
	case "auto", "always", "never":
	default:
		return opts, fmt.Errorf("unknown --color value %q", opts.Color)
	}
	return opts, nil
}

// Demo implements the 'imlayout demo' command. It runs a demo app against
// the in-memory toolkit, applies the requested input and dumps the widgets.
func Demo(args []string, out io.Writer) error {
	opts, err := parseDemoFlags(args, out)
	if err != nil {
		return err
	}

	cfg, _, err := ResolveConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)

	tk, err := retained.NewToolkit(opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("failed to create toolkit: %w", err)
	}
	l, err := imlayout.New(tk, cfg)
	if err != nil {
		return err
	}
	if opts.FitFont {
		_, margin := l.Style()
		l.SetStyle(tk.Metrics().SuggestedLineHeight(margin), margin)
	}

	win := tk.Window()
	switch opts.App {
	case "files":
		files, err := demo.CollectFiles(context.Background(), opts.Roots...)
		if err != nil {
			return err
		}
		app := demo.NewFileSearch(l, files, func(f demo.FileEntry) {
			fmt.Fprintf(out, "open %s\n", f.Path())
		})
		l.BindRedrawFunc(app.Draw)
		win.RenderPass()

		if opts.Query != "" {
			field := win.Find(func(w *retained.Widget) bool {
				return w.Kind() == imlayout.KindTextField
			})
			if field == nil {
				return fmt.Errorf("search field not on screen")
			}
			field.Replace(opts.Query)
			win.RenderPass()
		}
	case "stats":
		app := demo.NewRuntimeStats(l)
		l.BindRedrawFunc(app.Draw)
		win.RenderPass()
	default:
		return fmt.Errorf("unknown app %q (want files or stats)", opts.App)
	}

	if opts.Scroll != 0 {
		win.ScrollTo(opts.Scroll)
		win.RenderPass()
	}

	if err := tk.Dump(out, retained.DumpOptions{
		Color: useColor(opts.Color, out),
		Elide: true,
	}); err != nil {
		return err
	}
	fmt.Fprintln(out, l.Stats())
	return nil
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
