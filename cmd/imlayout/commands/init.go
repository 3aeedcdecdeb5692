package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agiangrant/imlayout"
)

// Init implements the 'imlayout init' command.
func Init(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", ".", "Directory to write the config file to")
	format := fs.String("format", "toml", "Config format: toml or yaml")
	force := fs.Bool("force", false, "Overwrite an existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f := imlayout.Format(*format)
	var name string
	switch f {
	case imlayout.FormatTOML:
		name = "imlayout.toml"
	case imlayout.FormatYAML:
		name = "imlayout.yaml"
	default:
		return fmt.Errorf("unknown format %q (want toml or yaml)", *format)
	}
	path := filepath.Join(*dir, name)

	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := imlayout.MarshalConfig(imlayout.DefaultConfig(), f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(out, "  ✓ Created %s\n", path)
	return nil
}
