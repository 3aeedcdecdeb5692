package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agiangrant/imlayout"
)

// ConfigFileNames are the config files looked up, in order of preference.
var ConfigFileNames = []string{"imlayout.toml", "imlayout.yaml", "imlayout.yml"}

// FindConfig looks for a config file in dir and its parents. It returns an
// empty path if there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// ResolveConfig loads the config at path, or the nearest config file if
// path is empty, falling back to the defaults. It returns the file it used.
func ResolveConfig(path string) (imlayout.Config, string, error) {
	if path == "" {
		found, err := FindConfig(".")
		if err != nil {
			return imlayout.DefaultConfig(), "", fmt.Errorf("failed to look up config: %w", err)
		}
		if found == "" {
			return imlayout.DefaultConfig(), "", nil
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return imlayout.DefaultConfig(), "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := imlayout.LoadConfig(path)
	if err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// Config implements the 'imlayout config' command.
func Config(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(out)
	path := fs.String("config", "", "Path to a config file (default: nearest imlayout.toml/.yaml)")
	format := fs.String("format", "", "Output format: toml or yaml (default: format of the file read)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, used, err := ResolveConfig(*path)
	if err != nil {
		return err
	}

	outFormat := imlayout.FormatTOML
	switch {
	case *format != "":
		outFormat = imlayout.Format(*format)
	case used != "":
		outFormat = imlayout.FormatForPath(used)
	}

	data, err := imlayout.MarshalConfig(cfg, outFormat)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	source := used
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(out, "# resolved from %s\n", source)
	_, err = out.Write(data)
	return err
}
