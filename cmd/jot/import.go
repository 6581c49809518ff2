package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
)

var importCmd = &cobra.Command{
	Use:   "import [pattern...]",
	Short: "Merge notes from exported JSON or YAML files",
	Long: `Import reads every file matching the given glob patterns (** is supported)
and merges the notes into the collection. Notes already present are skipped;
colliding ids are replaced with fresh ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandPatterns(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no files match %s", strings.Join(args, " "))
		}

		var incoming []core.Note
		for _, path := range files {
			notes, err := readNotesFile(path)
			if err != nil {
				return err
			}
			incoming = append(incoming, notes...)
		}

		svc := openService()
		added := svc.ImportNotes(context.Background(), incoming)
		checkSaved(svc)

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d notes from %d files\n", added, len(incoming), len(files))
		return nil
	},
}

func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func readNotesFile(path string) ([]core.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var notes []core.Note
		if err := yaml.Unmarshal(data, &notes); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return notes, nil
	default:
		notes, err := core.DecodeNotes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return notes, nil
	}
}

func init() {
	rootCmd.AddCommand(importCmd)
}
