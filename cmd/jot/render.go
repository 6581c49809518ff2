package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes notes in the requested format. JSON uses the storage layout
// so the output can be fed back to import.
func render(w io.Writer, format string, notes []core.Note) error {
	switch format {
	case formatText:
		return renderTable(w, notes)
	case formatJSON:
		data, err := core.EncodeNotes(notes)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		data, err := yaml.Marshal(notes)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func renderTable(w io.Writer, notes []core.Note) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, "No notes found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tTITLE\tTAGS")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			n.ID,
			n.CreatedAt.Local().Format(time.DateTime),
			n.Title,
			strings.Join(n.Tags, ","),
		)
	}
	return tw.Flush()
}

func renderNote(w io.Writer, n core.Note) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n\nid: %s\ncreated: %s\ntags: %s\n",
		n.Title,
		strings.Repeat("=", len(n.Title)),
		n.Content,
		n.ID,
		n.CreatedAt.Local().Format(time.DateTime),
		strings.Join(n.Tags, ", "),
	)
	return err
}
