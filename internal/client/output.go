package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

const timeLayout = "2006-01-02 15:04"

func printNotes(w io.Writer, notes []models.Note) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(w, "no notes yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPINNED\tUPDATED\tTITLE")
	for _, n := range notes {
		pinned := ""
		if n.Pinned {
			pinned = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, pinned, n.UpdatedAt.Local().Format(timeLayout), n.Title)
	}
	return tw.Flush()
}

func printNote(w io.Writer, n models.Note) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", n.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", n.Title)
	fmt.Fprintf(tw, "Pinned:\t%t\n", n.Pinned)
	fmt.Fprintf(tw, "Created:\t%s\n", formatTime(n.CreatedAt))
	fmt.Fprintf(tw, "Updated:\t%s\n", formatTime(n.UpdatedAt))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", n.Content)
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
