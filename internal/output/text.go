// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"ngsio/pkg/api"
)

// Renderer returns extra lines printed after a record's TSV row.
type Renderer func(api.SliceV1) string

// StreamText writes one TSV line per record as records arrive.
func StreamText(w io.Writer, in <-chan api.SliceV1, header bool) error {
	return StreamTextWithRenderer(w, in, header, nil)
}

// StreamTextWithRenderer is StreamText with render's block after every row;
// a nil render prints rows only.
func StreamTextWithRenderer(w io.Writer, in <-chan api.SliceV1, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if err := writeTextRecord(w, s, render); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints one line per record.
func WriteText(w io.Writer, list []api.SliceV1, header bool) error {
	return WriteTextWithRenderer(w, list, header, nil)
}

func WriteTextWithRenderer(w io.Writer, list []api.SliceV1, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		if err := writeTextRecord(w, s, render); err != nil {
			return err
		}
	}
	return nil
}

func writeTextRecord(w io.Writer, s api.SliceV1, render Renderer) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(s)); err != nil {
		return err
	}
	if render == nil {
		return nil
	}
	_, err := io.WriteString(w, render(s))
	return err
}

// WriteChromosomes prints the index table.
func WriteChromosomes(w io.Writer, list []api.ChromosomeV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, IndexTSVHeader); err != nil {
			return err
		}
	}
	for _, c := range list {
		if _, err := fmt.Fprintln(w, FormatChromosomeTSV(c)); err != nil {
			return err
		}
	}
	return nil
}
