package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/gmaps/internal/config"
	"github.com/samvad-hq/gmaps/internal/storage"
	"github.com/samvad-hq/gmaps/pkg/gmaps"
)

// Render writes res in the given output format.
func Render(w io.Writer, format string, res *Result) error {
	if res == nil || res.Response == nil {
		return fmt.Errorf("nothing to render")
	}
	switch format {
	case config.OutputJSON:
		return renderJSON(w, res)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res.Response); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.OutputText, "":
		return renderText(w, res)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// renderJSON indents the body as received so fields the DTOs do not model survive.
func renderJSON(w io.Writer, res *Result) error {
	if len(res.Raw) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, res.Raw, "", "  "); err == nil {
			buf.WriteByte('\n')
			_, err = w.Write(buf.Bytes())
			return err
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Response); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func renderText(w io.Writer, res *Result) error {
	resp := res.Response
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", label, value)
		}
	}

	row("Status", resp.Status.String())
	if resp.Status != gmaps.StatusOK {
		row("Error", resp.ErrorMessage)
		for _, msg := range resp.InfoMessages {
			row("Info", msg)
		}
		return tw.Flush()
	}

	p := resp.Result
	row("Name", p.Name)
	row("Place ID", p.PlaceID)
	if p.BusinessStatus != 0 {
		row("Business status", p.BusinessStatus.String())
	}
	row("Address", p.FormattedAddress)
	if adr, err := p.ParsedAdrAddress(); err == nil && !adr.IsZero() {
		row("  Street", adr.StreetAddress)
		row("  Locality", adr.Locality)
		row("  Region", adr.Region)
		row("  Postal code", adr.PostalCode)
		row("  Country", adr.CountryName)
	}
	if p.Geometry != nil {
		row("Location", p.Geometry.Location.String())
	}
	if p.PlusCode != nil {
		row("Plus code", p.PlusCode.GlobalCode)
	}
	row("Types", strings.Join(p.Types, ", "))
	row("Phone", p.InternationalPhoneNumber)
	row("Website", p.Website)
	row("Maps URL", p.URL)
	if p.Rating > 0 {
		row("Rating", fmt.Sprintf("%.1f (%d ratings)", p.Rating, p.UserRatingsTotal))
	}
	if p.PriceLevel != 0 {
		row("Price level", p.PriceLevel.String())
	}
	if p.OpeningHours != nil {
		if p.OpeningHours.OpenNow != nil {
			row("Open now", fmt.Sprintf("%t", *p.OpeningHours.OpenNow))
		}
		for _, line := range p.OpeningHours.WeekdayText {
			row("Hours", line)
		}
	}
	if p.EditorialSummary != nil {
		row("Summary", p.EditorialSummary.Overview)
	}
	if len(p.Reviews) > 0 {
		row("Reviews", fmt.Sprintf("%d", len(p.Reviews)))
	}
	for _, a := range resp.Attributions() {
		row("Attribution", a)
	}
	if res.Archived != nil {
		row("Archived at", res.Archived.SavedAt.UTC().Format(time.RFC3339))
	}
	if res.Saved {
		row("Archived", "yes")
	}
	return tw.Flush()
}

// RenderHistory lists archive records as a table.
func RenderHistory(w io.Writer, recs []storage.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLACE ID\tSAVED AT\tEXPIRES AT\tSIZE")
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			rec.PlaceID,
			rec.SavedAt.UTC().Format(time.RFC3339),
			rec.ExpiresAt.UTC().Format(time.RFC3339),
			len(rec.Body))
	}
	return tw.Flush()
}
