// Package cli implements zeid's command-line subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zarlcorp/zeid/internal/nationalid"
)

// Usage writes the top-level usage text.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: zeid <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  parse <national-id> [--json]   decode and validate a 14-digit national id")
	fmt.Fprintln(w, "  generate [--json]              produce a random valid national id")
	fmt.Fprintln(w, "  governorates [--json]          list the birth governorate code table")
	fmt.Fprintln(w, "  version                        print the version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "run without arguments on a terminal for the interactive inspector")
}

// CmdParse decodes a national ID and prints its fields.
func CmdParse(args []string) {
	asJSON := hasFlag(args, "--json")

	id := firstPositional(args)
	if id == "" {
		fmt.Fprintln(os.Stderr, "usage: zeid parse <national-id> [--json]")
		os.Exit(2)
	}

	rec, err := nationalid.Parse(id, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zeid: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		printJSON(rec)
		return
	}
	writeRecord(os.Stdout, rec)
}

// CmdGenerate produces a random valid national ID.
func CmdGenerate(args []string) {
	asJSON := hasFlag(args, "--json")

	g := nationalid.NewGenerator()
	rec, id := g.Record(time.Now())

	if asJSON {
		printJSON(struct {
			ID     string            `json:"id"`
			Record nationalid.Record `json:"record"`
		}{id, rec})
		return
	}

	fmt.Println(id)
	writeRecord(os.Stdout, rec)
}

// CmdGovernorates lists the governorate code table.
func CmdGovernorates(args []string) {
	entries := nationalid.Governorates()

	if hasFlag(args, "--json") {
		printJSON(entries)
		return
	}

	for _, e := range entries {
		fmt.Printf("  %s  %s\n", e.Code, e.Name)
	}
}

func writeRecord(w io.Writer, rec nationalid.Record) {
	fmt.Fprintf(w, "  century:      %d\n", rec.BirthCentury)
	fmt.Fprintf(w, "  born:         %s\n", rec.DateOfBirth.Format("2006-01-02"))
	fmt.Fprintf(w, "  governorate:  %s (%s)\n", rec.Governorate, rec.GovernorateCode)
	fmt.Fprintf(w, "  sequence:     %s\n", rec.Sequence)
	fmt.Fprintf(w, "  gender:       %s\n", rec.Gender)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "zeid: encode json: %v\n", err)
		os.Exit(1)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// firstPositional returns the first argument that is not a flag.
func firstPositional(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}
