// Command textkey computes normalized cache keys for text.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaguanLabs/textkey"
	"github.com/ZaguanLabs/textkey/processor"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = textkey.Version
	commit    = textkey.GitCommit
	buildDate = textkey.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("textkey", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	normalizeOnly := fs.Bool("normalize", false, "Print the normalized text instead of the key")
	lines := fs.Bool("lines", false, "Treat each input line as a separate text")
	htmlInput := fs.Bool("html", false, "Extract visible text from HTML input before keying")
	jsonOutput := fs.Bool("json", false, "Output results as JSON")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", textkey.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	texts, err := collectTexts(fs.Args(), stdin, *lines)
	if err != nil {
		return err
	}

	if *htmlInput {
		proc := processor.NewHTMLProcessor()
		for i, text := range texts {
			extracted, extractErr := proc.ExtractText(text)
			if extractErr != nil {
				return fmt.Errorf("extracting text: %w", extractErr)
			}
			texts[i] = extracted
		}
	}

	var results []string
	if *normalizeOnly {
		results = make([]string, len(texts))
		for i, text := range texts {
			results[i] = textkey.NormalizeText(text)
		}
	} else {
		results = textkey.NormalizeAndHashBatch(texts)
	}

	if *jsonOutput {
		return writeJSON(stdout, texts, results, *normalizeOnly)
	}

	for _, result := range results {
		fmt.Fprintln(stdout, result)
	}
	return nil
}

// collectTexts gathers input texts: trailing arguments if present, otherwise
// stdin (whole input as one text, or line by line with -lines).
func collectTexts(args []string, stdin io.Reader, lines bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if lines {
		var texts []string
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			texts = append(texts, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return texts, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return []string{string(data)}, nil
}

// jsonResult is one input/output pair for -json output.
type jsonResult struct {
	Text       string `json:"text"`
	Key        string `json:"key,omitempty"`
	Normalized string `json:"normalized,omitempty"`
}

func writeJSON(w io.Writer, texts, results []string, normalized bool) error {
	out := make([]jsonResult, len(texts))
	for i := range texts {
		out[i].Text = texts[i]
		if normalized {
			out[i].Normalized = results[i]
		} else {
			out[i].Key = results[i]
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
