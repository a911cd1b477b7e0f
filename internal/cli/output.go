package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reposcout/internal/services/search/domain"
)

// num renders integers with thousands separators (191,000)
var num = message.NewPrinter(language.English)

// fileRecord is the flat shape written to JSON output files
// readme_content stays present (null) even when absent
type fileRecord struct {
	Name          string  `json:"name"`
	FullName      string  `json:"full_name"`
	Description   string  `json:"description"`
	Stars         int     `json:"stars"`
	Language      string  `json:"language"`
	URL           string  `json:"url"`
	ReadmeContent *string `json:"readme_content"`
}

// displayResults prints search results to the console
func displayResults(w io.Writer, repos []domain.Repository, maxReadmeLength int, quiet bool) {
	if quiet {
		for _, repo := range repos {
			fmt.Fprintf(w, "%s (%s stars)\n", repo.FullName, num.Sprintf("%d", repo.Stars))
		}
		return
	}

	fmt.Fprintf(w, "\nFound %d repositories:\n", len(repos))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for i, repo := range repos {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, repo.FullName)
		fmt.Fprintf(w, "   Stars: %s\n", num.Sprintf("%d", repo.Stars))
		fmt.Fprintf(w, "   Language: %s\n", repo.Language)
		fmt.Fprintf(w, "   Description: %s\n", repo.Description)
		fmt.Fprintf(w, "   URL: %s\n", repo.URL)

		switch {
		case repo.ReadmeContent == nil:
			fmt.Fprintln(w, "   README: Not available")
		case len([]rune(*repo.ReadmeContent)) > maxReadmeLength:
			fmt.Fprintf(w, "   README Preview: %s\n", preview(*repo.ReadmeContent, maxReadmeLength))
		default:
			fmt.Fprintln(w, "   README Content:")
			fmt.Fprintln(w, "   "+strings.Repeat("-", 40))
			fmt.Fprintln(w, *repo.ReadmeContent)
			fmt.Fprintln(w, "   "+strings.Repeat("-", 40))
		}
		fmt.Fprintln(w)
	}
}

// preview flattens newlines and truncates to n runes with an ellipsis
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return strings.ReplaceAll(string(r), "\n", " ") + "..."
}

// saveResults writes results to a file as a JSON array or a txt report
func saveResults(path, format string, repos []domain.Repository) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "json":
		return writeJSON(f, repos)
	case "txt":
		return writeTxt(f, repos)
	default:
		return fmt.Errorf("invalid format %q (want json or txt)", format)
	}
}

func writeJSON(w io.Writer, repos []domain.Repository) error {
	records := make([]fileRecord, 0, len(repos))
	for _, repo := range repos {
		records = append(records, fileRecord{
			Name:          repo.Name,
			FullName:      repo.FullName,
			Description:   repo.Description,
			Stars:         repo.Stars,
			Language:      repo.Language,
			URL:           repo.URL,
			ReadmeContent: repo.ReadmeContent,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeTxt(w io.Writer, repos []domain.Repository) error {
	var b strings.Builder
	b.WriteString("GitHub README Search Results\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, repo := range repos {
		fmt.Fprintf(&b, "%d. %s\n", i+1, repo.FullName)
		fmt.Fprintf(&b, "   Stars: %s\n", num.Sprintf("%d", repo.Stars))
		fmt.Fprintf(&b, "   Language: %s\n", repo.Language)
		fmt.Fprintf(&b, "   Description: %s\n", repo.Description)
		fmt.Fprintf(&b, "   URL: %s\n", repo.URL)

		if repo.ReadmeContent != nil {
			b.WriteString("   README Content:\n")
			b.WriteString("   " + strings.Repeat("-", 30) + "\n")
			b.WriteString(*repo.ReadmeContent)
			b.WriteString("\n   " + strings.Repeat("-", 30) + "\n")
		} else {
			b.WriteString("   README: Not available\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
