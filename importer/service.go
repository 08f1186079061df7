package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"worktally/config"
	"worktally/ledger"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsMapped     int
	RowsSkipped    int
	// Untitled lists skipped rows that carried data besides the title.
	Untitled  []SkippedRow
	Additions []ledger.Addition
}

type SkippedRow struct {
	Path string
	Row  int
}

// Run reads every file and maps its rows to ledger additions in file order.
func Run(paths []string, format string, cfg config.Config) (*Result, error) {
	result := &Result{Additions: make([]ledger.Addition, 0, 64)}
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		records, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		rule := MatchRuleByTemplate(path, cfg.Rules)

		result.FilesProcessed++
		result.RowsRead += len(records)
		for _, record := range records {
			addition, ok, mapErr := MapRecord(record, rule.Phase)
			if mapErr != nil {
				return nil, fmt.Errorf("%s: %w", path, mapErr)
			}
			if !ok {
				result.RowsSkipped++
				if !record.Blank() {
					result.Untitled = append(result.Untitled, SkippedRow{Path: path, Row: record.RowNumber})
				}
				continue
			}

			result.RowsMapped++
			result.Additions = append(result.Additions, addition)
		}
	}

	return result, nil
}

// Apply upserts every addition into lines and recomputes the Total Section.
// Changed reports a difference against the lines passed in.
func Apply(p *ledger.Processor, lines []string, additions []ledger.Addition) ledger.Result {
	current := lines
	for _, addition := range additions {
		current = p.Upsert(current, addition)
	}
	result := p.Update(current)
	result.Changed = ledger.JoinLines(lines) != ledger.JoinLines(result.Lines)
	return result
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "tsv":
		return "tsv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}

func MatchRuleByTemplate(path string, rules []config.Rule) config.Rule {
	baseName := filepath.Base(path)
	for _, rule := range rules {
		template := strings.TrimSpace(rule.FileTemplate)
		if template == "" {
			continue
		}
		matchesBase, err := filepath.Match(template, baseName)
		if err == nil && matchesBase {
			return rule
		}
		matchesFull, err := filepath.Match(template, path)
		if err == nil && matchesFull {
			return rule
		}
	}
	return config.Rule{}
}
