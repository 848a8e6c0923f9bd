package launcher

import (
	"encoding/json"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pylaunch/pylaunch/pkg/version"
)

// listExecutables renders the discovered interpreters as a two-column
// table, newest first, one row per interpreter.
func listExecutables(executables map[version.ExactVersion]string) (string, error) {
	versions, err := sortedDescending(executables)
	if err != nil {
		return "", err
	}

	// U+2502/"Box Drawings Light Vertical" over U+007C/pipe simply because
	// it looks better. No header or outer decorations so the output stays
	// easy to parse.
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderRow(false).
		BorderColumn(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, v := range versions {
		t.Row(v.String(), executables[v])
	}

	return t.String() + "\n", nil
}

// listExecutablesJSON renders the same listing as a JSON object mapping
// "MAJOR.MINOR" to the executable path.
func listExecutablesJSON(executables map[version.ExactVersion]string) (string, error) {
	if _, err := sortedDescending(executables); err != nil {
		return "", err
	}

	byVersion := make(map[string]string, len(executables))
	for v, path := range executables {
		byVersion[v.String()] = path
	}

	out, err := json.MarshalIndent(byVersion, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

// sortedDescending returns the enumeration's versions newest first, or
// NoExecutableFound when there is nothing to list.
func sortedDescending(executables map[version.ExactVersion]string) ([]version.ExactVersion, error) {
	if len(executables) == 0 {
		return nil, &NoExecutableFoundError{Requested: version.Any()}
	}

	versions := make([]version.ExactVersion, 0, len(executables))
	for v := range executables {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) > 0
	})
	return versions, nil
}
