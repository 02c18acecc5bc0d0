package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/studiowebux/shellwget/internal/config"
	"github.com/studiowebux/shellwget/internal/types"
	"gopkg.in/yaml.v3"
)

// Option list formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Overrides holds flag values the user actually set; nil fields keep the config value
type Overrides struct {
	IndentType      *string
	IndentCount     *int
	RequestTimeout  *int
	FollowRedirect  *bool
	RequestBodyTrim *bool
	Color           *string
	Style           *string
}

// Apply copies every set override into cfg
func (o Overrides) Apply(cfg *config.Config) error {
	if o.IndentType != nil {
		cfg.IndentType = *o.IndentType
	}
	if o.IndentCount != nil {
		cfg.IndentCount = *o.IndentCount
	}
	if o.RequestTimeout != nil {
		cfg.RequestTimeout = *o.RequestTimeout
	}
	if o.FollowRedirect != nil {
		cfg.FollowRedirect = types.Bool(*o.FollowRedirect)
	}
	if o.RequestBodyTrim != nil {
		cfg.RequestBodyTrim = *o.RequestBodyTrim
	}
	if o.Color != nil {
		cfg.Color = *o.Color
	}
	if o.Style != nil {
		cfg.Style = *o.Style
	}
	return cfg.Validate()
}

// PrintOptions writes the generator's option descriptors in the given format
func PrintOptions(w io.Writer, format string) error {
	descriptors := generator.Options()

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(descriptors); err != nil {
			return fmt.Errorf("failed to encode options: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(descriptors); err != nil {
			return fmt.Errorf("failed to encode options: %w", err)
		}
		return enc.Close()

	case FormatTable, "":
		_, err := fmt.Fprintln(w, optionsTable(w, descriptors))
		return err

	default:
		return fmt.Errorf("unknown format %q (expected table, json or yaml)", format)
	}
}

func optionsTable(w io.Writer, descriptors []types.OptionDescriptor) string {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("NAME", "ID", "TYPE", "DEFAULT", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, d := range descriptors {
		def, _ := json.Marshal(d.Default)
		t.Row(d.Name, d.ID, d.Type, string(def), d.Description)
	}

	return t.String()
}
