package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/academia-admin/academia/internal/catalog"
)

// EntityInfo describes one managed entity.
type EntityInfo struct {
	Path   string      `json:"path"`
	Name   string      `json:"name"`
	Base   string      `json:"base"`
	Fields []FieldInfo `json:"fields"`
}

// FieldInfo describes one form field of an entity.
type FieldInfo struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

// EntityList is the result of the entities command.
type EntityList []EntityInfo

// WriteText renders one entity per line with its fields, required ones
// marked with an asterisk.
func (l EntityList) WriteText(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "PATH\tNAME\tFIELDS")
	for _, e := range l {
		names := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			names[i] = f.Name
			if f.Required {
				names[i] += "*"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Path, e.Name, strings.Join(names, ","))
	}
	return tw.Flush()
}

// NewEntitiesCommand creates the entities command.
func NewEntitiesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the managed entities and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(describeEntities())
		},
	}
}

func describeEntities() EntityList {
	all := catalog.All()
	out := make(EntityList, 0, len(all))
	for _, d := range all {
		m := d.Meta()
		info := EntityInfo{Path: m.Path, Name: m.Name, Base: m.Base}
		for _, f := range m.Fields {
			info.Fields = append(info.Fields, FieldInfo{
				Name:     f.Name,
				Label:    f.Label,
				Kind:     f.Kind.String(),
				Required: f.Required,
			})
		}
		out = append(out, info)
	}
	return out
}
