package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/academia-admin/academia/internal/api"
	"github.com/academia-admin/academia/internal/catalog"
	"github.com/academia-admin/academia/internal/form"
	"github.com/academia-admin/academia/internal/listing"
	"github.com/academia-admin/academia/internal/navigation"
)

// RecordList is the result of the list command.
type RecordList []catalog.Row

// WriteText renders one record per line.
func (l RecordList) WriteText(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tDETAIL")
	for _, r := range l {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Title, r.Subtitle)
	}
	return tw.Flush()
}

// MarshalJSON emits the flattened records.
func (l RecordList) MarshalJSON() ([]byte, error) {
	data := make([]json.RawMessage, len(l))
	for i, r := range l {
		data[i] = r.Data
	}
	return json.Marshal(data)
}

// SaveResult is the result of create, update and delete.
type SaveResult struct {
	Action string          `json:"action"`
	Entity string          `json:"entity"`
	ID     int64           `json:"id"`
	Record json.RawMessage `json:"record,omitempty"`
}

// WriteText renders the outcome on one line.
func (r SaveResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s %d\n", r.Action, r.Entity, r.ID)
	return err
}

// FieldErrors are per-field validation messages.
type FieldErrors form.Errors

// WriteText renders one field per line, in field name order.
func (e FieldErrors) WriteText(w io.Writer) error {
	for _, name := range form.Errors(e).Fields() {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", name, e[name]); err != nil {
			return err
		}
	}
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "List the records of an entity",
		Long: `List the records of an entity.

The filter matches the display name, ignoring case and accents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd, args[0], filter)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only records whose name contains this text")
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command, entity, filter string) error {
	d, err := lookupEntity(entity)
	if err != nil {
		return err
	}
	client, err := opts.client()
	if err != nil {
		return err
	}

	formatter := opts.formatter(cmd)
	coll := d.NewCollection(client)
	if err := coll.Load(cmd.Context()); err != nil {
		return reportRequestError(formatter, "list failed", err)
	}

	rows := coll.Rows(filter)
	formatter.VerboseLog("%d of %d record(s) from %s", len(rows), coll.Len(), client.BaseURL())
	return formatter.Success(RecordList(rows))
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "create <entity> --set field=value...",
		Short: "Create a record",
		Long: `Create a record from field=value pairs.

The values are validated like the app's form; nothing is sent when a field is
rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupEntity(args[0])
			if err != nil {
				return err
			}
			values, err := parseSets(d.Meta(), sets)
			if err != nil {
				return err
			}
			return runSave(rootOpts, cmd, d, 0, values)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable")
	return cmd
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update <entity> <id> --set field=value...",
		Short: "Update a record",
		Long: `Update a record. The current record pre-fills every field, so only the
changed fields need a --set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupEntity(args[0])
			if err != nil {
				return err
			}
			key, err := parseKey(args[1])
			if err != nil {
				return err
			}
			changes, err := parseSets(d.Meta(), sets)
			if err != nil {
				return err
			}
			return runUpdate(rootOpts, cmd, d, key, changes)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable")
	return cmd
}

func runUpdate(opts *RootOptions, cmd *cobra.Command, d catalog.Descriptor, key int64, changes form.Values) error {
	client, err := opts.client()
	if err != nil {
		return err
	}

	formatter := opts.formatter(cmd)
	coll := d.NewCollection(client)
	if err := coll.Load(cmd.Context()); err != nil {
		return reportRequestError(formatter, "cannot read current record", err)
	}

	var current *catalog.Row
	for _, row := range coll.Rows("") {
		if row.Key == key {
			current = &row
			break
		}
	}
	if current == nil {
		msg := fmt.Sprintf("%s %d not found", d.Meta().Path, key)
		_ = formatter.Error(ErrCodeHTTP, msg, nil)
		return NewExitError(ExitFailure, msg)
	}

	values, err := form.Decode(d.Meta().Fields, current.Data)
	if err != nil {
		return WrapExitError(ExitFailure, "cannot read current record", err)
	}
	for name, value := range changes {
		values[name] = value
	}
	return runSave(opts, cmd, d, key, values)
}

// runSave submits values through the entity's form submitter, which
// validates before any request.
func runSave(opts *RootOptions, cmd *cobra.Command, d catalog.Descriptor, key int64, values form.Values) error {
	meta := d.Meta()
	formatter := opts.formatter(cmd)

	client, err := opts.client()
	if err != nil {
		return err
	}

	params, err := d.NewSaver(client, opts.log).Submit(cmd.Context(), key, values)
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		_ = formatter.Error(ErrCodeValidation, form.FormErrorMessage, FieldErrors(verr.Errors))
		return WrapExitError(ExitFailure, "validation failed", err)
	case err != nil:
		return reportRequestError(formatter, "save failed", err)
	}

	mutation, _ := params.Mutation(meta.Base)
	result := SaveResult{
		Action: "created",
		Entity: meta.Path,
		ID:     meta.KeyOf([]byte(mutation.Raw)),
		Record: json.RawMessage(mutation.Raw),
	}
	if mutation.Kind == navigation.MutationUpdated {
		result.Action = "updated"
		if result.ID == 0 {
			result.ID = key
		}
	}
	opts.log.Debug("saved", zap.String("entity", meta.Path), zap.Int64("id", result.ID))

	if opts.cfg.RefetchAfterSave {
		// the save response lacks joined fields; show the record as listed
		coll := d.NewCollection(client, listing.WithLogger(opts.log))
		if err := coll.Load(cmd.Context()); err != nil {
			formatter.VerboseLog("refetch failed: %v", err)
		}
		for _, row := range coll.Rows("") {
			if row.Key == result.ID {
				result.Record = row.Data
				break
			}
		}
	}
	return formatter.Success(result)
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := lookupEntity(args[0])
			if err != nil {
				return err
			}
			key, err := parseKey(args[1])
			if err != nil {
				return err
			}
			client, err := rootOpts.client()
			if err != nil {
				return err
			}

			formatter := rootOpts.formatter(cmd)
			if err := d.NewCollection(client).Delete(cmd.Context(), key); err != nil {
				if api.IsStatus(err, http.StatusNotFound) {
					return reportRequestError(formatter, fmt.Sprintf("%s %d not found", d.Meta().Path, key), err)
				}
				return reportRequestError(formatter, "delete failed", err)
			}
			return formatter.Success(SaveResult{Action: "deleted", Entity: d.Meta().Path, ID: key})
		},
	}
}

// parseSets turns field=value pairs into form values. Unknown fields are
// rejected before anything else happens.
func parseSets(meta catalog.Meta, sets []string) (form.Values, error) {
	values := make(form.Values, len(sets))
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid --set %q: expected field=value", set))
		}
		name = strings.TrimSpace(name)
		if _, known := meta.Field(name); !known {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("unknown field %q for %s", name, meta.Path))
		}
		values[name] = value
	}
	return values, nil
}

func parseKey(arg string) (int64, error) {
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || key <= 0 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid id %q", arg))
	}
	return key, nil
}

// reportRequestError prints a failed request. The server's status and body
// are shown as returned.
func reportRequestError(formatter *OutputFormatter, msg string, err error) error {
	code := ErrCodeGeneric
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		code = ErrCodeHTTP
	}
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, msg, err)
}
