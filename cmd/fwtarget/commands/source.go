package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/fwtarget/internal/app"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/zerr"
)

var selectorFlags = []struct {
	kind  domain.SelectorKind
	usage string
}{
	{domain.KindBranch, "Read targets from the tip of a branch"},
	{domain.KindTag, "Read targets from a tag"},
	{domain.KindCommit, "Read targets from a commit"},
	{domain.KindPullRequest, "Read targets from the head commit of a pull request"},
	{domain.KindLocal, "Read targets from a local checkout"},
}

func addSourceFlags(cmd *cobra.Command) {
	for _, f := range selectorFlags {
		cmd.Flags().String(string(f.kind), "", f.usage)
	}
	cmd.Flags().String("repo-url", "", "Repository to fetch from (defaults to the configured repository)")
	cmd.Flags().String("sub-folder", "", `Folder holding the hardware directory, "/" for the repository root`)
}

// sourceOptions reads the source flags. At most one selector flag may be set;
// none selects the configured branch.
func sourceOptions(cmd *cobra.Command) (app.SourceOptions, error) {
	var (
		opts app.SourceOptions
		set  []string
	)

	for _, f := range selectorFlags {
		flag := cmd.Flags().Lookup(string(f.kind))
		if !flag.Changed {
			continue
		}
		set = append(set, "--"+flag.Name)
		sel, err := domain.ParseSelector(string(f.kind), flag.Value.String())
		if err != nil {
			return app.SourceOptions{}, err
		}
		opts.Selector = sel
	}
	if len(set) > 1 {
		err := zerr.Wrap(domain.ErrInvalidRequest, "only one of "+strings.Join(set, ", ")+" may be given")
		return app.SourceOptions{}, zerr.With(err, "flags", strings.Join(set, ","))
	}

	opts.RepositoryURL, _ = cmd.Flags().GetString("repo-url")
	opts.SubFolder, _ = cmd.Flags().GetString("sub-folder")
	return opts, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}
