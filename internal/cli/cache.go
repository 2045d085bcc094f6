package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/errmsg"
	"github.com/llehouerou/daylist/internal/state"
)

// downloadIndex is the part of the index used by the cache commands.
type downloadIndex interface {
	Downloads() ([]state.Download, error)
	ClearDownloads() (int64, error)
}

func newCacheCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear downloaded tracks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List downloaded tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := openIndex()
			if err != nil {
				return err
			}
			defer index.Close()
			return listCache(cmd.OutOrStdout(), index)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete downloaded tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			index, err := openIndex()
			if err != nil {
				return err
			}
			defer index.Close()

			logger := logrus.New()
			logger.SetOutput(io.Discard)
			cache := catalog.NewCache(afero.NewOsFs(), cfg.Cache.Dir, cfg.Cache.Format, index, logger)
			return clearCache(cmd.OutOrStdout(), cache, index)
		},
	})

	return cmd
}

func listCache(w io.Writer, index downloadIndex) error {
	downloads, err := index.Downloads()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCacheList, err))
	}
	if len(downloads) == 0 {
		_, err := fmt.Fprintln(w, "No downloaded tracks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, d := range downloads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Title, humanize.Bytes(uint64(d.Size)), humanize.Time(d.DownloadedAt), d.Path)
	}
	total := lo.SumBy(downloads, func(d state.Download) int64 { return d.Size })
	fmt.Fprintf(tw, "\n%d tracks\t%s\n", len(downloads), humanize.Bytes(uint64(total)))
	return tw.Flush()
}

func clearCache(w io.Writer, cache *catalog.Cache, index downloadIndex) error {
	files, err := cache.Clear()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCacheClear, err))
	}
	rows, err := index.ClearDownloads()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCacheClear, err))
	}
	_, err = fmt.Fprintf(w, "Removed %d files from %s (%d index entries)\n", files, cache.Dir(), rows)
	return err
}
