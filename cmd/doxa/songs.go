package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"doxa/internal/domain"
	"doxa/internal/plan"
)

func newSongsCmd(a *app) *cobra.Command {
	songs := &cobra.Command{
		Use:   "songs",
		Short: "Inspect and extend the song catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, release, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			all, err := source.Songs(cmd.Context())
			if err != nil {
				return err
			}
			return printSongs(cmd.OutOrStdout(), all)
		},
	}

	var (
		matchAll bool
		rank     string
	)
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the catalog songs matching a query",
		Long: `Matches the query case-insensitively against title, number and theme.

An empty query prints nothing unless --all is given or search.match_all is
set in the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.FilterOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("all") {
				opts.MatchAll = matchAll
			}
			if cmd.Flags().Changed("rank") {
				if opts.Rank, err = plan.RankerByName(rank); err != nil {
					return fmt.Errorf("%w (known: %s)", err, strings.Join(plan.RankerNames(), ", "))
				}
			}

			source, release, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			all, err := source.Songs(cmd.Context())
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return printSongs(cmd.OutOrStdout(), plan.Filter(all, query, nil, opts))
		},
	}
	search.Flags().BoolVar(&matchAll, "all", false, "an empty query matches every song")
	search.Flags().StringVar(&rank, "rank", "", "order results: "+strings.Join(plan.RankerNames(), ", "))

	var (
		song       domain.Song
		lastPlayed string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a song to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lastPlayed != "" {
				t, err := time.Parse("2006-01-02", lastPlayed)
				if err != nil {
					return fmt.Errorf("--last-played: %w", err)
				}
				song.LastPlayed = &t
			}

			source, release, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			added, err := source.AddSong(cmd.Context(), song)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added song %d: %s\n", added.ID, added.Title)
			return nil
		},
	}
	add.Flags().StringVar(&song.Title, "title", "", "song title (required)")
	add.Flags().StringVar(&song.Number, "number", "", "hymnal number")
	add.Flags().StringVar(&song.Theme, "theme", "", "theme, e.g. Hymn or Contemporary (required)")
	add.Flags().StringVar(&lastPlayed, "last-played", "", "date last played, YYYY-MM-DD")
	add.Flags().IntVar(&song.TimesPlayedLastMonth, "times-played", 0, "times played in the last month")
	_ = add.MarkFlagRequired("title")
	_ = add.MarkFlagRequired("theme")

	songs.AddCommand(list, search, add)
	return songs
}

// printSongs writes songs as a table
func printSongs(w io.Writer, songs []domain.Song) error {
	if len(songs) == 0 {
		_, err := fmt.Fprintln(w, "No songs")
		return err
	}

	rows := make([][]string, 0, len(songs))
	for _, s := range songs {
		played := "never"
		if s.LastPlayed != nil {
			played = s.LastPlayed.Format("2006-01-02")
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Number,
			s.Title,
			s.Theme,
			played,
			strconv.Itoa(s.TimesPlayedLastMonth),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "NUMBER", "TITLE", "THEME", "LAST PLAYED", "LAST MONTH").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}
