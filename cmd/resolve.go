package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/myhalal/directory/internal/directory"
	"github.com/myhalal/directory/internal/listing"
	"github.com/myhalal/directory/internal/model"
)

var (
	resolveLat float64
	resolveLng float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [text]",
	Short: "Resolve a location query against the catalog",
	Long: `Resolves a free-text query (any language) or an explicit --lat/--lng pair
and prints the matching listings. Free-text queries that yield nothing are
silent; coordinate queries report an empty result explicitly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initDirectory(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		var places []*model.Place
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			places, err = env.Service.ResolvePoint(ctx, model.Coordinate{Lat: resolveLat, Lng: resolveLng})
		} else {
			if len(args) == 0 {
				return eris.New("text argument or --lat/--lng is required")
			}
			places, err = env.Service.ResolveText(ctx, strings.Join(args, " "))
		}

		switch {
		case err == nil:
			for _, chunk := range formatPlaces(places, cfg.Directory.MessageLimit) {
				fmt.Println(chunk)
			}
		case eris.Is(err, directory.ErrNoReply):
			// Silence is the answer for an unresolvable text query.
		case eris.Is(err, directory.ErrNoneNearby):
			fmt.Printf("No establishments within %.0f km of that point.\n", cfg.Directory.RadiusKM)
		default:
			return err
		}
		return nil
	},
}

// formatPlaces joins listing texts and splits the result into chunks under
// the outbound message limit.
func formatPlaces(places []*model.Place, limit int) []string {
	texts := make([]string, 0, len(places))
	for _, p := range places {
		texts = append(texts, strings.TrimRight(p.DisplayText(), "\n"))
	}
	return listing.Split(strings.Join(texts, "\n\n\n"), limit)
}

func init() {
	resolveCmd.Flags().Float64Var(&resolveLat, "lat", 0, "latitude of an explicit coordinate query")
	resolveCmd.Flags().Float64Var(&resolveLng, "lng", 0, "longitude of an explicit coordinate query")
	rootCmd.AddCommand(resolveCmd)
}
