package main

import (
	"github.com/spf13/cobra"

	"github.com/samvad-hq/gmaps/internal/app"
	"github.com/samvad-hq/gmaps/pkg/gmaps/places/details"
)

func newDetailsCmd(state *cliState) *cobra.Command {
	var (
		req     details.Request
		baseURI string
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "details <place-id>",
		Short: "Fetch details for a place",
		Example: `  gmaps details ChIJN1t_tDeuEmsRUsoyG83frY4 --fields name,rating,formatted_address
  gmaps details ChIJN1t_tDeuEmsRUsoyG83frY4 -o json --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("base-uri") {
				state.cfg.DetailsBaseURI = baseURI
				if err := state.cfg.Finalize(); err != nil {
					return err
				}
			}

			lookup, err := state.newLookup()
			if err != nil {
				return err
			}
			defer lookup.Close()

			req.PlaceID = args[0]
			res, err := lookup.Details(cmd.Context(), &req, save)
			if err != nil {
				return err
			}
			return app.Render(cmd.OutOrStdout(), state.cfg.OutputFormat, res)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Language, "language", "", "language code for the results")
	flags.StringVar(&req.Region, "region", "", "region code (ccTLD) used to bias results")
	flags.StringSliceVar(&req.Fields, "fields", nil, "fields to return, comma separated")
	flags.StringVar(&req.SessionToken, "session-token", "", "autocomplete session token")
	flags.StringVar(&req.ReviewsSort, "reviews-sort", "", "review ordering: most_relevant or newest")
	flags.BoolVar(&req.ReviewsNoTranslations, "reviews-no-translations", false, "return reviews in their original language")
	flags.StringVar(&baseURI, "base-uri", "", "override the Place Details base URI")
	flags.BoolVar(&save, "save", false, "archive the reply locally")
	return cmd
}
