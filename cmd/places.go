package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/myhalal/directory/internal/listing"
	"github.com/myhalal/directory/internal/model"
)

var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "Manage catalog listings",
}

var placesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		for _, p := range env.Service.Places() {
			fmt.Printf("%4d  %-30s  %9.5f,%10.5f\n", p.ID, p.Name, p.Lat, p.Lng)
		}
		return nil
	},
}

var addDraft model.Draft

var placesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a listing to the catalog",
	Long: `Builds a new listing from the flag values, deriving coordinates from the
map link when it carries them, otherwise geocoding the city label.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		p, err := env.Service.AddPlace(cmd.Context(), addDraft)
		if err != nil {
			return err
		}
		fmt.Printf("added %d %s (%.5f, %.5f)\n", p.ID, p.Name, p.Lat, p.Lng)
		return nil
	},
}

var editIndex int

var placesEditCmd = &cobra.Command{
	Use:   "edit <id> <field> <value>",
	Short: "Edit one field of a listing",
	Long: `Rewrites one field across every representation of the listing. Fields:
name, location_name, location_link, details, menu, phone, handle, note.
For the location fields --index selects the nth location line.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return eris.Wrapf(err, "invalid id %q", args[0])
		}

		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		p, err := env.Service.EditField(cmd.Context(), id, listing.Field(args[1]), args[2], editIndex)
		if err != nil {
			return err
		}
		fmt.Println(p.TextChannel)
		return nil
	},
}

var placesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return eris.Wrapf(err, "invalid id %q", args[0])
		}

		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Service.DeletePlace(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("deleted %d\n", id)
		return nil
	},
}

var placesSwapCmd = &cobra.Command{
	Use:   "swap <id-a> <id-b>",
	Short: "Exchange the contents of two listings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idA, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return eris.Wrapf(err, "invalid id %q", args[0])
		}
		idB, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return eris.Wrapf(err, "invalid id %q", args[1])
		}

		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Service.Swap(cmd.Context(), idA, idB); err != nil {
			return err
		}
		fmt.Printf("swapped %d and %d\n", idA, idB)
		return nil
	},
}

func init() {
	placesAddCmd.Flags().StringVar(&addDraft.Number, "number", "", "channel reference number")
	placesAddCmd.Flags().StringVar(&addDraft.Name, "name", "", "display name")
	placesAddCmd.Flags().StringVar(&addDraft.City, "city", "", "location label, e.g. \"Orlando FL\"")
	placesAddCmd.Flags().StringVar(&addDraft.MapLink, "map-link", "", "map URL for the location anchor")
	placesAddCmd.Flags().StringVar(&addDraft.Details, "details", "", "free-text detail block")
	placesAddCmd.Flags().StringVar(&addDraft.MenuNum, "menu", "", "numeric menu reference")
	placesAddCmd.Flags().StringVar(&addDraft.Phone, "phone", "", "phone number")
	placesAddCmd.Flags().StringVar(&addDraft.Handle, "handle", "", "messaging handle, @user form")
	placesAddCmd.Flags().StringVar(&addDraft.Extra, "extra", "", "optional trailing note")

	placesEditCmd.Flags().IntVar(&editIndex, "index", 1, "1-based location line to edit")

	placesCmd.AddCommand(placesListCmd, placesAddCmd, placesEditCmd, placesDeleteCmd, placesSwapCmd)
	rootCmd.AddCommand(placesCmd)
}
