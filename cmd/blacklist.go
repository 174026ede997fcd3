package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var blacklistCmd = &cobra.Command{
	Use:   "blacklist",
	Short: "Manage silenced words",
	Long:  "A query containing a blacklisted word (substring, case-insensitive) is never answered.",
}

var blacklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blacklisted words",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		words, err := env.Service.Blacklist(cmd.Context())
		if err != nil {
			return err
		}
		for _, w := range words {
			fmt.Println(w)
		}
		return nil
	},
}

var blacklistAddCmd = &cobra.Command{
	Use:   "add <word>",
	Short: "Blacklist a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Service.BlockWord(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("blacklisted %q\n", args[0])
		return nil
	},
}

var blacklistRemoveCmd = &cobra.Command{
	Use:   "remove <word>",
	Short: "Remove a word from the blacklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initDirectory(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Service.UnblockWord(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("removed %q\n", args[0])
		return nil
	},
}

func init() {
	blacklistCmd.AddCommand(blacklistListCmd, blacklistAddCmd, blacklistRemoveCmd)
	rootCmd.AddCommand(blacklistCmd)
}
