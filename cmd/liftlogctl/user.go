package main

import (
	"fmt"
	"strings"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/pkg"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	userUsername string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage liftlog users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(userUsername)
		if username == "" || userPassword == "" {
			return auth.ErrInvalidCredentials
		}

		passwordHash, err := pkg.HashPassword(userPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user, err := auth.NewUsersRepo(dbPool).Add(cmd.Context(), username, passwordHash)
		if err != nil {
			return err
		}

		color.Green("✓ Added user %s", user.Username)
		fmt.Printf("  %s %d\n", color.New(color.Faint).Sprint("id"), user.ID)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userUsername, "username", "", "username")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "password")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}
