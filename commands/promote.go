package commands

import (
	"context"
	"errors"
	"fmt"

	"darasa/models"
	"darasa/services"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var promoteRole string

var promoteCmd = &cobra.Command{
	Use:   "promote <username>",
	Short: "Change a user's role",
	Long: `Set the role of an existing user. Without --role the user becomes an ADMIN.

Examples:
  darasa promote alice               # alice becomes ADMIN
  darasa promote alice --role USER   # demote alice again`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)

		return runPromote(cmd, db, args[0], promoteRole)
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)

	promoteCmd.Flags().StringVar(&promoteRole, "role", models.RoleAdmin, "Role to assign (ADMIN or USER)")
}

func runPromote(cmd *cobra.Command, db *gorm.DB, username, role string) error {
	user, err := services.NewUserService(db).Promote(context.Background(), username, role)
	if err != nil {
		var svcErr *services.Error
		if errors.As(err, &svcErr) {
			return fmt.Errorf("promote %s: %s", username, svcErr.Detail)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Username, user.Role)
	return nil
}
