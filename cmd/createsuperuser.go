package cmd

import (
	"fmt"

	"food-order/models"
	"food-order/services"

	"github.com/spf13/cobra"
)

var (
	suUsername string
	suEmail    string
	suPassword string
	suRole     string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a staff or superadmin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := bootstrap()
		if err != nil {
			return err
		}
		auth := services.NewAuthService(st, 0)
		user, err := auth.CreateAdmin(cmd.Context(), suUsername, suEmail, suPassword, models.Role(suRole))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s %q (id %d)\n", user.Role, user.Username, user.ID)
		return nil
	},
}

func init() {
	f := createSuperuserCmd.Flags()
	f.StringVar(&suUsername, "username", "", "account username")
	f.StringVar(&suEmail, "email", "", "account email")
	f.StringVar(&suPassword, "password", "", "account password")
	f.StringVar(&suRole, "role", string(models.RoleSuperAdmin), "staff or superadmin")
	_ = createSuperuserCmd.MarkFlagRequired("username")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createSuperuserCmd)
}
