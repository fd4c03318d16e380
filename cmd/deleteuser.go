package cmd

import (
	"context"
	"fmt"
	"io"

	"food-order/store"

	"github.com/spf13/cobra"
)

var duUsername string

var deleteUserCmd = &cobra.Command{
	Use:   "deleteuser",
	Short: "Delete an account together with its orders and sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := bootstrap()
		if err != nil {
			return err
		}
		return deleteUser(cmd.Context(), st, duUsername, cmd.OutOrStdout())
	},
}

func deleteUser(ctx context.Context, st *store.Store, username string, out io.Writer) error {
	user, err := st.UserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := st.DeleteUser(ctx, user.ID); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %s %q (id %d)\n", user.Role, user.Username, user.ID)
	return nil
}

func init() {
	deleteUserCmd.Flags().StringVar(&duUsername, "username", "", "account username")
	_ = deleteUserCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(deleteUserCmd)
}
