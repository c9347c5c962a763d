package cmd

import (
	"fmt"

	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/spf13/cobra"
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a staff superuser account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		users := services.NewUserService(repositories.NewGORMUserRepository(rt.db), rt.log)
		user, err := users.CreateSuperuser(email, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created (id %s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().String("email", "", "superuser email address")
	createSuperuserCmd.Flags().String("password", "", "superuser password")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createSuperuserCmd)
}
