package commands

import (
	"fmt"

	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/repository"
	"github.com/Antdol/LittleLemonAPI/services"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	cuUsername string
	cuEmail    string
	cuPassword string
	cuAdmin    bool
	cuGroups   []string
)

var createUserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Create a user account",
	Long: `Create a user account from the shell.

Examples:
  littlelemon createuser --username mario --password s3cret --group Manager
  littlelemon createuser --username root --password s3cret --admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreateUser(cmd)
	},
}

func init() {
	createUserCmd.Flags().StringVar(&cuUsername, "username", "", "Username (required)")
	createUserCmd.Flags().StringVar(&cuEmail, "email", "", "Email address")
	createUserCmd.Flags().StringVar(&cuPassword, "password", "", "Password (required)")
	createUserCmd.Flags().BoolVar(&cuAdmin, "admin", false, "Grant superuser")
	createUserCmd.Flags().StringSliceVar(&cuGroups, "group", nil, "Group to join: Manager or \"Delivery Crew\" (repeatable)")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createUserCmd)
}

func runCreateUser(cmd *cobra.Command) error {
	for _, g := range cuGroups {
		if g != entity.GroupManager && g != entity.GroupDeliveryCrew {
			return errors.Newf("unknown group %q", g)
		}
	}

	cfg, _, db, err := bootstrap()
	if err != nil {
		return err
	}
	users := repository.NewUserRepository(db)
	groups := repository.NewGroupRepository(db)
	auth := services.NewAuthService(users, groups, cfg.JWTSecret, cfg.JWTTTL)
	groupSvc := services.NewGroupService(users, groups)

	u, err := auth.CreateUser(&services.RegisterIn{
		Username: cuUsername,
		Email:    cuEmail,
		Password: cuPassword,
	}, cuAdmin)
	if err != nil {
		return err
	}
	for _, g := range cuGroups {
		if err := groupSvc.Add(g, u.Username); err != nil {
			return errors.Wrapf(err, "add to %s", g)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d)\n", u.Username, u.ID)
	return nil
}
