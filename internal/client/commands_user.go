package client

import (
	"github.com/MKhiriev/go-bookshelf/models"
	"github.com/spf13/cobra"
)

// createdUser is printed by "user create"; Token is set only when the server
// issues one.
type createdUser struct {
	User  models.User `json:"user"`
	Token string      `json:"token,omitempty"`
}

func (a *App) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create, read, update, delete and list users",
	}

	cmd.AddCommand(
		a.userCreateCommand(),
		a.userGetCommand(),
		a.userUpdateCommand(),
		a.userDeleteCommand(),
		a.userListCommand(),
	)
	return cmd
}

func bindUserFlags(cmd *cobra.Command, user *models.User) {
	cmd.Flags().StringVar(&user.Name, "name", "", "full name, at least two words")
	cmd.Flags().StringVar(&user.Email, "email", "", "email address")
	cmd.Flags().StringVar(&user.Password, "password", "", "password")
	cmd.Flags().StringVar(&user.Location, "location", "", "location")
	cmd.Flags().StringVar(&user.Title, "title", "", "title")
}

func (a *App) userCreateCommand() *cobra.Command {
	var user models.User

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, token, err := a.adapter.CreateUser(cmd.Context(), user)
			if err != nil {
				return err
			}
			return a.printJSON(createdUser{User: created, Token: token})
		},
	}
	bindUserFlags(cmd, &user)
	return cmd
}

func (a *App) userGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.adapter.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(user)
		},
	}
}

func (a *App) userUpdateCommand() *cobra.Command {
	var user models.User

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the name, email, location, title and optionally the password of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.adapter.UpdateUser(cmd.Context(), args[0], user)
			if err != nil {
				return err
			}
			return a.printJSON(updated)
		},
	}
	bindUserFlags(cmd, &user)
	return cmd
}

func (a *App) userDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.adapter.DeleteUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.DeletedCount == 0 {
				a.logger.Warn().Str("id", args[0]).Msg("no user was deleted")
			}
			return a.printJSON(res)
		},
	}
}

func (a *App) userListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := a.adapter.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(users)
		},
	}
}
