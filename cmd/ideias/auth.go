package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bancoideias/backend-go/internal/client"
)

var (
	registerNascimento string
	registerTelefone   string
	registerInstagram  string
)

var registerCmd = &cobra.Command{
	Use:   "register <nome> <email> <password>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := client.RegisterPayload{
			Nome:     args[0],
			Email:    args[1],
			Password: args[2],
		}
		if registerNascimento != "" {
			payload.Nascimento = &registerNascimento
		}
		if registerTelefone != "" {
			payload.Telefone = &registerTelefone
		}
		if registerInstagram != "" {
			payload.InstagramUsername = &registerInstagram
		}

		id, err := newClient().Register(cmd.Context(), payload)
		if err != nil {
			return err
		}
		fmt.Printf("account created (id %d), now run: ideias login %s <password>\n", id, args[1])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Sign in and store the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := newClient().Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s <%s>\n", user.Nome, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().SignOut(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if err := c.RestoreSession(cmd.Context()); err != nil {
			return err
		}
		user, err := c.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("id:    %d\n", user.ID)
		fmt.Printf("nome:  %s\n", user.Nome)
		fmt.Printf("email: %s\n", user.Email)
		if user.InstagramUsername != nil {
			fmt.Printf("insta: @%s\n", *user.InstagramUsername)
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerNascimento, "nascimento", "", "birth date (YYYY-MM-DD)")
	registerCmd.Flags().StringVar(&registerTelefone, "telefone", "", "phone number")
	registerCmd.Flags().StringVar(&registerInstagram, "instagram", "", "instagram username")
}
