package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the finance API",
		Long: `Sign in with your Fortuna e-mail and password. The password is read from
--password, from FINCTL_PASSWORD, or from the first line of standard input.`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "account e-mail")
	cmd.Flags().String("password", "", "account password")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("FINCTL_PASSWORD")
	}
	if password == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		var err error
		if password, err = readLine(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	result, err := a.auth.Login(cmd.Context(), domain.Credentials{Email: email, Password: password})
	if errors.Is(err, domain.ErrUnauthorized) {
		return errors.New("invalid email or password")
	}
	if err != nil {
		return err
	}

	name := result.User.Email
	if result.User.Name != "" {
		name = result.User.Name
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s until %s\n", name, result.Session.ExpiresAt.Format("2006-01-02"))
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			sess, err := a.store.Current(cmd.Context())
			if errors.Is(err, domain.ErrSessionNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			if err != nil {
				return err
			}

			if err := a.auth.Logout(cmd.Context(), sess.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
