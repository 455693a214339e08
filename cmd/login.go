package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltyhana/goalie/internal/auth"
	"github.com/saltyhana/goalie/internal/config"
)

var flagLogout bool

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Store the backend access token",
	Long:  "Store the bearer token issued by the saltyhana auth flow. Pass it as an argument or on stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().BoolVar(&flagLogout, "clear", false, "Remove the stored token")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(_ *cobra.Command, args []string) error {
	tokens := auth.NewFileStore(config.DataDir())

	if flagLogout {
		if err := tokens.Clear(); err != nil {
			return err
		}
		fmt.Println("  Stored token removed.")
		return nil
	}

	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		fmt.Fprint(os.Stderr, "  Access token: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token = strings.TrimSpace(line)
	}

	if err := tokens.Save(token); err != nil {
		return err
	}
	fmt.Println("  Token saved.")
	return nil
}
