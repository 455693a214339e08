package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/saltyhana/goalie/internal/cli"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List your bank accounts",
	RunE:  runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	accounts, err := buildClient(cfg).Accounts(ctx)
	if err != nil {
		return fmt.Errorf("fetching accounts: %w", err)
	}
	if len(accounts) == 0 {
		fmt.Println("  연결된 계좌가 없습니다.")
		return nil
	}

	fmt.Println(cli.RenderTitle("내 계좌"))

	t := cli.Table{
		Headers: []string{"계좌", "별명", "ID", "주계좌"},
	}
	for _, a := range accounts {
		main := ""
		if a.Main {
			main = "✓"
		}
		t.Rows = append(t.Rows, []string{
			cli.FormatAccount(a.AccountAlias, a.AccountNumber),
			a.AccountNickname,
			strconv.FormatInt(a.ID, 10),
			main,
		})
	}
	fmt.Print(cli.RenderTable(t))
	fmt.Print(cli.RenderNote("✓ 표시는 주계좌입니다."))
	return nil
}
