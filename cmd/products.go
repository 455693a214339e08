package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saltyhana/goalie/internal/cli"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List recommended financial products",
	RunE:  runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	products, err := buildClient(cfg).Products(ctx)
	if err != nil {
		return fmt.Errorf("fetching products: %w", err)
	}
	if len(products) == 0 {
		fmt.Println("  추천 상품이 없습니다.")
		return nil
	}

	fmt.Println(cli.RenderTitle("추천 상품"))

	t := cli.Table{
		Headers: []string{"상품명", "최고금리", "기간"},
	}
	for _, p := range products {
		t.Rows = append(t.Rows, []string{p.Name, cli.FormatRate(p.MaxRate), p.Period})
	}
	fmt.Print(cli.RenderTable(t))
	fmt.Print(cli.RenderNote("자세한 조건은 상품 페이지에서 확인할 수 있어요."))
	return nil
}
