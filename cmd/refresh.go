package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-catalog/api"
)

// refreshCmd reconciles keywords against the directory once and exits
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reconcile keywords against the iTunes directory once",
	Long: `Search the iTunes directory for each keyword and upsert the results.

Without --keyword, the configured catalog.refresh_keywords are used.

Example:
  podcast-catalog refresh --keyword thmanyah
  podcast-catalog refresh --keyword fnjan --keyword sard`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().StringSliceP("keyword", "k", nil, "keyword to reconcile (repeatable)")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}

	keywords, _ := cmd.Flags().GetStringSlice("keyword")
	if len(keywords) == 0 {
		keywords = cfg.Catalog.RefreshKeywords
	}
	if len(keywords) == 0 {
		return fmt.Errorf("no keywords given and catalog.refresh_keywords is empty")
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	services, err := api.NewServices(cfg, db)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword == "" {
			continue
		}
		result, err := services.Podcasts.Reconcile(ctx, keyword)
		if err != nil {
			return fmt.Errorf("reconciling %q: %w", keyword, err)
		}
		result.Podcasts = nil
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	return nil
}
