package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	catalogagent "github.com/JoannaDrx/Catalog/internal/catalog-agent"
	"github.com/JoannaDrx/Catalog/pkg/catalog"
)

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Crawl the base path and rebuild the catalog from scratch",
		Run: func(cmd *cobra.Command, args []string) {
			runCatalogCommand(cmd, func(ctx context.Context, agent *catalogagent.CatalogAgent) error {
				return agent.Create(ctx)
			})
		},
	}
}

func newUpdateCommand() *cobra.Command {
	var group string
	var raw bool
	var allowArrays bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Refresh one group, or insert every group missing from the catalog",
		Run: func(cmd *cobra.Command, args []string) {
			runCatalogCommand(cmd, func(ctx context.Context, agent *catalogagent.CatalogAgent) error {
				return agent.Update(ctx, group, !raw, allowArrays)
			})
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "group identifier to refresh; refreshes missing groups when omitted")
	cmd.Flags().BoolVar(&raw, "raw", false, "match the group identifier verbatim instead of normalizing it first")
	cmd.Flags().BoolVar(&allowArrays, "arrays", false, "collapse large sets of loose files into arrays")
	return cmd
}

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [attribute=substring ...]",
		Short: "List every dataset matching all attribute predicates",
		Long:  "Search matches each predicate as a case-sensitive substring of the named dataset attribute (group, location, format, kind, pattern or example). With no predicates every dataset is listed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			predicates := make(map[string]string, len(args))
			for _, arg := range args {
				attribute, substring, ok := strings.Cut(arg, "=")
				if !ok || attribute == "" {
					return fmt.Errorf("predicate %q is not of the form attribute=substring", arg)
				}
				predicates[attribute] = substring
			}

			runCatalogCommand(cmd, func(ctx context.Context, agent *catalogagent.CatalogAgent) error {
				results, err := agent.Search(ctx, predicates)
				if err != nil {
					return err
				}
				printDatasets(cmd, results)
				return nil
			})
			return nil
		},
	}
}

func newDownloadCommand() *cobra.Command {
	var group string
	var name string
	var format string
	var key string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Fetch one dataset, or one member of an array, into the download directory",
		Run: func(cmd *cobra.Command, args []string) {
			runCatalogCommand(cmd, func(ctx context.Context, agent *catalogagent.CatalogAgent) error {
				local, err := agent.Download(ctx, group, name, format, key)
				if err != nil {
					return err
				}
				cmd.Println(local)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "group identifier the artifact belongs to")
	cmd.Flags().StringVarP(&name, "name", "n", "", "artifact name within the group")
	cmd.Flags().StringVarP(&format, "format", "f", "", "format to pick when the artifact exists in several")
	cmd.Flags().StringVarP(&key, "key", "k", "", "member key for array datasets")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func printDatasets(cmd *cobra.Command, datasets []*catalog.Dataset) {
	for _, ds := range datasets {
		cmd.Println(ds.String())
		cmd.Println()
	}
	cmd.Printf("%d matching datasets\n", len(datasets))
}
