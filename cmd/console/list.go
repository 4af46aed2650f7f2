package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"foodieConsole/internal/modules/restaurants/application/port"
	"foodieConsole/internal/modules/restaurants/domain"
)

var (
	listPage   int
	listSearch string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of restaurants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context(), cmd.OutOrStdout(), newGateway(cfg), cfg.Console.PageSize, listPage, listSearch, listJSON)
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page to fetch")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only show restaurants whose name contains this text")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the page as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(ctx context.Context, w io.Writer, gateway port.RestaurantGateway, pageSize, page int, search string, asJSON bool) error {
	result, err := gateway.ListRestaurants(ctx, domain.PagedQuery{Page: page, Limit: pageSize})
	if err != nil {
		return &domain.FetchError{Op: domain.OpList, Err: err}
	}
	items := domain.FilterByName(result.Items, search)
	if items == nil {
		items = []domain.Restaurant{}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(domain.ListPage{Items: items, CurrentPage: result.CurrentPage, TotalPages: result.TotalPages})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tCONTACT\tHOURS")
	for _, r := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Location, r.ContactNumber, r.OpeningHours)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "No Restaurants Found")
	}
	fmt.Fprintf(w, "page %d of %d\n", result.CurrentPage, max(result.TotalPages, 1))
	return nil
}
