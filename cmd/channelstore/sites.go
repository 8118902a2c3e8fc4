// Site commands: list, add, update, delete.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feedforge/channelstore/pkg/types"
)

var (
	siteSourceID int64
	siteURL      string
	siteType     string
	siteYes      bool
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Manage pollable sites",
}

var siteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sites",
	Args:  cobra.NoArgs,
	RunE:  runSiteList,
}

var siteAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Create a site under a source",
	Example: `  channelstore site add --source 1 --url https://listings.example.org --type RENT`,
	Args:    cobra.NoArgs,
	RunE:    runSiteAdd,
}

var siteUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a site record",
	Args:  cobra.ExactArgs(1),
	RunE:  runSiteUpdate,
}

var siteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a site",
	Args:  cobra.ExactArgs(1),
	RunE:  runSiteDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{siteAddCmd, siteUpdateCmd} {
		cmd.Flags().Int64Var(&siteSourceID, "source", 0, "owning source id (required)")
		cmd.Flags().StringVar(&siteURL, "url", "", "site URL (required)")
		cmd.Flags().StringVar(&siteType, "type", "", "site type: AUTO, RENT, BUY, or FREE (required)")
		_ = cmd.MarkFlagRequired("source")
		_ = cmd.MarkFlagRequired("url")
		_ = cmd.MarkFlagRequired("type")
	}
	siteDeleteCmd.Flags().BoolVar(&siteYes, "yes", false, "skip the confirmation prompt")

	siteCmd.AddCommand(siteListCmd)
	siteCmd.AddCommand(siteAddCmd)
	siteCmd.AddCommand(siteUpdateCmd)
	siteCmd.AddCommand(siteDeleteCmd)
}

func runSiteList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sites, err := store.Sites().List()
	if err != nil {
		return fmt.Errorf("list sites: %w", err)
	}

	if flagJSON {
		return printJSON(sites)
	}

	if len(sites) == 0 {
		fmt.Println("No sites found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tURL\tTYPE")
	for _, s := range sites {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", s.SiteID, s.SourceID, s.SiteURL, s.SiteType)
	}
	w.Flush()
	fmt.Printf("Total: %d site(s)\n", len(sites))
	return nil
}

func runSiteAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	site := &types.Site{
		SourceID: siteSourceID,
		SiteURL:  siteURL,
		SiteType: types.SiteType(siteType),
	}

	id, err := store.Sites().Create(site)
	if err != nil {
		return fmt.Errorf("create site: %w", err)
	}

	if flagJSON {
		return printJSON(site)
	}
	fmt.Printf("Created site %d\n", id)
	return nil
}

func runSiteUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	site := &types.Site{
		SourceID: siteSourceID,
		SiteURL:  siteURL,
		SiteType: types.SiteType(siteType),
	}

	if err := store.Sites().Update(id, site); err != nil {
		return fmt.Errorf("update site: %w", err)
	}

	if flagJSON {
		return printJSON(site)
	}
	fmt.Printf("Updated site %d\n", id)
	return nil
}

func runSiteDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ok, err := confirmDelete(cmd.InOrStdin(), cmd.OutOrStdout(),
		fmt.Sprintf("site %d", id), siteYes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Sites().Delete(id); err != nil {
		return fmt.Errorf("delete site: %w", err)
	}

	fmt.Printf("Deleted site %d\n", id)
	return nil
}
