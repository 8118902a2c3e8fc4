// Source commands: list, add, update, delete.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feedforge/channelstore/pkg/types"
)

var (
	sourceChannelID  int64
	sourceURL        string
	sourceParseMedia bool
	sourceWords      string
	sourceYes        bool
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage scrape sources",
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sources",
	Args:  cobra.NoArgs,
	RunE:  runSourceList,
}

var sourceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a source under a channel",
	Example: `  channelstore source add --channel 1 --url https://feeds.example.org/a \
    --parse-media --forbidden-words lottery`,
	Args: cobra.NoArgs,
	RunE: runSourceAdd,
}

var sourceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a source record",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceUpdate,
}

var sourceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a source and, by cascade, its sites",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{sourceAddCmd, sourceUpdateCmd} {
		cmd.Flags().Int64Var(&sourceChannelID, "channel", 0, "owning channel id (required)")
		cmd.Flags().StringVar(&sourceURL, "url", "", "source URL (required)")
		cmd.Flags().BoolVar(&sourceParseMedia, "parse-media", false, "scrape media attachments")
		cmd.Flags().StringVar(&sourceWords, "forbidden-words", "", "comma-separated forbidden words")
		_ = cmd.MarkFlagRequired("channel")
		_ = cmd.MarkFlagRequired("url")
	}
	sourceDeleteCmd.Flags().BoolVar(&sourceYes, "yes", false, "skip the confirmation prompt")

	sourceCmd.AddCommand(sourceListCmd)
	sourceCmd.AddCommand(sourceAddCmd)
	sourceCmd.AddCommand(sourceUpdateCmd)
	sourceCmd.AddCommand(sourceDeleteCmd)
}

func runSourceList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sources, err := store.Sources().List()
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}

	if flagJSON {
		return printJSON(sources)
	}

	if len(sources) == 0 {
		fmt.Println("No sources found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHANNEL\tURL\tPARSE MEDIA\tFORBIDDEN WORDS")
	for _, s := range sources {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			s.SourceID, s.ChannelID, s.SourceURL, yesNo(s.ParseMedia), joinList(s.ForbiddenWords))
	}
	w.Flush()
	fmt.Printf("Total: %d source(s)\n", len(sources))
	return nil
}

func runSourceAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	source := &types.Source{
		ChannelID:      sourceChannelID,
		SourceURL:      sourceURL,
		ParseMedia:     sourceParseMedia,
		ForbiddenWords: splitList(sourceWords),
	}

	id, err := store.Sources().Create(source)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	if flagJSON {
		return printJSON(source)
	}
	fmt.Printf("Created source %d\n", id)
	return nil
}

func runSourceUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	source := &types.Source{
		ChannelID:      sourceChannelID,
		SourceURL:      sourceURL,
		ParseMedia:     sourceParseMedia,
		ForbiddenWords: splitList(sourceWords),
	}

	if err := store.Sources().Update(id, source); err != nil {
		return fmt.Errorf("update source: %w", err)
	}

	if flagJSON {
		return printJSON(source)
	}
	fmt.Printf("Updated source %d\n", id)
	return nil
}

func runSourceDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ok, err := confirmDelete(cmd.InOrStdin(), cmd.OutOrStdout(),
		fmt.Sprintf("source %d and all its sites", id), sourceYes)
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

	if err := store.Sources().Delete(id); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}

	fmt.Printf("Deleted source %d\n", id)
	return nil
}
