// Channel commands: list, add, update, delete.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feedforge/channelstore/pkg/types"
)

var (
	channelName      string
	channelURL       string
	channelPostTimes string
	channelWords     string
	channelYes       bool
)

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Manage output channels",
}

var channelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all channels",
	Example: `  channelstore channel list
  channelstore channel list --json`,
	Args: cobra.NoArgs,
	RunE: runChannelList,
}

var channelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a channel",
	Long: `Add creates a channel. Post times and forbidden words are entered as
comma-separated text; the store keeps them as lists.`,
	Example: `  channelstore channel add --name news --url https://example.org/news \
    --post-times 09:00,18:00 --forbidden-words spam,casino`,
	Args: cobra.NoArgs,
	RunE: runChannelAdd,
}

var channelUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a channel record",
	Long: `Update replaces the whole channel record; every field is written, so
pass all of them, not just the ones that changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runChannelUpdate,
}

var channelDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a channel and, by cascade, its sources and sites",
	Args:  cobra.ExactArgs(1),
	RunE:  runChannelDelete,
}

func init() {
	for _, cmd := range []*cobra.Command{channelAddCmd, channelUpdateCmd} {
		cmd.Flags().StringVar(&channelName, "name", "", "channel name (required, unique)")
		cmd.Flags().StringVar(&channelURL, "url", "", "channel URL (required, unique)")
		cmd.Flags().StringVar(&channelPostTimes, "post-times", "", "comma-separated posting times")
		cmd.Flags().StringVar(&channelWords, "forbidden-words", "", "comma-separated forbidden words")
		_ = cmd.MarkFlagRequired("name")
		_ = cmd.MarkFlagRequired("url")
	}
	channelDeleteCmd.Flags().BoolVar(&channelYes, "yes", false, "skip the confirmation prompt")

	channelCmd.AddCommand(channelListCmd)
	channelCmd.AddCommand(channelAddCmd)
	channelCmd.AddCommand(channelUpdateCmd)
	channelCmd.AddCommand(channelDeleteCmd)
}

func runChannelList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	channels, err := store.Channels().List()
	if err != nil {
		return fmt.Errorf("list channels: %w", err)
	}

	if flagJSON {
		return printJSON(channels)
	}

	if len(channels) == 0 {
		fmt.Println("No channels found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tURL\tPOST TIMES\tFORBIDDEN WORDS")
	for _, c := range channels {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ChannelID, c.Name, c.URL, joinList(c.PostTimes), joinList(c.ForbiddenWords))
	}
	w.Flush()
	fmt.Printf("Total: %d channel(s)\n", len(channels))
	return nil
}

func runChannelAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	channel := &types.Channel{
		Name:           channelName,
		URL:            channelURL,
		PostTimes:      splitList(channelPostTimes),
		ForbiddenWords: splitList(channelWords),
	}

	id, err := store.Channels().Create(channel)
	if err != nil {
		return fmt.Errorf("create channel: %w", err)
	}

	if flagJSON {
		return printJSON(channel)
	}
	fmt.Printf("Created channel %d\n", id)
	return nil
}

func runChannelUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	channel := &types.Channel{
		Name:           channelName,
		URL:            channelURL,
		PostTimes:      splitList(channelPostTimes),
		ForbiddenWords: splitList(channelWords),
	}

	if err := store.Channels().Update(id, channel); err != nil {
		return fmt.Errorf("update channel: %w", err)
	}

	if flagJSON {
		return printJSON(channel)
	}
	fmt.Printf("Updated channel %d\n", id)
	return nil
}

func runChannelDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ok, err := confirmDelete(cmd.InOrStdin(), cmd.OutOrStdout(),
		fmt.Sprintf("channel %d and all its sources and sites", id), channelYes)
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

	if err := store.Channels().Delete(id); err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}

	fmt.Printf("Deleted channel %d\n", id)
	return nil
}
