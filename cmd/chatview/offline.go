package main

import (
	"chat-view/domain"
	"chat-view/repositories"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newOfflineCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "offline",
		Short: "List the recently offline members kept in the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig[CacheConfig]()
			if err != nil {
				return err
			}
			if path == "" {
				path = config.OfflineCachePath
			}
			if path == "" {
				return fmt.Errorf("no cache path: set OFFLINE_CACHE_PATH or --db")
			}
			log := logs.GetLoggerFromString(config.LogLevel)

			db, err := repositories.OpenBadger(path, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			records, err := repositories.NewOfflineRepository(db, log, config.OfflineRetention).Load(cmd.Context())
			if err != nil {
				return err
			}
			writeOfflineTable(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "db", "", "Path to the badger offline cache (defaults to OFFLINE_CACHE_PATH)")
	return cmd
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func writeOfflineTable(out io.Writer, records []domain.OfflineMemberRecord) {
	table := newTable(out, []string{"Name", "Status", "Last seen", "Player ID"})
	for _, r := range records {
		table.Append(offlineRow(r))
	}
	table.Render()
}

// writePresenceTable lists online members first, then recently offline ones.
func writePresenceTable(out io.Writer, view domain.PresenceView) {
	table := newTable(out, []string{"Name", "Status", "Last seen", "Player ID"})
	online := func(names []string, status string) {
		for _, name := range names {
			table.Append([]string{name, status, "now", ""})
		}
	}
	online(view.Online.Game, string(domain.OriginGame))
	online(view.Online.Web, string(domain.OriginWeb))
	online(view.Online.Bot, string(domain.KindBot))
	for _, r := range view.Offline {
		table.Append(offlineRow(r))
	}
	table.Render()
}

func offlineRow(r domain.OfflineMemberRecord) []string {
	ref := ""
	if r.ExternalRef != nil {
		ref = r.ExternalRef.String()
	}
	return []string{r.Name, string(lo.CoalesceOrEmpty(r.Kind, domain.KindOffline)), humanize.Time(r.LastSeen), ref}
}
