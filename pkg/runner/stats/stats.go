package stats

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gosuri/uitable"

	"tableflip.dev/radial/pkg/config"
	"tableflip.dev/radial/pkg/usage"
)

// Stats prints the usage counters for every recorded menu item.
type Stats struct {
	Tracker *usage.Tracker

	Out io.Writer
}

const timeLayout = "2006-01-02 15:04"

func (s *Stats) Do(ctx context.Context) error {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	tracker := s.Tracker
	if tracker == nil {
		tracker = usage.NewTracker(config.UsageDir())
	}
	tracker.Load(ctx)

	entries := tracker.All()
	if len(entries) == 0 {
		fmt.Fprintln(out, "no usage recorded yet")
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})

	table := uitable.New()
	table.AddRow("ITEM", "MENU", "COUNT", "LAST USED")
	for _, e := range entries {
		menuPath := e.MenuPath
		if menuPath == "" {
			menuPath = "(root)"
		}
		table.AddRow(e.Label, menuPath, e.Count, e.LastUsed.Format(timeLayout))
	}
	fmt.Fprintln(out, table)
	return nil
}
