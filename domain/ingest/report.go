package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const listDisplayLimit = 10

/*
FormatSummary renders the change-set preview shown before confirmation. Output
is deterministic for identical input: kinds appear in staging order, duplicate
and orphan descriptions are deduplicated and sorted, and long lists are elided
after ten entries.
*/
func FormatSummary(runID uuid.UUID, reports []*EntityReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pending changes (run %s):\n", runID)

	if len(reports) == 0 {
		b.WriteString("  nothing to ingest\n")
		return b.String()
	}

	for _, report := range reports {
		fmt.Fprintf(&b, "  %s: %d added", report.Kind, report.Added)
		for _, extra := range sortedExtras(report.Extra) {
			fmt.Fprintf(&b, ", %d %s", extra.count, extra.name)
		}
		if len(report.Duplicates) > 0 {
			fmt.Fprintf(&b, ", %d duplicates", len(report.Duplicates))
		}
		if len(report.Orphans) > 0 {
			fmt.Fprintf(&b, ", %d orphans", len(report.Orphans))
		}
		b.WriteString("\n")

		if len(report.Duplicates) > 0 {
			fmt.Fprintf(&b, "    duplicates: %s\n", formatLargeList(dedupSorted(report.Duplicates), listDisplayLimit))
		}
		if len(report.Orphans) > 0 {
			fmt.Fprintf(&b, "    orphans: %s\n", formatLargeList(dedupSorted(report.Orphans), listDisplayLimit))
		}
	}

	return b.String()
}

type extraCount struct {
	name  string
	count int
}

func sortedExtras(extras map[string]int) []extraCount {
	ret := make([]extraCount, 0, len(extras))
	for name, count := range extras {
		ret = append(ret, extraCount{name: name, count: count})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].name < ret[j].name })
	return ret
}

func dedupSorted(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	ret := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		ret = append(ret, item)
	}
	sort.Strings(ret)
	return ret
}

func formatLargeList(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, and %d more...", strings.Join(items[:limit], ", "), len(items)-limit)
}
