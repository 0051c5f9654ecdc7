package ui

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	pkgtypes "github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// tierLabels controls display order of the distribution table
var tierLabels = []pkgtypes.StorageTier{
	pkgtypes.TierStandard,
	pkgtypes.TierArchivalInstant,
	pkgtypes.TierArchivalDelayed,
	pkgtypes.TierArchivalDeep,
	pkgtypes.TierUnknown,
}

// PrintPlan prints the tier distribution and the restore plan itself
func PrintPlan(plan *pkgtypes.RestorePlan) {
	printDistribution(plan.Distribution)

	if plan.IsEmpty() {
		fmt.Println(HintStyle.Render("  nothing to restore: no archival objects found"))
		return
	}

	headers := []string{"Key", "Size", "Tier"}

	keys := make([]string, len(plan.Objects))
	for i, obj := range plan.Objects {
		keys[i] = obj.Key
	}
	widths := []int{keyColumnWidth(keys, len(headers[0]), 70), 11, 16}

	var rows [][]cell
	for _, obj := range plan.Objects {
		rows = append(rows, []cell{
			{text: obj.Key, style: KeyStyle},
			{text: humanize.Bytes(uint64(obj.Size)), style: SizeStyle, padNum: true},
			{text: string(obj.Tier), style: TierStyle},
		})
	}

	fmt.Print(renderBoxTable(headers, widths, rows))
	fmt.Printf("  %d objects to restore, %s total\n",
		len(plan.Objects), humanize.Bytes(uint64(plan.TotalBytes)))
}

// printDistribution prints object count and bytes per storage tier
func printDistribution(dist map[pkgtypes.StorageTier]pkgtypes.TierStats) {
	headers := []string{"Tier", "Objects", "Bytes"}
	widths := []int{18, 9, 11}

	// Known tiers first in fixed order, then any stragglers
	tiers := make([]pkgtypes.StorageTier, 0, len(dist))
	seen := make(map[pkgtypes.StorageTier]bool)
	for _, t := range tierLabels {
		if _, ok := dist[t]; ok {
			tiers = append(tiers, t)
			seen[t] = true
		}
	}
	var extra []pkgtypes.StorageTier
	for t := range dist {
		if !seen[t] {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	tiers = append(tiers, extra...)

	var rows [][]cell
	for _, t := range tiers {
		stats := dist[t]
		style := SizeStyle
		if t.IsArchival() {
			style = TierStyle
		}
		rows = append(rows, []cell{
			{text: string(t), style: style},
			{text: fmt.Sprintf("%d", stats.Count), style: SizeStyle, padNum: true},
			{text: humanize.Bytes(uint64(stats.Bytes)), style: SizeStyle, padNum: true},
		})
	}

	fmt.Print(renderBoxTable(headers, widths, rows))
}
