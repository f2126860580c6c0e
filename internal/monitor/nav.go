package monitor

import (
	"sort"

	"github.com/lookout-dev/lookout/internal/engine"
)

// HostGroup is one host's results, ordered by service name.
type HostGroup struct {
	Host     string
	Services []engine.CheckResult
}

// ItemKind tags what a flattened dashboard row points at.
type ItemKind int

const (
	// ItemHostHeader is a host header row.
	ItemHostHeader ItemKind = iota
	// ItemService is a service row under a host header.
	ItemService
)

// Item is one selectable row of the overview. Host is set for both kinds;
// Result is only meaningful for ItemService.
type Item struct {
	Kind   ItemKind
	Host   string
	Result engine.CheckResult
}

// GroupResults arranges a store snapshot into hosts sorted by name, each
// holding its services sorted by service name (port breaks ties). The output
// is deterministic regardless of map iteration order.
func GroupResults(snapshot map[engine.Key]engine.CheckResult) []HostGroup {
	byHost := make(map[string][]engine.CheckResult)
	for _, r := range snapshot {
		byHost[r.HostName] = append(byHost[r.HostName], r)
	}

	names := make([]string, 0, len(byHost))
	for name := range byHost {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]HostGroup, 0, len(names))
	for _, name := range names {
		services := byHost[name]
		sortServices(services)
		groups = append(groups, HostGroup{Host: name, Services: services})
	}
	return groups
}

func sortServices(services []engine.CheckResult) {
	sort.Slice(services, func(i, j int) bool {
		if services[i].ServiceName != services[j].ServiceName {
			return services[i].ServiceName < services[j].ServiceName
		}
		return services[i].Port < services[j].Port
	})
}

// TotalItems counts the selectable rows: one header per host plus one row
// per service.
func TotalItems(groups []HostGroup) int {
	total := 0
	for _, g := range groups {
		total += 1 + len(g.Services)
	}
	return total
}

// ItemAt resolves a flattened row index to its item. Index 0 is the first
// host's header, 1 that host's first service, and so on through the groups.
// ok is false when the index is out of range.
func ItemAt(groups []HostGroup, index int) (Item, bool) {
	if index < 0 {
		return Item{}, false
	}
	for _, g := range groups {
		if index == 0 {
			return Item{Kind: ItemHostHeader, Host: g.Host}, true
		}
		index--
		if index < len(g.Services) {
			return Item{Kind: ItemService, Host: g.Host, Result: g.Services[index]}, true
		}
		index -= len(g.Services)
	}
	return Item{}, false
}

// HostServices returns every result for one host, sorted by service name.
func HostServices(snapshot map[engine.Key]engine.CheckResult, host string) []engine.CheckResult {
	var out []engine.CheckResult
	for _, r := range snapshot {
		if r.HostName == host {
			out = append(out, r)
		}
	}
	sortServices(out)
	return out
}

// Stats tallies statuses across a snapshot.
type Stats struct {
	Up      int
	Down    int
	Unknown int
}

// Total is the number of tallied results.
func (s Stats) Total() int { return s.Up + s.Down + s.Unknown }

// Tally counts Up, Down and Unknown results in a snapshot.
func Tally(snapshot map[engine.Key]engine.CheckResult) Stats {
	var s Stats
	for _, r := range snapshot {
		switch r.Status {
		case engine.StatusUp:
			s.Up++
		case engine.StatusDown:
			s.Down++
		default:
			s.Unknown++
		}
	}
	return s
}

// HostStatus summarizes a host's rows: Down when any service is down,
// Unknown when nothing is known yet, Up otherwise.
func HostStatus(services []engine.CheckResult) engine.Status {
	hasUp := false
	for _, r := range services {
		switch r.Status {
		case engine.StatusDown:
			return engine.StatusDown
		case engine.StatusUp:
			hasUp = true
		}
	}
	if hasUp {
		return engine.StatusUp
	}
	return engine.StatusUnknown
}
