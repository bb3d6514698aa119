package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aifina/aifina/internal/accounts"
	"github.com/aifina/aifina/internal/model"
	"github.com/aifina/aifina/internal/period"
)

// DefaultTopClients is the length of the top clients ranking.
const DefaultTopClients = 5

// ComponentRevenue is the sales revenue of one product component in a period.
type ComponentRevenue struct {
	Period    period.Period
	Component string
	Revenue   decimal.Decimal
}

// ClientRevenue is the sales revenue of one client in a period.
type ClientRevenue struct {
	Period  period.Period
	Rank    int // 1-based within the period
	Client  string
	Revenue decimal.Decimal
	Share   decimal.Decimal // % of the period's sales revenue
}

type group struct {
	key     string
	revenue decimal.Decimal
}

// groupSales sums credit minus debit of sales revenue lines by period and by
// key(line). Groups come back in period order, then key order.
func groupSales(lines []model.LedgerLine, key func(model.LedgerLine) string) ([]period.Period, map[period.Period][]group) {
	sums := make(map[period.Period]map[string]decimal.Decimal)
	for _, l := range lines {
		if l.Account != accounts.SalesRevenue {
			continue
		}
		m, ok := sums[l.Period]
		if !ok {
			m = make(map[string]decimal.Decimal)
			sums[l.Period] = m
		}
		k := key(l)
		m[k] = m[k].Add(l.Net())
	}

	periods := make([]period.Period, 0, len(sums))
	out := make(map[period.Period][]group, len(sums))
	for p, m := range sums {
		periods = append(periods, p)
		groups := make([]group, 0, len(m))
		for k, v := range m {
			groups = append(groups, group{key: k, revenue: v})
		}
		sort.Slice(groups, func(i, j int) bool { return groups[i].key < groups[j].key })
		out[p] = groups
	}
	period.Sort(periods)
	return periods, out
}

// RevenueByComponent returns sales revenue per component and period.
func RevenueByComponent(lines []model.LedgerLine) []ComponentRevenue {
	periods, groups := groupSales(lines, func(l model.LedgerLine) string { return l.Component })

	var rows []ComponentRevenue
	for _, p := range periods {
		for _, g := range groups[p] {
			rows = append(rows, ComponentRevenue{Period: p, Component: g.key, Revenue: g.revenue})
		}
	}
	return rows
}

// TopClients ranks clients by sales revenue within each period, highest
// first, keeping at most n per period (all when n <= 0). Equal revenues
// keep client name order.
func TopClients(lines []model.LedgerLine, n int) []ClientRevenue {
	periods, groups := groupSales(lines, func(l model.LedgerLine) string { return l.Counterparty })

	var rows []ClientRevenue
	for _, p := range periods {
		gs := groups[p]
		total := decimal.Zero
		for _, g := range gs {
			total = total.Add(g.revenue)
		}

		sort.SliceStable(gs, func(i, j int) bool { return gs[i].revenue.GreaterThan(gs[j].revenue) })
		if n > 0 && len(gs) > n {
			gs = gs[:n]
		}

		for i, g := range gs {
			rows = append(rows, ClientRevenue{
				Period:  p,
				Rank:    i + 1,
				Client:  g.key,
				Revenue: g.revenue,
				Share:   percent(g.revenue, total),
			})
		}
	}
	return rows
}
