package dto

import "github.com/amintouch/ledger-api/internal/domain/ledger"

// SummaryResponse the four dashboard cards plus their heading.
type SummaryResponse struct {
	Title   string         `json:"title"` // "Overall Summary" or "Summary for {staff}"
	Summary ledger.Summary `json:"summary"`
}

// ChartResponse a bucketed chart series. Timeframe echoes the granularity
// actually used, which may be coarser than requested when the year/month
// filter was "all".
type ChartResponse struct {
	Timeframe string        `json:"timeframe"`
	Series    ledger.Series `json:"series"`
}
