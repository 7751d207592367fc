package ledger

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amintouch/ledger-api/internal/domain/entity"
)

// Granularity of the chart series.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ValidGranularity reports whether s is a known granularity.
func ValidGranularity(s string) bool {
	switch Granularity(s) {
	case Daily, Monthly, Yearly:
		return true
	}
	return false
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Series is a labelled pair of chart series, one per cash bucket.
type Series struct {
	Labels []string          `json:"labels"`
	Income []decimal.Decimal `json:"income"`
	OTP    []decimal.Decimal `json:"otp"`
}

type bucket struct {
	income decimal.Decimal
	otp    decimal.Decimal
}

func (b bucket) apply(e entity.CashFlowEntry) bucket {
	switch e.Type {
	case entity.TypeIncomeAdd:
		b.income = b.income.Add(e.Amount)
	case entity.TypeIncomeMinus, entity.TypeIncomePayment:
		b.income = b.income.Sub(e.Amount)
	case entity.TypeOTPAdd:
		b.otp = b.otp.Add(e.Amount)
	case entity.TypeOTPMinus, entity.TypeOTPPayment:
		b.otp = b.otp.Sub(e.Amount)
	}
	return b
}

// Bucketize rolls entries up into a chart series.
//
//   - Yearly: one bucket per distinct year found in the data, labels sorted.
//   - Monthly: twelve fixed Jan-Dec buckets for the given year; entries from
//     other years are excluded. year must be a specific "YYYY".
//   - Daily: one bucket per calendar day of the given year+month; month is
//     "01".."12". Entries outside that year-month are excluded.
//
// Callers own the degrade policy: when the required year/month filter is
// "all", they must ask for the next coarser granularity instead. The engine
// buckets exactly what it is told.
func Bucketize(entries []entity.CashFlowEntry, g Granularity, year, month string) Series {
	switch g {
	case Monthly:
		return bucketizeMonthly(entries, year)
	case Daily:
		return bucketizeDaily(entries, year, month)
	default:
		return bucketizeYearly(entries)
	}
}

func bucketizeYearly(entries []entity.CashFlowEntry) Series {
	byYear := map[string]bucket{}
	for _, e := range entries {
		if len(e.Date) < 4 {
			continue
		}
		y := e.Date[:4]
		byYear[y] = byYear[y].apply(e)
	}

	labels := make([]string, 0, len(byYear))
	for y := range byYear {
		labels = append(labels, y)
	}
	sort.Strings(labels)

	s := emptySeries(labels)
	for i, y := range labels {
		s.Income[i] = normalize(byYear[y].income)
		s.OTP[i] = normalize(byYear[y].otp)
	}
	return s
}

func bucketizeMonthly(entries []entity.CashFlowEntry, year string) Series {
	buckets := make([]bucket, 12)
	for _, e := range entries {
		if len(e.Date) < 7 || e.Date[:4] != year {
			continue
		}
		m, err := strconv.Atoi(e.Date[5:7])
		if err != nil || m < 1 || m > 12 {
			continue
		}
		buckets[m-1] = buckets[m-1].apply(e)
	}

	s := emptySeries(monthLabels)
	for i, b := range buckets {
		s.Income[i] = normalize(b.income)
		s.OTP[i] = normalize(b.otp)
	}
	return s
}

func bucketizeDaily(entries []entity.CashFlowEntry, year, month string) Series {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	if errY != nil || errM != nil || m < 1 || m > 12 {
		return emptySeries(nil)
	}
	days := daysInMonth(y, time.Month(m))

	buckets := make([]bucket, days)
	prefix := year + "-" + month
	for _, e := range entries {
		if len(e.Date) < 10 || e.Date[:7] != prefix {
			continue
		}
		d, err := strconv.Atoi(e.Date[8:10])
		if err != nil || d < 1 || d > days {
			continue
		}
		buckets[d-1] = buckets[d-1].apply(e)
	}

	labels := make([]string, days)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	s := emptySeries(labels)
	for i, b := range buckets {
		s.Income[i] = normalize(b.income)
		s.OTP[i] = normalize(b.otp)
	}
	return s
}

// daysInMonth: day zero of the following month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func emptySeries(labels []string) Series {
	s := Series{
		Labels: append([]string(nil), labels...),
		Income: make([]decimal.Decimal, len(labels)),
		OTP:    make([]decimal.Decimal, len(labels)),
	}
	for i := range labels {
		s.Income[i] = decimal.Zero
		s.OTP[i] = decimal.Zero
	}
	return s
}

// normalize turns the zero value of decimal.Decimal into a canonical zero so
// empty buckets serialize as "0".
func normalize(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d
}
