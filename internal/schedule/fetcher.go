package schedule

import (
	"context"

	"github.com/masjid-labs/muadhin/internal/aladhan"
	"github.com/masjid-labs/muadhin/internal/model"
)

// AladhanFetcher adapts the Aladhan client to the resolver's Fetcher
// interface, picking the city or address endpoint from the configuration.
type AladhanFetcher struct {
	client *aladhan.Client
}

func NewAladhanFetcher(client *aladhan.Client) *AladhanFetcher {
	return &AladhanFetcher{client: client}
}

func (f *AladhanFetcher) Monthly(ctx context.Context, cfg model.Settings, year, month int) ([]aladhan.Day, error) {
	q := aladhan.CalendarQuery{
		Year:         year,
		Month:        month,
		Method:       cfg.CalculationMethod,
		School:       cfg.School,
		MidnightMode: cfg.MidnightMode,
		Shafaq:       cfg.Shafaq,
	}

	var (
		resp *aladhan.CalendarResponse
		err  error
	)
	if cfg.LocationSource == "address" {
		resp, err = f.client.MonthlyByAddress(ctx, q, cfg.Address)
	} else {
		resp, err = f.client.MonthlyByCity(ctx, q, cfg.City, cfg.Country)
	}
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
